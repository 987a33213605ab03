package tagged

import (
	"value-projector/profile"
)

// Lifted is a projection over Option[Before] derived from a projection over
// Before. The resulting tag keeps Before (the inner domain type) and P.
type Lifted[After, Before any, P profile.Profile] struct {
	project func(Before) Value[After, Before, P]
}

// Lift derives the optional projection from any inner projection, usually a
// binding's method value:
//
//	codes := tagged.Lift(sample.Code{}.Project)
//	codes.Project(tagged.Some(sample.A())) // Some(0)
func Lift[After, Before any, P profile.Profile](project func(Before) Value[After, Before, P]) Lifted[After, Before, P] {
	return Lifted[After, Before, P]{project: project}
}

// Project maps absence to absence and delegates presence to the inner projection.
func (l Lifted[After, Before, P]) Project(o Option[Before]) Value[Option[After], Before, P] {
	v, ok := o.Get()
	if !ok {
		return New[Option[After], Before, P](None[After]())
	}

	return New[Option[After], Before, P](Some(l.project(v).Get()))
}

// LiftInverse derives the optional inverse: absence rebuilds absence and a
// present scalar must reconstruct.
func LiftInverse[After, Before any](reconstruct func(After) (Before, error)) func(Option[After]) (Option[Before], error) {
	return func(o Option[After]) (Option[Before], error) {
		raw, ok := o.Get()
		if !ok {
			return None[Before](), nil
		}

		v, err := reconstruct(raw)
		if err != nil {
			return None[Before](), err
		}

		return Some(v), nil
	}
}
