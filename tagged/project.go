package tagged

import (
	"value-projector/profile"
)

// Projector produces the After representation of a Before value under P.
// Implementations are pure and total over Before.
type Projector[After, Before any, P profile.Profile] interface {
	Project(Before) Value[After, Before, P]
}

// Reconstructor rebuilds a Before value from a raw After scalar.
// A raw value with no corresponding Before yields a *ConversionError.
type Reconstructor[After, Before any, P profile.Profile] interface {
	Reconstruct(After) (Before, error)
}

// Binding is a conversion pair usable in both directions.
type Binding[After, Before any, P profile.Profile] interface {
	Projector[After, Before, P]
	Reconstructor[After, Before, P]
}

// ProjectFunc adapts a plain function to Projector.
type ProjectFunc[After, Before any, P profile.Profile] func(Before) After

func (f ProjectFunc[After, Before, P]) Project(v Before) Value[After, Before, P] {
	return New[After, Before, P](f(v))
}

// ReconstructFunc adapts a plain function to Reconstructor.
type ReconstructFunc[After, Before any, P profile.Profile] func(After) (Before, error)

func (f ReconstructFunc[After, Before, P]) Reconstruct(raw After) (Before, error) {
	return f(raw)
}
