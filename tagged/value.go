package tagged

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"value-projector/primitive"
	"value-projector/profile"
)

// Value holds one After scalar projected from a Before domain value under
// profile P. Before and P exist only as type parameters; they add no fields.
type Value[After, Before any, P profile.Profile] struct {
	inner After
}

// New wraps a raw scalar. No validation against Before or P is performed.
func New[After, Before any, P profile.Profile](v After) Value[After, Before, P] {
	return Value[After, Before, P]{inner: v}
}

// Retag moves a value to profile Q. It is the only way to cross profiles.
func Retag[Q profile.Profile, After, Before any, P profile.Profile](v Value[After, Before, P]) Value[After, Before, Q] {
	return Value[After, Before, Q]{inner: v.inner}
}

// Get returns the wrapped scalar.
func (v Value[After, Before, P]) Get() After {
	return v.inner
}

// ProfileName returns the name of the profile the value is tagged with.
func (v Value[After, Before, P]) ProfileName() string {
	return profile.NameOf[P]()
}

func (v Value[After, Before, P]) String() string {
	return fmt.Sprint(v.inner)
}

// MarshalText emits the scalar only.
func (v Value[After, Before, P]) MarshalText() ([]byte, error) {
	text, err := primitive.FormatText(v.inner)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// UnmarshalText reads a raw scalar.
func (v *Value[After, Before, P]) UnmarshalText(text []byte) error {
	return primitive.ParseText(string(text), &v.inner)
}

func (v Value[After, Before, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.inner)
}

func (v *Value[After, Before, P]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.inner)
}

func (v Value[After, Before, P]) MarshalYAML() (any, error) {
	return v.inner, nil
}

func (v *Value[After, Before, P]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.inner)
}
