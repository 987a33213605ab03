package tagged

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"value-projector/primitive"
	"value-projector/profile"
)

// Coded is a record field that holds a domain value and travels as the scalar
// of binding B. Unlike Value, reading a Coded validates: the raw scalar has to
// reconstruct through B.
type Coded[After, Before any, P profile.Profile, B Binding[After, Before, P]] struct {
	Domain Before
}

func (c Coded[After, Before, P, B]) Get() Before {
	return c.Domain
}

// Tagged returns the projection of the held value.
func (c Coded[After, Before, P, B]) Tagged() Value[After, Before, P] {
	var b B
	return b.Project(c.Domain)
}

func (c Coded[After, Before, P, B]) MarshalText() ([]byte, error) {
	return c.Tagged().MarshalText()
}

func (c *Coded[After, Before, P, B]) UnmarshalText(text []byte) error {
	var raw After
	if err := primitive.ParseText(string(text), &raw); err != nil {
		return err
	}

	return c.reconstruct(raw)
}

func (c Coded[After, Before, P, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Tagged().Get())
}

func (c *Coded[After, Before, P, B]) UnmarshalJSON(data []byte) error {
	var raw After
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	return c.reconstruct(raw)
}

func (c Coded[After, Before, P, B]) MarshalYAML() (any, error) {
	return c.Tagged().Get(), nil
}

func (c *Coded[After, Before, P, B]) UnmarshalYAML(node *yaml.Node) error {
	var raw After
	if err := node.Decode(&raw); err != nil {
		return err
	}

	return c.reconstruct(raw)
}

func (c *Coded[After, Before, P, B]) reconstruct(raw After) error {
	var b B

	v, err := b.Reconstruct(raw)
	if err != nil {
		return err
	}

	c.Domain = v

	return nil
}
