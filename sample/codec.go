package sample

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidValue = errors.New("invalid sample value")

// otherKey is the object key of the catch-all variant in direct serialization:
// named variants encode as "SampleA" / "SampleB", the catch-all as
// {"Other": "<payload>"}.
const otherKey = "Other"

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindOther {
		return json.Marshal(map[string]string{otherKey: v.payload})
	}

	return json.Marshal(v.kind.String())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return v.setNamed(name)
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, data)
	}

	return v.setTagged(obj)
}

func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindOther {
		return map[string]string{otherKey: v.payload}, nil
	}

	return v.kind.String(), nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		return v.setNamed(name)

	case yaml.MappingNode:
		var obj map[string]string
		if err := node.Decode(&obj); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidValue, node.Line, err)
		}

		return v.setTagged(obj)

	default:
		return fmt.Errorf("%w: line %d: expected string or mapping", ErrInvalidValue, node.Line)
	}
}

func (v *Value) setNamed(name string) error {
	switch name {
	case KindSampleA.String():
		*v = A()
	case KindSampleB.String():
		*v = B()
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidValue, name)
	}

	return nil
}

func (v *Value) setTagged(obj map[string]string) error {
	payload, ok := obj[otherKey]
	if !ok || len(obj) != 1 {
		return fmt.Errorf("%w: expected a single %q key", ErrInvalidValue, otherKey)
	}

	*v = Other(payload)

	return nil
}
