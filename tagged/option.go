package tagged

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"value-projector/primitive"
)

// Option is a value that may be absent.
// Absence is written as empty text, JSON null and YAML null.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer converts a nil-able pointer into an Option.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}

	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

func (o Option[T]) MarshalText() ([]byte, error) {
	if !o.ok {
		return []byte{}, nil
	}

	text, err := primitive.FormatText(o.value)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// UnmarshalText treats empty text as absence.
func (o *Option[T]) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = None[T]()
		return nil
	}

	var v T
	if err := primitive.ParseText(string(text), &v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}

	return o.value, nil
}

func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}
