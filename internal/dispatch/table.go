package dispatch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"value-projector/internal/match"
	"value-projector/profile"
	"value-projector/tagged"
)

var (
	ErrUnknownBinding = errors.New("unknown binding")
	ErrNoInverse      = errors.New("binding has no inverse")
)

// Key identifies a binding registered under a profile.
type Key struct {
	Binding string
	Profile string
}

func (k Key) String() string {
	return k.Binding + "@" + k.Profile
}

// Entry is one registered binding with its types erased to cell text.
type Entry[D any] struct {
	Key Key

	encode         func(D) (string, error)
	encodeOptional func(tagged.Option[D]) (string, error)
	decode         func(string) (D, error)
	decodeOptional func(string) (tagged.Option[D], error)
}

// Encode projects d and renders the scalar.
func (e *Entry[D]) Encode(d D) (string, error) {
	return e.encode(d)
}

// EncodeOptional renders the lifted projection; absence is an empty cell.
func (e *Entry[D]) EncodeOptional(o tagged.Option[D]) (string, error) {
	return e.encodeOptional(o)
}

// HasInverse reports whether cells can be read back through this entry.
func (e *Entry[D]) HasInverse() bool {
	return e.decode != nil
}

// Decode parses a cell and reconstructs the domain value.
func (e *Entry[D]) Decode(cell string) (D, error) {
	if e.decode == nil {
		var zero D
		return zero, fmt.Errorf("%w: %s", ErrNoInverse, e.Key)
	}

	return e.decode(cell)
}

// DecodeOptional is Decode through the lifted inverse; an empty cell is absent.
func (e *Entry[D]) DecodeOptional(cell string) (tagged.Option[D], error) {
	if e.decodeOptional == nil {
		return tagged.None[D](), fmt.Errorf("%w: %s", ErrNoInverse, e.Key)
	}

	return e.decodeOptional(cell)
}

// Table holds the bindings of one domain type.
type Table[D any] struct {
	entries map[Key]*Entry[D]
}

// NewTable creates an empty table.
func NewTable[D any]() *Table[D] {
	return &Table[D]{entries: make(map[Key]*Entry[D])}
}

// RegisterProjection adds a forward-only binding under name and P's profile.
// A later registration for the same key replaces the earlier one.
func RegisterProjection[D, A any, P profile.Profile](t *Table[D], name string, project func(D) tagged.Value[A, D, P]) *Entry[D] {
	lifted := tagged.Lift(project)

	e := &Entry[D]{
		Key: Key{Binding: name, Profile: profile.NameOf[P]()},
		encode: func(d D) (string, error) {
			return marshalCell(project(d))
		},
		encodeOptional: func(o tagged.Option[D]) (string, error) {
			return marshalCell(lifted.Project(o))
		},
	}

	t.entries[e.Key] = e

	return e
}

// RegisterBinding adds a binding that can also read cells back.
func RegisterBinding[D, A any, P profile.Profile](
	t *Table[D],
	name string,
	project func(D) tagged.Value[A, D, P],
	reconstruct func(A) (D, error),
) *Entry[D] {
	e := RegisterProjection(t, name, project)

	inverse := tagged.LiftInverse(reconstruct)

	e.decode = func(cell string) (D, error) {
		var raw tagged.Value[A, D, P]
		if err := raw.UnmarshalText([]byte(cell)); err != nil {
			var zero D
			return zero, err
		}

		return reconstruct(raw.Get())
	}
	e.decodeOptional = func(cell string) (tagged.Option[D], error) {
		var raw tagged.Value[tagged.Option[A], D, P]
		if err := raw.UnmarshalText([]byte(cell)); err != nil {
			return tagged.None[D](), err
		}

		return inverse(raw.Get())
	}

	return e
}

func marshalCell(m interface{ MarshalText() ([]byte, error) }) (string, error) {
	text, err := m.MarshalText()
	if err != nil {
		return "", err
	}

	return string(text), nil
}

// Lookup finds the entry for a binding under a profile. The profile name is
// matched case-insensitively; an unknown binding error suggests the closest
// registered name.
func (t *Table[D]) Lookup(binding, profileName string) (*Entry[D], error) {
	desc, err := profile.Lookup(profileName)
	if err != nil {
		return nil, err
	}

	if e, ok := t.entries[Key{Binding: binding, Profile: desc.Name}]; ok {
		return e, nil
	}

	if !slices.Contains(t.Bindings(), binding) {
		if suggestion, ok := match.Suggest(binding, t.Bindings(), match.DefaultMinScore); ok {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownBinding, binding, suggestion)
		}

		return nil, fmt.Errorf("%w %q", ErrUnknownBinding, binding)
	}

	return nil, fmt.Errorf("%w %q under profile %q (registered: %s)",
		ErrUnknownBinding, binding, desc.Name, strings.Join(t.profilesOf(binding), ", "))
}

// Bindings returns the registered binding names, sorted and without repeats.
func (t *Table[D]) Bindings() []string {
	names := make([]string, 0, len(t.entries))
	for k := range t.entries {
		names = append(names, k.Binding)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// Keys returns every registered key, sorted by binding then profile.
func (t *Table[D]) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b Key) int {
		if c := strings.Compare(a.Binding, b.Binding); c != 0 {
			return c
		}

		return strings.Compare(a.Profile, b.Profile)
	})

	return keys
}

func (t *Table[D]) profilesOf(binding string) []string {
	var out []string
	for _, k := range t.Keys() {
		if k.Binding == binding {
			out = append(out, k.Profile)
		}
	}

	return out
}
