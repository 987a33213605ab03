package record

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"value-projector/primitive"
)

var (
	ErrNotAStruct       = errors.New("record type must be a struct")
	ErrUnsupportedField = errors.New("field type cannot be written as a CSV cell")
	ErrNoFields         = errors.New("record type has no columns")
)

const tagName = "csv"

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type field struct {
	name  string
	index []int
	typ   reflect.Type
	// optional fields may be absent from the header.
	optional bool
}

// plan lists the columns of a record type in declaration order.
type plan struct {
	typ    reflect.Type
	fields []field
	byName map[string]int
}

func planFor[R any]() (*plan, error) {
	rt := reflect.TypeFor[R]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotAStruct, rt)
	}

	p := &plan{typ: rt, byName: map[string]int{}}

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, optional, ok := columnName(sf)
		if !ok {
			continue
		}

		if err := checkCell(sf.Type); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rt, sf.Name, err)
		}

		if _, dup := p.byName[name]; dup {
			return nil, fmt.Errorf("%s.%s: duplicate column %q", rt, sf.Name, name)
		}

		p.byName[name] = len(p.fields)
		p.fields = append(p.fields, field{name: name, index: sf.Index, typ: sf.Type, optional: optional})
	}

	if len(p.fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFields, rt)
	}

	return p, nil
}

// columnName reads the `csv:"name,optional"` tag.
func columnName(sf reflect.StructField) (name string, optional, ok bool) {
	tag := sf.Tag.Get(tagName)
	if tag == "-" {
		return "", false, false
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}

	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "optional" {
			optional = true
		}
	}

	return name, optional, true
}

// checkCell reports whether values of t can be written and read back as a cell.
func checkCell(t reflect.Type) error {
	writable := t.Implements(textMarshalerType) || primitive.Underlying(t) != 0
	readable := reflect.PointerTo(t).Implements(textUnmarshalerType) || primitive.Underlying(t) != 0

	if !writable || !readable {
		return fmt.Errorf("%w: %s", ErrUnsupportedField, t)
	}

	return nil
}

func (p *plan) header() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name
	}

	return names
}
