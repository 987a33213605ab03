package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrUnsupportedKind = errors.New("value is not a supported scalar")
	ErrNotAPointer     = errors.New("destination must be a non-nil pointer")
)

// FormatText renders a scalar as text.
//
// Values implementing encoding.TextMarshaler render themselves. Otherwise the
// value must be one of the primitive kinds (or a named type over one):
//   - integers and floats in base 10, shortest representation
//   - bool as "true"/"false"
//   - time.Time as RFC3339Nano
//   - time.Duration as 2h45m0s
func FormatText(v any) (string, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", err
		}

		return string(text), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "", fmt.Errorf("%w: <nil>", ErrUnsupportedKind)
	}

	return formatValue(rv)
}

func formatValue(rv reflect.Value) (string, error) {
	switch kind := Underlying(rv.Type()); {
	case kind == KindTime:
		return rv.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case kind == KindDuration:
		return time.Duration(rv.Int()).String(), nil
	case kind.IsSigned():
		return strconv.FormatInt(rv.Int(), 10), nil
	case kind.IsUnsigned():
		return strconv.FormatUint(rv.Uint(), 10), nil
	case kind.IsFloat():
		return strconv.FormatFloat(rv.Float(), 'g', -1, kind.Bits()), nil
	case kind == KindBool:
		return strconv.FormatBool(rv.Bool()), nil
	case kind == KindString:
		return rv.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, rv.Type())
	}
}

// ParseText parses text into the scalar dst points to.
// It is the inverse of FormatText and performs no trimming.
func ParseText(text string, dst any) error {
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(text))
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotAPointer
	}

	return parseValue(text, rv.Elem())
}

func parseValue(text string, rv reflect.Value) error {
	kind := Underlying(rv.Type())

	var err error
	switch {
	case kind == KindTime:
		var t time.Time
		t, err = time.Parse(time.RFC3339Nano, text)
		if err == nil {
			rv.Set(reflect.ValueOf(t))
		}
	case kind == KindDuration:
		var d time.Duration
		d, err = time.ParseDuration(text)
		if err == nil {
			rv.SetInt(int64(d))
		}
	case kind.IsSigned():
		var n int64
		n, err = strconv.ParseInt(text, 10, kind.Bits())
		if err == nil {
			rv.SetInt(n)
		}
	case kind.IsUnsigned():
		var n uint64
		n, err = strconv.ParseUint(text, 10, kind.Bits())
		if err == nil {
			rv.SetUint(n)
		}
	case kind.IsFloat():
		var f float64
		f, err = strconv.ParseFloat(text, kind.Bits())
		if err == nil {
			rv.SetFloat(f)
		}
	case kind == KindBool:
		var b bool
		b, err = strconv.ParseBool(text)
		if err == nil {
			rv.SetBool(b)
		}
	case kind == KindString:
		rv.SetString(text)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, rv.Type())
	}

	if err != nil {
		return fmt.Errorf("parse %q as %s: %w", text, rv.Type(), err)
	}

	return nil
}
