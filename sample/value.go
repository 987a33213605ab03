package sample

import (
	"strconv"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the variant of a Value.
type Kind int

const (
	KindSampleA Kind = iota
	KindSampleB
	KindOther
)

// Value is the sample domain value: SampleA, SampleB, or Other carrying a
// free-form payload. The zero Value is SampleA.
type Value struct {
	kind    Kind
	payload string
}

func A() Value { return Value{kind: KindSampleA} }

func B() Value { return Value{kind: KindSampleB} }

// Other builds the catch-all variant. The payload is kept verbatim.
func Other(payload string) Value {
	return Value{kind: KindOther, payload: payload}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Payload returns the catch-all payload; it is empty for named variants.
func (v Value) Payload() string {
	return v.payload
}

func (v Value) String() string {
	if v.kind == KindOther {
		return "Other(" + strconv.Quote(v.payload) + ")"
	}

	return v.kind.String()
}
