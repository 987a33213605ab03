package sample

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"value-projector/internal/match"
	"value-projector/profile"
	"value-projector/tagged"
)

// Scalars of the named variants and the catch-all prefix, per binding.
const (
	LabelSampleA = "SampleA"
	LabelSampleB = "SampleB"

	JapaneseLabelSampleA = "サンプルA"
	JapaneseLabelSampleB = "サンプルB"
	JapaneseOtherPrefix  = "その他: "

	CodeSampleA int64 = 0
	CodeSampleB int64 = 1
	CodeOther   int64 = 999
)

var (
	_ tagged.Binding[string, Value, profile.Default]  = Label{}
	_ tagged.Binding[string, Value, profile.Japanese] = JapaneseLabel{}
	_ tagged.Binding[int64, Value, profile.Default]   = Code{}
)

// Label renders the variant name; the catch-all renders its payload as is.
type Label struct{}

func (Label) Project(v Value) tagged.Value[string, Value, profile.Default] {
	var s string
	switch v.kind {
	case KindSampleA:
		s = LabelSampleA
	case KindSampleB:
		s = LabelSampleB
	case KindOther:
		s = v.payload
	}

	return tagged.New[string, Value, profile.Default](s)
}

// Reconstruct matches the two labels exactly (case-sensitive); any other
// string is a catch-all payload. It never fails, and Other("SampleA") comes
// back as SampleA.
func (Label) Reconstruct(s string) (Value, error) {
	switch s {
	case LabelSampleA:
		return A(), nil
	case LabelSampleB:
		return B(), nil
	default:
		return Other(s), nil
	}
}

// JapaneseLabel renders Japanese display names.
type JapaneseLabel struct{}

func (JapaneseLabel) Project(v Value) tagged.Value[string, Value, profile.Japanese] {
	var s string
	switch v.kind {
	case KindSampleA:
		s = JapaneseLabelSampleA
	case KindSampleB:
		s = JapaneseLabelSampleB
	case KindOther:
		s = JapaneseOtherPrefix + v.payload
	}

	return tagged.New[string, Value, profile.Japanese](s)
}

// Reconstruct accepts the exact labels first. Failing that, the input is
// NFKC-normalized so full-width and half-width forms match too; a catch-all
// recovered that way carries the normalized payload. Strings that are neither
// a label nor prefixed with JapaneseOtherPrefix are rejected.
func (JapaneseLabel) Reconstruct(s string) (Value, error) {
	if v, ok := japaneseFromLabel(s); ok {
		return v, nil
	}

	normalized := norm.NFKC.String(s)
	if v, ok := japaneseFromLabel(normalized); ok {
		return v, nil
	}

	err := tagged.Unrecognized[Value, profile.Japanese](s)
	if suggestion, ok := match.Suggest(normalized, []string{JapaneseLabelSampleA, JapaneseLabelSampleB}, match.DefaultMinScore); ok {
		return Value{}, err.WithSuggestion(suggestion)
	}

	return Value{}, err
}

func japaneseFromLabel(s string) (Value, bool) {
	switch s {
	case JapaneseLabelSampleA:
		return A(), true
	case JapaneseLabelSampleB:
		return B(), true
	}

	if payload, ok := strings.CutPrefix(s, JapaneseOtherPrefix); ok {
		return Other(payload), true
	}

	return Value{}, false
}

// Code renders a numeric code. Every catch-all shares CodeOther, so the
// payload does not survive a round trip.
type Code struct{}

func (Code) Project(v Value) tagged.Value[int64, Value, profile.Default] {
	var n int64
	switch v.kind {
	case KindSampleA:
		n = CodeSampleA
	case KindSampleB:
		n = CodeSampleB
	case KindOther:
		n = CodeOther
	}

	return tagged.New[int64, Value, profile.Default](n)
}

// Reconstruct maps CodeOther to Other("").
func (Code) Reconstruct(n int64) (Value, error) {
	switch n {
	case CodeSampleA:
		return A(), nil
	case CodeSampleB:
		return B(), nil
	case CodeOther:
		return Other(""), nil
	default:
		return Value{}, tagged.Unrecognized[Value, profile.Default](n)
	}
}

// Record fields that store a Value and travel as a binding's scalar.
type (
	LabelField         = tagged.Coded[string, Value, profile.Default, Label]
	JapaneseLabelField = tagged.Coded[string, Value, profile.Japanese, JapaneseLabel]
	CodeField          = tagged.Coded[int64, Value, profile.Default, Code]
)
