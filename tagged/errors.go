package tagged

import (
	"errors"
	"fmt"
	"reflect"

	"value-projector/profile"
)

var ErrUnrecognizedCode = errors.New("unrecognized code")

// ConversionError reports a raw scalar that maps to no domain value.
type ConversionError struct {
	// Domain is the Go type name of the value that could not be rebuilt.
	Domain string
	// Profile is the name of the profile the inverse ran under.
	Profile string
	// Raw is the rejected scalar.
	Raw any
	// Suggestion is the closest accepted scalar, if one is known.
	Suggestion string
}

// Unrecognized builds the error for a raw scalar rejected by an inverse of
// Before under P.
func Unrecognized[Before any, P profile.Profile](raw any) *ConversionError {
	return &ConversionError{
		Domain:  reflect.TypeFor[Before]().String(),
		Profile: profile.NameOf[P](),
		Raw:     raw,
	}
}

// WithSuggestion returns a copy of e carrying a suggestion.
func (e *ConversionError) WithSuggestion(s string) *ConversionError {
	out := *e
	out.Suggestion = s

	return &out
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot reconstruct %s from %#v under profile %q", e.Domain, e.Raw, e.Profile)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg + ": " + ErrUnrecognizedCode.Error()
}

func (e *ConversionError) Unwrap() error {
	return ErrUnrecognizedCode
}
