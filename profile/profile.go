// Package profile defines the compile-time markers that select a conversion
// policy for a projection.
//
// A profile is a zero-sized struct type. Two bindings that produce the same
// external scalar type but use different profiles yield different Go types,
// so their results never unify.
package profile

import (
	"golang.org/x/text/language"
)

// Profile is the constraint every marker type satisfies.
// The methods describe the marker; they never influence a conversion.
type Profile interface {
	Name() string
	Locale() language.Tag
}

// Default is the locale-neutral profile.
type Default struct{}

func (Default) Name() string { return "default" }

func (Default) Locale() language.Tag { return language.Und }

// Japanese renders values for Japanese readers.
type Japanese struct{}

func (Japanese) Name() string { return "japanese" }

func (Japanese) Locale() language.Tag { return language.Japanese }

// NameOf returns the name of profile P without needing a value of it.
func NameOf[P Profile]() string {
	var p P
	return p.Name()
}
