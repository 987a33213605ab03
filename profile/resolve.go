package profile

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Descriptor is the runtime description of a marker type, used where the
// profile is only known as a string (configuration, CLI flags).
type Descriptor struct {
	Name   string
	Locale language.Tag
}

// Describe returns the descriptor of P.
func Describe[P Profile]() Descriptor {
	var p P
	return Descriptor{Name: p.Name(), Locale: p.Locale()}
}

var known = []Descriptor{
	Describe[Default](),
	Describe[Japanese](),
}

var localized = localizedTags()

var tagMatcher = language.NewMatcher(localized)

func localizedTags() []language.Tag {
	// language.Und stays first so that unmatched tags fall back to Default.
	tags := make([]language.Tag, 0, len(known))
	for _, d := range known {
		tags = append(tags, d.Locale)
	}

	return tags
}

// Known returns every built-in profile descriptor, Default first.
func Known() []Descriptor {
	out := make([]Descriptor, len(known))
	copy(out, known)

	return out
}

// Lookup finds a built-in profile by name, case-insensitively.
func Lookup(name string) (Descriptor, error) {
	name = strings.TrimSpace(name)
	for _, d := range known {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}

	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Match resolves a BCP 47 locale (e.g. "ja-JP") to the best built-in profile.
// Unparseable or unsupported locales resolve to Default.
func Match(locale string) Descriptor {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return known[0]
	}

	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return known[0]
	}

	return known[index]
}
