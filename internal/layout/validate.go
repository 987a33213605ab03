package layout

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"value-projector/internal/diagnostic"
	"value-projector/internal/dispatch"
	"value-projector/internal/match"
	"value-projector/profile"
)

var (
	ErrInvalidLayout      = errors.New("invalid layout")
	ErrUnsupportedVersion = errors.New("unsupported layout version")
)

// supportedVersions accepts every 1.x layout; "1" and "1.0" parse as 1.0.0.
const supportedVersions = "^1"

var versionConstraint = func() *semver.Constraints {
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		panic(err)
	}

	return c
}()

func versionSupported(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}

	return versionConstraint.Check(v)
}

// Validate checks l against the bindings registered in t. It reports every
// problem rather than stopping at the first one.
func Validate[D any](l *Layout, t *dispatch.Table[D]) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if l == nil {
		res.AddError(diagnostic.CodeInvalidLayout, "layout is nil", 0, "")
		return res
	}

	if !versionSupported(l.Version) {
		res.Add(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeInvalidLayout,
			Message:  fmt.Sprintf("unsupported version %q (want %s)", l.Version, supportedVersions),
			Err:      ErrUnsupportedVersion,
		})
	}

	if len(l.Columns) == 0 {
		res.AddError(diagnostic.CodeInvalidLayout, "layout has no columns", 0, "")
	}

	if _, err := profile.Lookup(l.Profile); err != nil {
		addCause(res, "", err)
	}

	seen := map[string]string{}

	for _, c := range l.Columns {
		validateColumn(res, l, c, t)

		key := match.NormalizeIdent(c.Name)
		if prev, dup := seen[key]; dup {
			res.AddError(diagnostic.CodeInvalidLayout,
				fmt.Sprintf("column %q collides with column %q", c.Name, prev), 0, c.Name)

			continue
		}

		seen[key] = c.Name
	}

	return res
}

func validateColumn[D any](res *diagnostic.Diagnostics, l *Layout, c Column, t *dispatch.Table[D]) {
	if c.Binding == "" {
		res.AddError(diagnostic.CodeInvalidLayout, "column has no binding", 0, c.Name)
		return
	}

	name := l.ProfileOf(c)
	if _, err := profile.Lookup(name); err != nil {
		d := diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeInvalidLayout,
			Message:  err.Error(),
			Column:   c.Name,
			Err:      err,
		}

		if s, ok := match.Suggest(name, profileNames(), match.DefaultMinScore); ok {
			d.Suggestions = []string{s}
		}

		res.Add(d)

		return
	}

	e, err := t.Lookup(c.Binding, name)
	if err != nil {
		addCause(res, c.Name, err)
		return
	}

	if !e.HasInverse() {
		res.AddWarning(diagnostic.CodeInvalidLayout,
			fmt.Sprintf("binding %s has no inverse; column cannot be imported", e.Key), 0, c.Name)
	}
}

func addCause(res *diagnostic.Diagnostics, column string, err error) {
	res.Add(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeInvalidLayout,
		Message:  err.Error(),
		Column:   column,
		Err:      err,
	})
}

func profileNames() []string {
	known := profile.Known()

	names := make([]string, len(known))
	for i, d := range known {
		names[i] = d.Name
	}

	return names
}
