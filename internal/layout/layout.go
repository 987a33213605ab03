package layout

// CurrentVersion is written into layouts that do not name a version.
const CurrentVersion = "1"

// Layout is the root of a layout file.
type Layout struct {
	// Version holds the scalar's text, so an unquoted 1 or 1.0 reads as "1" or "1.0".
	Version string   `yaml:"version"`
	Profile string   `yaml:"profile,omitempty"`
	Columns []Column `yaml:"columns"`
}

// Column is one CSV column.
type Column struct {
	// Name is the header; defaults to Binding.
	Name    string `yaml:"name,omitempty"`
	Binding string `yaml:"binding"`
	// Profile overrides Layout.Profile for this column.
	Profile  string `yaml:"profile,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// ProfileOf returns the profile name column c runs under.
func (l *Layout) ProfileOf(c Column) string {
	if c.Profile != "" {
		return c.Profile
	}

	return l.Profile
}

// Header returns the column names in order.
func (l *Layout) Header() []string {
	names := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		names[i] = c.Name
	}

	return names
}
