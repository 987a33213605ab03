package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"value-projector/profile"
)

// LoadFile loads and parses a YAML layout file from the given path.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Layout. The document is checked against the
// layout schema first; unknown keys and wrongly typed values are errors.
func Parse(data []byte) (*Layout, error) {
	if err := checkSchema(data); err != nil {
		return nil, err
	}

	var l Layout

	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyDefaults(&l)

	return &l, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(l *Layout) {
	if l.Version == "" {
		l.Version = CurrentVersion
	}

	if l.Profile == "" {
		l.Profile = profile.NameOf[profile.Default]()
	}

	for i := range l.Columns {
		c := &l.Columns[i]
		if c.Name == "" {
			c.Name = c.Binding
		}
	}
}

// Marshal serializes a Layout to YAML.
func Marshal(l *Layout) ([]byte, error) {
	return yaml.Marshal(l)
}
