package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed layout.schema.json
var schemaJSON []byte

// schemaURL names the embedded schema; it is never fetched.
const schemaURL = "https://value-projector/layout.schema.json"

var layoutSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add layout schema: %w", err)
	}

	return compiler.Compile(schemaURL)
})

// checkSchema validates the shape of a layout document before it is decoded,
// so misspelled keys are reported instead of ignored.
func checkSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	schema, err := layoutSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w:\n    - %s", ErrInvalidLayout, strings.Join(schemaMessages(ve), "\n    - "))
		}

		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	return nil
}

func schemaMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		// errors with causes only summarize them
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}

			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}

		for _, cause := range e.Causes {
			collect(cause)
		}
	}

	collect(err)

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}

	return messages
}
