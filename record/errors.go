package record

import (
	"fmt"
)

// FieldError locates a cell that could not be written or read.
type FieldError struct {
	// Line is the 1-based CSV line; 0 when writing.
	Line int
	// Column is the column name.
	Column string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
