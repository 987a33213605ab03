package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeUnknownColumn    = "unknown_column"
	CodeMissingColumn    = "missing_column"
	CodeRowDecode        = "row_decode"
	CodeUnrecognizedCode = "unrecognized_code"
	CodeInvalidLayout    = "invalid_layout"
)

// Diagnostics holds all diagnostic information from a read or a validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Line is the 1-based input line (0 when not tied to a line).
	Line int
	// Column names the column this relates to (if any).
	Column string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
	// Err is the underlying error, kept so callers can match it with errors.Is.
	Err error
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, line int, column string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Line: line, Column: column})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, line int, column string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Line: line, Column: column})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, line int, column string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Line: line, Column: column})
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Err joins the error diagnostics into one error, or returns nil if valid.
// Each part unwraps to the diagnostic's Err, if it has one.
func (d Diagnostics) Err() error {
	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, &diagnosticError{diag: e})
	}

	return errors.Join(errs...)
}

type diagnosticError struct {
	diag Diagnostic
}

func (e *diagnosticError) Error() string {
	return e.diag.String()
}

func (e *diagnosticError) Unwrap() error {
	return e.diag.Err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Column != "" {
		prefix = append(prefix, "["+d.Column+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
