package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"value-projector/internal/diagnostic"
	"value-projector/internal/match"
	"value-projector/primitive"
	"value-projector/tagged"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrMissingColumn = errors.New("required column is absent from the header")
)

const skipColumn = -1

// Reader reads CSV rows into records of type R.
type Reader[R any] struct {
	csv  *csv.Reader
	plan *plan
	cfg  config

	// columns maps a CSV column position to a field index or skipColumn.
	columns   []int
	ready     bool
	headerErr error
	diags     diagnostic.Diagnostics
}

// NewReader returns a Reader for the struct type R.
func NewReader[R any](r io.Reader, opts ...Option) (*Reader[R], error) {
	p, err := planFor[R]()
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.ReuseRecord = true

	return &Reader[R]{csv: cr, plan: p, cfg: cfg}, nil
}

// Diagnostics returns findings about the header collected so far.
func (r *Reader[R]) Diagnostics() diagnostic.Diagnostics {
	return r.diags
}

// Read returns the next record, or io.EOF when the input is exhausted.
// A header missing a column is an ErrMissingColumn error unless the field is
// tagged optional; optional fields absent from the header keep their zero value.
func (r *Reader[R]) Read() (R, error) {
	var out R

	if !r.ready {
		r.headerErr = r.readHeader()
		r.ready = true
	}

	if r.headerErr != nil {
		return out, r.headerErr
	}

	row, err := r.csv.Read()
	if err != nil {
		return out, err
	}

	line, _ := r.csv.FieldPos(0)
	rv := reflect.ValueOf(&out).Elem()

	for col, text := range row {
		fi := skipColumn
		if col < len(r.columns) {
			fi = r.columns[col]
		}

		if fi == skipColumn {
			continue
		}

		f := r.plan.fields[fi]

		if err := primitive.ParseText(text, rv.FieldByIndex(f.index).Addr().Interface()); err != nil {
			return out, &FieldError{Line: line, Column: f.name, Err: err}
		}
	}

	return out, nil
}

// ReadAll reads every remaining record and stops at the first error.
func (r *Reader[R]) ReadAll() ([]R, error) {
	var out []R

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, err
		}

		out = append(out, rec)
	}
}

// ReadLenient reads every remaining record, skipping rows whose cells fail to
// decode or whose width disagrees with the header. Skipped rows become error
// diagnostics. The returned error is reserved for failures that stop reading,
// such as malformed quoting or a failing io.Reader.
func (r *Reader[R]) ReadLenient() ([]R, diagnostic.Diagnostics, error) {
	var (
		out   []R
		diags diagnostic.Diagnostics
	)

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var (
			fe *FieldError
			pe *csv.ParseError
		)

		switch {
		case err == nil:
			out = append(out, rec)
		case errors.As(err, &fe):
			code := diagnostic.CodeRowDecode
			if errors.Is(err, tagged.ErrUnrecognizedCode) {
				code = diagnostic.CodeUnrecognizedCode
			}

			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     code,
				Message:  fe.Err.Error(),
				Line:     fe.Line,
				Column:   fe.Column,
			}

			var ce *tagged.ConversionError
			if errors.As(err, &ce) && ce.Suggestion != "" {
				d.Suggestions = []string{ce.Suggestion}
			}

			diags.Add(d)
			r.cfg.logger.Warn("row skipped",
				slog.Int("line", fe.Line),
				slog.String("column", fe.Column),
				slog.Any("error", fe.Err))
		case errors.As(err, &pe) && errors.Is(err, csv.ErrFieldCount):
			diags.AddError(diagnostic.CodeRowDecode, pe.Err.Error(), pe.Line, "")
			r.cfg.logger.Warn("row skipped", slog.Int("line", pe.Line), slog.Any("error", pe.Err))
		default:
			return out, r.allDiagnostics(diags), err
		}
	}

	return out, r.allDiagnostics(diags), nil
}

func (r *Reader[R]) allDiagnostics(rows diagnostic.Diagnostics) diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	all.Merge(r.diags)
	all.Merge(rows)

	return all
}

func (r *Reader[R]) readHeader() error {
	if !r.cfg.header {
		r.columns = make([]int, len(r.plan.fields))
		for i := range r.columns {
			r.columns[i] = i
		}

		return nil
	}

	names, err := r.csv.Read()
	if err != nil {
		return err
	}

	known := r.plan.header()
	seen := make([]bool, len(r.plan.fields))
	r.columns = make([]int, len(names))

	for col, name := range names {
		fi, ok := r.resolveColumn(name, known)
		if !ok {
			r.columns[col] = skipColumn

			suggestion, hasSuggestion := match.Suggest(name, known, match.DefaultMinScore)
			if r.cfg.strictColumns {
				if hasSuggestion {
					return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownColumn, name, suggestion)
				}

				return fmt.Errorf("%w %q", ErrUnknownColumn, name)
			}

			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     diagnostic.CodeUnknownColumn,
				Message:  fmt.Sprintf("column %q matches no field of %s", name, r.plan.typ),
				Line:     1,
				Column:   name,
			}
			if hasSuggestion {
				d.Suggestions = []string{suggestion}
			}

			r.diags.Add(d)
			r.cfg.logger.Warn("unknown column skipped", slog.String("column", name))

			continue
		}

		if seen[fi] {
			r.columns[col] = skipColumn
			r.diags.AddWarning(diagnostic.CodeUnknownColumn,
				fmt.Sprintf("column %q repeats an earlier column", name), 1, name)

			continue
		}

		seen[fi] = true
		r.columns[col] = fi
	}

	var missing []error

	for fi, ok := range seen {
		if ok {
			continue
		}

		f := r.plan.fields[fi]
		if !f.optional {
			r.diags.AddError(diagnostic.CodeMissingColumn,
				fmt.Sprintf("column %q is required", f.name), 1, f.name)
			missing = append(missing, fmt.Errorf("%w: %q", ErrMissingColumn, f.name))

			continue
		}

		r.diags.AddInfo(diagnostic.CodeMissingColumn,
			fmt.Sprintf("column %q is absent; field keeps its zero value", f.name), 1, f.name)
		r.cfg.logger.Debug("column absent", slog.String("column", f.name))
	}

	return errors.Join(missing...)
}

// resolveColumn finds the field for a header name: exact first, then by
// normalized identifier so "Column A" and "column_a" agree.
func (r *Reader[R]) resolveColumn(name string, known []string) (int, bool) {
	if fi, ok := r.plan.byName[name]; ok {
		return fi, true
	}

	if exact := match.RankCandidates(name, known).Exact(); len(exact) > 0 {
		return r.plan.byName[exact[0].Name], true
	}

	return 0, false
}
