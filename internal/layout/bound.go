package layout

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"value-projector/internal/diagnostic"
	"value-projector/internal/dispatch"
	"value-projector/internal/match"
	"value-projector/record"
	"value-projector/tagged"
)

var (
	ErrMissingValue  = errors.New("required column has no value")
	ErrMissingColumn = errors.New("required column is absent from the header")
)

// Row maps column names to domain values. A missing key reads as absent.
type Row[D any] map[string]tagged.Option[D]

type boundColumn[D any] struct {
	Column
	entry *dispatch.Entry[D]
}

// Bound is a layout whose columns are resolved against a table.
type Bound[D any] struct {
	columns []boundColumn[D]
	diags   diagnostic.Diagnostics
	logger  *slog.Logger
}

// Bind validates l against t and resolves every column. Validation errors are
// joined under ErrInvalidLayout; warnings stay available via Diagnostics.
func Bind[D any](l *Layout, t *dispatch.Table[D], logger *slog.Logger) (*Bound[D], error) {
	diags := Validate(l, t)
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	b := &Bound[D]{diags: *diags, logger: logger}

	for _, c := range l.Columns {
		e, err := t.Lookup(c.Binding, l.ProfileOf(c))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}

		b.columns = append(b.columns, boundColumn[D]{Column: c, entry: e})
		logger.Debug("column bound", slog.String("column", c.Name), slog.String("binding", e.Key.String()))
	}

	return b, nil
}

// Diagnostics returns the warnings found while binding.
func (b *Bound[D]) Diagnostics() diagnostic.Diagnostics {
	return b.diags
}

// Header returns the column names in layout order.
func (b *Bound[D]) Header() []string {
	names := make([]string, len(b.columns))
	for i, c := range b.columns {
		names[i] = c.Name
	}

	return names
}

// EncodeRow renders row as cells in layout order.
func (b *Bound[D]) EncodeRow(row Row[D]) ([]string, error) {
	cells := make([]string, len(b.columns))

	for i, c := range b.columns {
		v := row[c.Name]

		var (
			cell string
			err  error
		)

		if c.Optional {
			cell, err = c.entry.EncodeOptional(v)
		} else {
			d, ok := v.Get()
			if !ok {
				return nil, &record.FieldError{Column: c.Name, Err: ErrMissingValue}
			}

			cell, err = c.entry.Encode(d)
		}

		if err != nil {
			return nil, &record.FieldError{Column: c.Name, Err: err}
		}

		cells[i] = cell
	}

	return cells, nil
}

// DecodeRow reconstructs a row from cells in layout order.
func (b *Bound[D]) DecodeRow(cells []string) (Row[D], error) {
	if len(cells) != len(b.columns) {
		return nil, fmt.Errorf("row has %d cells, layout has %d columns", len(cells), len(b.columns))
	}

	row := make(Row[D], len(b.columns))

	for i, c := range b.columns {
		if c.Optional {
			v, err := c.entry.DecodeOptional(cells[i])
			if err != nil {
				return nil, &record.FieldError{Column: c.Name, Err: err}
			}

			row[c.Name] = v

			continue
		}

		v, err := c.entry.Decode(cells[i])
		if err != nil {
			return nil, &record.FieldError{Column: c.Name, Err: err}
		}

		row[c.Name] = tagged.Some(v)
	}

	return row, nil
}

// Export encodes rows concurrently and writes them as CSV with a header.
func (b *Bound[D]) Export(ctx context.Context, w io.Writer, rows []Row[D], workers int) error {
	lines, err := record.ProjectAll(ctx, rows, b.EncodeRow, workers)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(b.Header()); err != nil {
		return err
	}

	if err := cw.WriteAll(lines); err != nil {
		return err
	}

	b.logger.Debug("rows exported", slog.Int("rows", len(lines)))

	return nil
}

// Import reads CSV with a header and decodes every row. Header columns are
// matched to layout columns by normalized name; extra columns are ignored and
// absent optional columns read as empty. Rows that fail to decode are skipped
// and reported as error diagnostics.
func (b *Bound[D]) Import(r io.Reader) ([]Row[D], diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, diags, nil
	}

	if err != nil {
		return nil, diags, err
	}

	positions, err := b.mapHeader(header, &diags)
	if err != nil {
		return nil, diags, err
	}

	var rows []Row[D]

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var pe *csv.ParseError
		if errors.As(err, &pe) && errors.Is(err, csv.ErrFieldCount) {
			diags.AddError(diagnostic.CodeRowDecode, pe.Err.Error(), pe.Line, "")
			continue
		}

		if err != nil {
			return rows, diags, err
		}

		line, _ := cr.FieldPos(0)

		cells := make([]string, len(b.columns))
		for i, pos := range positions {
			if pos >= 0 {
				cells[i] = rec[pos]
			}
		}

		row, err := b.DecodeRow(cells)
		if err != nil {
			addRowError(&diags, line, err)
			b.logger.Warn("row skipped", slog.Int("line", line), slog.Any("error", err))

			continue
		}

		rows = append(rows, row)
	}

	return rows, diags, nil
}

// mapHeader returns, per layout column, the CSV position holding it or -1.
func (b *Bound[D]) mapHeader(header []string, diags *diagnostic.Diagnostics) ([]int, error) {
	known := b.Header()

	positions := make([]int, len(b.columns))
	for i := range positions {
		positions[i] = -1
	}

	for pos, name := range header {
		exact := match.RankCandidates(name, known).Exact()
		if len(exact) == 0 {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     diagnostic.CodeUnknownColumn,
				Message:  fmt.Sprintf("column %q is not in the layout", name),
				Line:     1,
				Column:   name,
			}
			if s, ok := match.Suggest(name, known, match.DefaultMinScore); ok {
				d.Suggestions = []string{s}
			}

			diags.Add(d)

			continue
		}

		for i, c := range b.columns {
			if c.Name == exact[0].Name && positions[i] < 0 {
				positions[i] = pos
			}
		}
	}

	var errs []error

	for i, c := range b.columns {
		if positions[i] >= 0 {
			continue
		}

		if !c.Optional {
			diags.AddError(diagnostic.CodeMissingColumn, fmt.Sprintf("column %q is required", c.Name), 1, c.Name)
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingColumn, c.Name))

			continue
		}

		diags.AddInfo(diagnostic.CodeMissingColumn, fmt.Sprintf("column %q is absent; reads as empty", c.Name), 1, c.Name)
	}

	return positions, errors.Join(errs...)
}

func addRowError(diags *diagnostic.Diagnostics, line int, err error) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeRowDecode,
		Message:  err.Error(),
		Line:     line,
	}

	var fe *record.FieldError
	if errors.As(err, &fe) {
		d.Column = fe.Column
		d.Message = fe.Err.Error()
	}

	if errors.Is(err, tagged.ErrUnrecognizedCode) {
		d.Code = diagnostic.CodeUnrecognizedCode
	}

	var ce *tagged.ConversionError
	if errors.As(err, &ce) && ce.Suggestion != "" {
		d.Suggestions = []string{ce.Suggestion}
	}

	diags.Add(d)
}
