package record

import (
	"encoding/csv"
	"io"
	"log/slog"
	"reflect"

	"value-projector/primitive"
)

// Writer writes records of type R as CSV rows.
type Writer[R any] struct {
	csv  *csv.Writer
	plan *plan
	cfg  config

	wroteHeader bool
	rows        int
}

// NewWriter returns a Writer for the struct type R.
func NewWriter[R any](w io.Writer, opts ...Option) (*Writer[R], error) {
	p, err := planFor[R]()
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)

	cw := csv.NewWriter(w)
	cw.Comma = cfg.comma

	return &Writer[R]{csv: cw, plan: p, cfg: cfg}, nil
}

// Write writes one record, preceded by the header on the first call.
// Output is buffered until Flush.
func (w *Writer[R]) Write(rec R) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	rv := reflect.ValueOf(rec)
	row := make([]string, len(w.plan.fields))

	for i, f := range w.plan.fields {
		text, err := primitive.FormatText(rv.FieldByIndex(f.index).Interface())
		if err != nil {
			return &FieldError{Column: f.name, Err: err}
		}

		row[i] = text
	}

	if err := w.csv.Write(row); err != nil {
		return err
	}

	w.rows++

	return nil
}

func (w *Writer[R]) writeHeader() error {
	if !w.cfg.header || w.wroteHeader {
		return nil
	}

	if err := w.csv.Write(w.plan.header()); err != nil {
		return err
	}

	w.wroteHeader = true

	return nil
}

// WriteAll writes every record and flushes. The header is written even when
// recs is empty.
func (w *Writer[R]) WriteAll(recs []R) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer[R]) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}

	w.cfg.logger.Debug("records flushed",
		slog.String("record", w.plan.typ.String()),
		slog.Int("rows", w.rows))

	return nil
}
