package record

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProjectAll maps project over items with at most workers goroutines
// (GOMAXPROCS when workers <= 0). Results keep the order of items. The first
// failure cancels the remaining work and is returned with the item index.
func ProjectAll[D, R any](ctx context.Context, items []D, project func(D) (R, error), workers int) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := project(item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}

			out[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Marshal renders recs as CSV.
func Marshal[R any](recs []R, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer

	w, err := NewWriter[R](&buf, opts...)
	if err != nil {
		return nil, err
	}

	if err := w.WriteAll(recs); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal parses CSV into records, stopping at the first bad row.
func Unmarshal[R any](data []byte, opts ...Option) ([]R, error) {
	r, err := NewReader[R](bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	return r.ReadAll()
}
