package record

import (
	"log/slog"
)

type config struct {
	comma         rune
	header        bool
	strictColumns bool
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		comma:  ',',
		header: true,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Reader or Writer.
type Option func(*config)

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(c *config) { c.comma = r }
}

// WithoutHeader disables the header row; columns follow field order.
func WithoutHeader() Option {
	return func(c *config) { c.header = false }
}

// WithStrictColumns makes a header column that matches no field an error
// instead of a skipped column with a warning.
func WithStrictColumns() Option {
	return func(c *config) { c.strictColumns = true }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
