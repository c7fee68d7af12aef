package logging

import (
	"context"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// Tee sends every record to each handler that accepts its level.
type Tee struct {
	handlers []slog.Handler
}

// NewTee returns a Tee over handlers.
func NewTee(handlers ...slog.Handler) *Tee {
	return &Tee{handlers: handlers}
}

// Enabled reports whether any handler accepts level.
func (t *Tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes r to every enabled handler. A failing handler does not stop
// the others; all failures are returned together.
func (t *Tee) Handle(ctx context.Context, r slog.Record) error {
	var result *multierror.Error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// WithAttrs applies attrs to every handler.
func (t *Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup applies the group to every handler.
func (t *Tee) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t *Tee) each(f func(slog.Handler) slog.Handler) *Tee {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = f(h)
	}
	return NewTee(out...)
}
