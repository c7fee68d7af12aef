package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces the single-line Handler output.
	FormatText Format = "text"
	// FormatJSON produces slog JSON records.
	FormatJSON Format = "json"
)

// ParseFormat validates s; the empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Newf("unknown log format %q (want text or json)", s)
}

// LevelTrace is below slog.LevelDebug and enabled with -vvv.
const LevelTrace = slog.Level(-8)

// LevelName is the label the text handler prints for l.
func LevelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

// LevelFromVerbosity maps the count of -v flags to a level: none shows only
// warnings and errors, -v info, -vv debug, -vvv and beyond trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level is the minimum level written.
	Level slog.Level
	// Format selects the handler.
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
	// Color applies to FormatText only.
	Color ColorMode
}

// New creates a logger from cfg.
func New(cfg Config) *slog.Logger {
	return slog.New(NewHandlerFor(cfg))
}

// NewHandlerFor returns the handler New would use, for composing with NewTee.
func NewHandlerFor(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	}
	return NewHandler(out, cfg.Level, cfg.Color)
}

// NewDiscard creates a logger that drops everything.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// testWriter sends each log line to t.Log.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a trace-level logger whose output is attached to t and
// shown only for failing or verbose tests.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{Level: LevelTrace, Format: FormatText, Output: testWriter{t: t}, Color: ColorNever})
}
