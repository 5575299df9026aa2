// Package logging builds the service's slog logger and carries request-scoped
// loggers through context.
//
// Every record passes through masq redaction, and records logged with a
// context that holds a recording OpenTelemetry span gain trace_id and
// span_id, so a log line can be joined to its trace.
//
// Services log failures with the operation, the entity ids involved and the
// full error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to move note",
//	    slog.String("operation", "MoveNote"),
//	    slog.String("note_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates the service logger. level accepts anything slog.Level parses
// ("debug", "WARN", "info+2") and falls back to info. format "text" selects
// the text handler; anything else writes JSON. attrs are attached to every
// record, typically the service name and config profile.
//
// Debug loggers include source locations.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}

	return slog.New(traceHandler{h})
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
