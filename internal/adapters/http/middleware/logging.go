package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
)

// Logging returns middleware that attaches a request-scoped logger to the
// context and logs one completion event per request. Server errors log at
// Error, client errors at Warn and everything else at Info. Request headers
// are logged, redacted, at Debug; sensitiveHeaders names headers masked in
// addition to logging.SensitiveHeaders.
func Logging(logger *slog.Logger, sensitiveHeaders ...string) func(http.Handler) http.Handler {
	sensitive := logging.SensitiveHeaderSet(sensitiveHeaders...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := redactHeaders(r.Header, sensitive)
				args := make([]any, 0, len(attrs)+2)
				args = append(args, slog.String("method", r.Method), slog.String("path", r.URL.Path))
				for _, a := range attrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request started", args...)
			}

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			child.Log(ctx, levelForStatus(rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

