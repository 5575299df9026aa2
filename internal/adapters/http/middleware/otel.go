package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/noteboard/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/noteboard/internal/adapters/http/middleware"

// OpenTelemetry returns middleware that continues the caller's W3C trace,
// opens a server span per request and records request metrics. The span is
// renamed to the matched route once routing completes, so "/api/v1/notes/n-1"
// and "/api/v1/notes/n-2" share the name "GET /api/v1/notes/{id}".
//
// A nil metrics skips metric recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	if metrics == nil {
		metrics = &telemetry.Metrics{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			// The route is unknown until chi has matched, so the span starts
			// under the bare method and is renamed below.
			ctx, span := tracer.Start(parent, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route, status := routePattern(r), rw.statusCode
			span.SetName(r.Method + " " + route)
			span.SetAttributes(telemetry.AttrHTTPRoute.String(route), telemetry.AttrHTTPStatus.Int(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			labels := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(status),
				telemetry.AttrResult.String(statusResult(status)),
			)
			if metrics.ServerRequestDuration != nil {
				metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), labels)
			}
			if metrics.ServerRequestTotal != nil {
				metrics.ServerRequestTotal.Add(ctx, 1, labels)
			}
		})
	}
}

// statusResult buckets a status code for the result label.
func statusResult(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "success"
	}
}
