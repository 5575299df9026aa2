package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
)

const (
	redacted = "[REDACTED]"

	// maxHeaderValueLen bounds each logged header value.
	maxHeaderValueLen = 256
)

// RedactHeaders renders headers as log attributes sorted by name. Values of
// logging.SensitiveHeaders and of the extra header names are masked, repeated
// values are comma joined and long values are truncated.
func RedactHeaders(headers http.Header, extra ...string) []slog.Attr {
	return redactHeaders(headers, logging.SensitiveHeaderSet(extra...))
}

func redactHeaders(headers http.Header, sensitive map[string]bool) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		if sensitive[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		v := strings.Join(headers[key], ",")
		if len(v) > maxHeaderValueLen {
			v = v[:maxHeaderValueLen] + "..."
		}
		attrs = append(attrs, slog.String(key, v))
	}
	return attrs
}
