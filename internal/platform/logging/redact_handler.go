package logging

import (
	"log/slog"
	"maps"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers that carry
// credentials. middleware.RedactHeaders and the masq field rules both read
// it. x-user-id is the header identity provider's default credential.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-user-id":     true,
}

// SensitiveHeaderSet returns SensitiveHeaders plus the extra header names,
// lowercased. Deployments that trust a custom identity header add it here.
func SensitiveHeaderSet(extra ...string) map[string]bool {
	set := maps.Clone(SensitiveHeaders)
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			set[strings.ToLower(name)] = true
		}
	}
	return set
}

// sensitiveFields are attribute keys redacted wherever they appear.
var sensitiveFields = []string{"password", "secret", "token", "session_token"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated segments of ten or more characters, so version
	// strings do not match.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns the masq ReplaceAttr used by New. Field-name rules
// catch credentials logged under a known key; the regexes catch raw values
// that slipped into other fields.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+5)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
