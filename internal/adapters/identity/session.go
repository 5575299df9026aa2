package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// DefaultSessionPath is the session lookup endpoint on the session service.
const DefaultSessionPath = "/api/v1/session"

const maxSessionBodySize = 1 << 16

// forwardedHeaders are the inbound credentials passed to the session service.
var forwardedHeaders = []string{"Authorization", "Cookie"}

var (
	_ ports.IdentityProvider = (*SessionProvider)(nil)
	_ ports.HealthChecker    = (*SessionProvider)(nil)
)

// sessionResponse is the session service's lookup body.
type sessionResponse struct {
	UserID string `json:"user_id"`
}

// SessionProvider resolves the caller through a remote session service. Every
// lookup goes through [httpclient.Client], so it is retried, rate limited,
// traced and guarded by the client's circuit breaker.
type SessionProvider struct {
	client *httpclient.Client
	path   string
	logger *slog.Logger
}

// NewSessionProvider returns a provider that calls path on the client's base
// URL. An empty path falls back to [DefaultSessionPath].
func NewSessionProvider(client *httpclient.Client, path string, logger *slog.Logger) *SessionProvider {
	if path == "" {
		path = DefaultSessionPath
	}
	return &SessionProvider{client: client, path: path, logger: logger}
}

// Identify forwards the request credentials and returns the user id of the
// session. A request without credentials is rejected without a network call.
func (p *SessionProvider) Identify(ctx context.Context, header http.Header) (domain.UserID, error) {
	if !hasCredentials(header) {
		return "", fmt.Errorf("no session credentials: %w", domain.ErrUnauthorized)
	}

	req, err := p.client.NewRequest(ctx, http.MethodGet, p.path, nil)
	if err != nil {
		return "", err
	}
	for _, name := range forwardedHeaders {
		if values := header.Values(name); len(values) > 0 {
			req.Header[name] = append([]string(nil), values...)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still return the response.
		if resp != nil {
			defer p.closeBody(ctx, resp)
			return "", translateHTTPError(resp)
		}
		p.logger.ErrorContext(ctx, "session lookup failed",
			slog.String("path", p.path),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("session lookup: %w: %w", domain.ErrUnavailable, err)
	}
	defer p.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return "", translateHTTPError(resp)
	}

	var body sessionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSessionBodySize)).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding session response: %w: %w", domain.ErrUnavailable, err)
	}
	return parseUserID(body.UserID, "session response")
}

// Name identifies the session service in the health registry.
func (p *SessionProvider) Name() string {
	return p.client.Name()
}

// HealthCheck reports the session service's circuit breaker state.
func (p *SessionProvider) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

func (p *SessionProvider) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		p.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func hasCredentials(header http.Header) bool {
	for _, name := range forwardedHeaders {
		if header.Get(name) != "" {
			return true
		}
	}
	return false
}
