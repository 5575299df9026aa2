// Package identity implements the [ports.IdentityProvider] adapters that map
// an inbound request to the user whose board it reads or changes.
//
// Two providers exist:
//   - [HeaderProvider] trusts a header set by a gateway in front of the
//     service (local and test profiles).
//   - [SessionProvider] asks a remote session service who the caller is,
//     forwarding the request credentials.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// DefaultHeader is the header read by [HeaderProvider] when none is configured.
const DefaultHeader = "X-User-Id"

// maxUserIDLength bounds identifiers accepted from any provider.
const maxUserIDLength = 128

var _ ports.IdentityProvider = (*HeaderProvider)(nil)

// HeaderProvider reads the user id from a single trusted request header.
type HeaderProvider struct {
	header string
}

// NewHeaderProvider returns a provider reading the named header. An empty
// name falls back to [DefaultHeader].
func NewHeaderProvider(header string) *HeaderProvider {
	if header == "" {
		header = DefaultHeader
	}
	return &HeaderProvider{header: http.CanonicalHeaderKey(header)}
}

// Header returns the canonical name of the header this provider trusts.
func (p *HeaderProvider) Header() string {
	return p.header
}

// Identify returns the header value as the user id, or domain.ErrUnauthorized
// when it is absent, blank or oversized.
func (p *HeaderProvider) Identify(_ context.Context, header http.Header) (domain.UserID, error) {
	return parseUserID(header.Get(p.header), p.header)
}

func parseUserID(raw, source string) (domain.UserID, error) {
	id := domain.UserID(strings.TrimSpace(raw))
	if id.IsZero() {
		return "", fmt.Errorf("missing user id in %s: %w", source, domain.ErrUnauthorized)
	}
	if len(id) > maxUserIDLength {
		return "", fmt.Errorf("user id from %s exceeds %d characters: %w", source, maxUserIDLength, domain.ErrUnauthorized)
	}
	return id, nil
}
