package ports

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// IdentityProvider resolves the user behind an inbound request.
// Implemented by the identity adapters; called by the authentication middleware.
type IdentityProvider interface {
	// Identify returns the authenticated user for the request headers.
	// Returns domain.ErrUnauthorized when no valid identity is present and
	// domain.ErrUnavailable when the identity backend cannot be reached.
	Identify(ctx context.Context, header http.Header) (domain.UserID, error)
}
