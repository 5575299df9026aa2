package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

type userIDKey struct{}

// WithUserID returns a new context carrying the authenticated user.
func WithUserID(ctx context.Context, user domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, user)
}

// UserIDFromContext returns the user stored by Authenticate, or the zero
// UserID when the request was not authenticated.
func UserIDFromContext(ctx context.Context) domain.UserID {
	if id, ok := ctx.Value(userIDKey{}).(domain.UserID); ok {
		return id
	}
	return ""
}

// Authenticate returns middleware that resolves the caller through provider
// before any handler runs. Requests without a valid identity get a 401
// problem response; an unreachable identity backend yields 502. On success
// the user is stored in the context and added to the request logger as
// user_id.
//
// Register it after Logging so the request logger exists.
func Authenticate(provider ports.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.FromContext(ctx)

			user, err := provider.Identify(ctx, r.Header)
			if err == nil && user.IsZero() {
				err = domain.ErrUnauthorized
			}
			if err != nil {
				level := slog.LevelWarn
				if !errors.Is(err, domain.ErrUnauthorized) {
					level = slog.LevelError
				}
				logger.Log(ctx, level, "authentication failed",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = WithUserID(ctx, user)
			ctx = logging.WithLogger(ctx, logger.With(slog.String("user_id", user.String())))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
