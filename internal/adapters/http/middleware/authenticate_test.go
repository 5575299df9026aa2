package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
	"github.com/jsamuelsen11/noteboard/mocks"
)

func TestAuthenticate_StoresUser(t *testing.T) {
	t.Parallel()

	provider := mocks.NewMockIdentityProvider(t)
	provider.EXPECT().Identify(mock.Anything, mock.Anything).Return(domain.UserID("alice"), nil)

	var got domain.UserID
	handler := middleware.Authenticate(provider)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got != "alice" {
		t.Errorf("UserIDFromContext = %q, want %q", got, "alice")
	}
}

func TestAuthenticate_PassesRequestHeaders(t *testing.T) {
	t.Parallel()

	provider := mocks.NewMockIdentityProvider(t)
	provider.EXPECT().
		Identify(mock.Anything, mock.MatchedBy(func(h http.Header) bool {
			return h.Get("Authorization") == "Bearer tok"
		})).
		Return(domain.UserID("bob"), nil)

	handler := middleware.Authenticate(provider)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user       domain.UserID
		err        error
		wantStatus int
	}{
		{"unauthorized", "", fmt.Errorf("missing user id: %w", domain.ErrUnauthorized), http.StatusUnauthorized},
		{"blank user without error", "", nil, http.StatusUnauthorized},
		{"backend unavailable", "", fmt.Errorf("session lookup: %w", domain.ErrUnavailable), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewMockIdentityProvider(t)
			provider.EXPECT().Identify(mock.Anything, mock.Anything).Return(tt.user, tt.err)

			called := false
			handler := middleware.Authenticate(provider)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				called = true
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/columns", http.NoBody))

			if called {
				t.Error("handler ran for an unauthenticated request")
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}

			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding problem body: %v", err)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("body status = %d, want %d", body.Status, tt.wantStatus)
			}
		})
	}
}

func TestAuthenticate_AddsUserToLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	provider := mocks.NewMockIdentityProvider(t)
	provider.EXPECT().Identify(mock.Anything, mock.Anything).Return(domain.UserID("carol"), nil)

	handler := middleware.Authenticate(provider)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	req = req.WithContext(logging.WithLogger(req.Context(), base))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), `"user_id":"carol"`) {
		t.Errorf("log output missing user_id: %s", buf.String())
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.UserIDFromContext(context.Background()); got != "" {
		t.Errorf("UserIDFromContext = %q, want empty", got)
	}
	ctx := middleware.WithUserID(context.Background(), "dave")
	if got := middleware.UserIDFromContext(ctx); got != "dave" {
		t.Errorf("UserIDFromContext = %q, want %q", got, "dave")
	}
}
