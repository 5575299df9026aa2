package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/noteboard/internal/adapters/identity"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/platform/config"
	"github.com/jsamuelsen11/noteboard/internal/platform/httpclient"
)

func TestHeaderProvider_Identify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		value   string
		want    domain.UserID
		wantErr error
	}{
		{name: "default header", value: "alice", want: "alice"},
		{name: "custom header", header: "x-board-user", value: "bob", want: "bob"},
		{name: "trims whitespace", value: "  carol ", want: "carol"},
		{name: "missing", wantErr: domain.ErrUnauthorized},
		{name: "blank", value: "   ", wantErr: domain.ErrUnauthorized},
		{name: "oversized", value: strings.Repeat("a", 129), wantErr: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := identity.NewHeaderProvider(tt.header)
			h := http.Header{}
			if tt.value != "" {
				h.Set(p.Header(), tt.value)
			}

			got, err := p.Identify(context.Background(), h)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeaderProvider_DefaultHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "X-User-Id", identity.NewHeaderProvider("").Header())
	assert.Equal(t, http.CanonicalHeaderKey(identity.DefaultHeader), identity.DefaultHeader)
	assert.Equal(t, "X-Board-User", identity.NewHeaderProvider("x-board-user").Header())
}

func newSessionClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "session-service", nil, slog.New(slog.DiscardHandler))
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func TestSessionProvider_Identify(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/session", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "sid=abc", r.Header.Get("Cookie"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "alice"})
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))
	h := bearer("tok-1")
	h.Set("Cookie", "sid=abc")

	got, err := p.Identify(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("alice"), got)
}

func TestSessionProvider_NoCredentialsSkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))

	_, err := p.Identify(context.Background(), http.Header{})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, calls.Load())
}

func TestSessionProvider_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"401 is unauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"403 is unauthorized", http.StatusForbidden, domain.ErrUnauthorized},
		{"404 is unauthorized", http.StatusNotFound, domain.ErrUnauthorized},
		{"429 is unavailable", http.StatusTooManyRequests, domain.ErrUnavailable},
		{"500 is unavailable", http.StatusInternalServerError, domain.ErrUnavailable},
		{"503 is unavailable", http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"session expired"}`))
			}))
			t.Cleanup(ts.Close)

			p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))

			_, err := p.Identify(context.Background(), bearer("tok"))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "session expired")
		})
	}
}

func TestSessionProvider_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))

	_, err := p.Identify(context.Background(), bearer("tok"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Contains(t, err.Error(), "418")
}

func TestSessionProvider_BlankUserID(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":"  "}`))
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))

	_, err := p.Identify(context.Background(), bearer("tok"))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionProvider_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "", slog.New(slog.DiscardHandler))

	_, err := p.Identify(context.Background(), bearer("tok"))
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestSessionProvider_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	p := identity.NewSessionProvider(newSessionClient(t, url), "", slog.New(slog.DiscardHandler))

	_, err := p.Identify(context.Background(), bearer("tok"))
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestSessionProvider_CustomPath(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/whoami", r.URL.Path)
		_, _ = w.Write([]byte(`{"user_id":"bob"}`))
	}))
	t.Cleanup(ts.Close)

	p := identity.NewSessionProvider(newSessionClient(t, ts.URL), "/auth/whoami", slog.New(slog.DiscardHandler))

	got, err := p.Identify(context.Background(), bearer("tok"))
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("bob"), got)
}

func TestSessionProvider_Health(t *testing.T) {
	t.Parallel()

	p := identity.NewSessionProvider(newSessionClient(t, "http://localhost"), "", slog.New(slog.DiscardHandler))

	assert.Equal(t, "session-service", p.Name())
	assert.NoError(t, p.HealthCheck(context.Background()))
}
