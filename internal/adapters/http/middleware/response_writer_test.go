package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	assert.Equal(t, http.StatusOK, rw.statusCode, "defaults to 200")
	assert.False(t, rw.headerWritten)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusCreated, rw.statusCode, "first WriteHeader wins")
	assert.True(t, rw.headerWritten)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, _ = rw.Write([]byte("de"))

	assert.Equal(t, int64(5), rw.written)
	assert.True(t, rw.headerWritten, "Write implies a header")
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	assert.Same(t, rec, newResponseWriter(rec).Unwrap())

	// http.ResponseController reaches the recorder's Flush through Unwrap.
	require.NoError(t, http.NewResponseController(newResponseWriter(rec)).Flush())
	assert.True(t, rec.Flushed)
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/x", http.NoBody)))

	var got string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			got = routePattern(req)
		})
	})
	r.Patch("/api/v1/notes/{id}/move", func(http.ResponseWriter, *http.Request) {})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/v1/notes/n-1/move", http.NoBody))

	assert.Equal(t, "/api/v1/notes/{id}/move", got)
}
