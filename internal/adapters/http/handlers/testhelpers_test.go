package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

const testUser = domain.UserID("alice")

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request authenticated as testUser.
func newRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithUserID(req.Context(), testUser))
}

func validColumn() column.Column {
	return column.Column{
		ID:        "c-1",
		OwnerID:   testUser,
		Title:     "Todo",
		Color:     column.DefaultColor,
		Position:  1,
		CreatedAt: testTime,
	}
}

func validNote() note.Note {
	col := "c-1"
	return note.Note{
		ID:          "n-1",
		OwnerID:     testUser,
		ColumnID:    &col,
		ColumnTitle: "Todo",
		Title:       "Milk",
		Content:     "2 liters",
		Color:       note.DefaultColor,
		Position:    1,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
