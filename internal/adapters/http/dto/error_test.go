package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/domain"
)

func TestNewErrorResponse_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", domain.NewValidationError("title", domain.MsgRequired), http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"wrapped", fmt.Errorf("column c-1: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unmapped", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", http.NoBody)
			got := dto.NewErrorResponse(req, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), got.Title)
			assert.Equal(t, "about:blank", got.Type)
		})
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	got := dto.NewErrorResponse(req, errors.New("sqlite: database is locked"))

	assert.Equal(t, "an unexpected error occurred", got.Detail)
}

func TestNewErrorResponse_InstanceOmitsQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes?search=secret", http.NoBody)
	got := dto.NewErrorResponse(req, domain.ErrNotFound)

	assert.Equal(t, "/api/v1/notes", got.Instance)
	assert.Equal(t, "not found", got.Detail)
}

func TestNewErrorResponse_ValidationLocations(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":       domain.MsgRequired,
		"path.id":     domain.MsgRequired,
		"body":        "invalid JSON",
		"query.order": "unknown field",
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", http.NoBody)
	got := dto.NewErrorResponse(req, err)

	locations := make([]string, 0, len(got.Errors))
	for _, d := range got.Errors {
		locations = append(locations, d.Location)
	}
	assert.Equal(t, []string{"body", "body.title", "path.id", "query.order"}, locations)
}

func TestNewErrorResponse_NoErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.Empty(t, dto.NewErrorResponse(req, domain.ErrConflict).Errors)
}

func TestInLocation(t *testing.T) {
	t.Parallel()

	err := dto.InLocation(&domain.ValidationError{Fields: map[string]string{
		"ordering":  "unknown field",
		"path.id":   domain.MsgRequired,
		"column_id": "conflicts with unfiled",
	}}, dto.LocationQuery)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"query.ordering":  "unknown field",
		"query.column_id": "conflicts with unfiled",
		"path.id":         domain.MsgRequired,
	}, verr.Fields)

	assert.Equal(t, domain.ErrConflict, dto.InLocation(domain.ErrConflict, dto.LocationQuery))
	assert.NoError(t, dto.InLocation(nil, dto.LocationQuery))
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/notes/n-1", http.NoBody)
	dto.WriteErrorResponse(rec, req, domain.NewValidationError("title", domain.MsgMustNotEmpty))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "/api/v1/notes/n-1", body.Instance)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, dto.ErrorDetail{Location: "body.title", Message: domain.MsgMustNotEmpty}, body.Errors[0])
}
