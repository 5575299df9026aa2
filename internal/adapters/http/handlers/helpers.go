package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/platform/logging"
)

// pathID extracts a non-blank string path parameter from the chi URL params.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", domain.NewValidationError(dto.LocationPath+"."+param, domain.MsgRequired)
	}
	return id, nil
}

// currentUser returns the user resolved by the authentication middleware.
// Services reject the zero UserID with domain.ErrUnauthorized.
func currentUser(r *http.Request) domain.UserID {
	return middleware.UserIDFromContext(r.Context())
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes exactly one JSON value from the body into dst. On
// failure it writes a 400 naming the problem and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(dto.LocationBody, bodyErrorMessage(err)))
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data after JSON value")

func bodyErrorMessage(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return domain.MsgMustNotEmpty
	case errors.Is(err, errTrailingData):
		return "must contain a single JSON object"
	default:
		return "invalid JSON"
	}
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
