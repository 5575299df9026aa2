package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 16

// problemDetail is the subset of an RFC 9457 body the session service returns.
type problemDetail struct {
	Detail string `json:"detail"`
}

// translateHTTPError maps a non-200 session service response to a domain
// error. Rejected or unknown sessions become domain.ErrUnauthorized; an
// overloaded or failing service becomes domain.ErrUnavailable.
func translateHTTPError(resp *http.Response) error {
	detail := parseDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("session rejected: %s: %w", detail, domain.ErrUnauthorized)

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("session service: %s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("session service: unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseDetail returns the problem detail of resp, or "" when the body is not
// application/problem+json or cannot be decoded.
func parseDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return ""
	}
	return pd.Detail
}
