package domain

import (
	"fmt"
	"strings"
)

// ValidateIDList checks a bulk id list: it must be non-empty and hold no
// blank or repeated ids. field names the offending request field.
func ValidateIDList(field string, ids []string) error {
	if len(ids) == 0 {
		return NewValidationError(field, MsgMustNotEmpty)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return NewValidationError(field, "must not contain blank ids")
		}
		if _, dup := seen[id]; dup {
			return NewValidationError(field, fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
