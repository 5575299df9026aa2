package note

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// Orderable fields accepted by Filter.Ordering. A leading "-" sorts
// descending.
const (
	OrderPosition  = "position"
	OrderCreatedAt = "created_at"
	OrderUpdatedAt = "updated_at"
)

// DefaultOrdering is applied when a filter names no ordering.
var DefaultOrdering = []string{OrderPosition, "-" + OrderCreatedAt}

// Filter holds optional filter criteria for listing notes.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	// ColumnID restricts the listing to one column.
	ColumnID *string
	// Unfiled restricts the listing to notes without a column. It is
	// mutually exclusive with ColumnID.
	Unfiled bool
	// Archived restricts the listing to archived or active notes.
	Archived *bool
	// Search is a case-insensitive substring matched against title and content.
	Search string
	// Ordering lists sort keys, most significant first.
	Ordering []string
}

// Validate checks the filter's ordering keys and column selection.
func (f Filter) Validate() error {
	fields := make(map[string]string)

	if f.Unfiled && f.ColumnID != nil {
		fields["column_id"] = "cannot select a column and the unfiled lane together"
	}
	for _, key := range f.Ordering {
		if !isOrderable(strings.TrimPrefix(key, "-")) {
			fields["ordering"] = fmt.Sprintf("unknown field %q", key)
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SortKeys returns the effective ordering, falling back to DefaultOrdering.
func (f Filter) SortKeys() []string {
	if len(f.Ordering) == 0 {
		return DefaultOrdering
	}
	return f.Ordering
}

func isOrderable(field string) bool {
	switch field {
	case OrderPosition, OrderCreatedAt, OrderUpdatedAt:
		return true
	default:
		return false
	}
}
