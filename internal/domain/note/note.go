package note

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// DefaultColor is assigned to notes created without a color.
const DefaultColor = "#FFFFFF"

// MaxTitleLength is the longest accepted note title, in characters.
const MaxTitleLength = 200

// Note is a card owned by a single user. A nil ColumnID files the note in the
// unfiled lane. Active notes (IsArchived false) are ordered by Position within
// their (owner, column) scope; an archived note keeps the position it had when
// it was archived and takes no part in active ordering.
type Note struct {
	ID          string
	OwnerID     domain.UserID
	ColumnID    *string
	ColumnTitle string
	Title       string
	Content     string
	Color       string
	Position    int
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Note entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (n *Note) Validate() error {
	fields := make(map[string]string)

	if msg := ValidateTitle(n.Title); msg != "" {
		fields["title"] = msg
	}
	if strings.TrimSpace(n.Content) == "" {
		fields["content"] = domain.MsgRequired
	}
	if !domain.IsHexColor(n.Color) {
		fields["color"] = domain.MsgInvalidColor
	}
	if n.Position < 0 {
		fields["position"] = fmt.Sprintf("must be non-negative, got %d", n.Position)
	}
	if n.ColumnID != nil && strings.TrimSpace(*n.ColumnID) == "" {
		fields["column_id"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateTitle returns the validation message for title, or "" when valid.
func ValidateTitle(title string) string {
	switch {
	case strings.TrimSpace(title) == "":
		return domain.MsgRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	default:
		return ""
	}
}

// InColumn reports whether n is filed in the column with the given id. A nil
// id means the unfiled lane.
func (n *Note) InColumn(columnID *string) bool {
	return SameColumn(n.ColumnID, columnID)
}

// SameColumn reports whether two column references denote the same scope.
func SameColumn(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
