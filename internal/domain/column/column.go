package column

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// DefaultColor is assigned to columns created without a color.
const DefaultColor = "#3B82F6"

// MaxTitleLength is the longest accepted column title, in characters.
const MaxTitleLength = 100

// Column is a board lane owned by a single user. Position orders the owner's
// columns and is unique per owner.
type Column struct {
	ID        string
	OwnerID   domain.UserID
	Title     string
	Color     string
	Position  int
	NoteCount int
	CreatedAt time.Time
}

// Validate checks business rules for the Column entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Column) Validate() error {
	fields := make(map[string]string)

	if msg := ValidateTitle(c.Title); msg != "" {
		fields["title"] = msg
	}
	if !domain.IsHexColor(c.Color) {
		fields["color"] = domain.MsgInvalidColor
	}
	if c.Position < 0 {
		fields["position"] = fmt.Sprintf("must be non-negative, got %d", c.Position)
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

// Patch carries the optional fields of a column update. Nil fields are left
// unchanged. A non-nil Position is a move.
type Patch struct {
	Title    *string
	Color    *string
	Position *int
}

// Apply copies the plain fields of p onto c. Position is not applied; moves
// go through the ordering rules.
func (p Patch) Apply(c *Column) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
}
