package note

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// Move relocates a note. When ChangeColumn is false the note stays in its
// current column and only Position applies. When ChangeColumn is true,
// ColumnID is the destination (nil for the unfiled lane). A nil Position
// appends to the destination scope.
type Move struct {
	ChangeColumn bool
	ColumnID     *string
	Position     *int
}

// IsZero reports whether the move requests nothing.
func (m Move) IsZero() bool {
	return !m.ChangeColumn && m.Position == nil
}

// Validate rejects negative positions and blank destination ids.
func (m Move) Validate() error {
	fields := make(map[string]string)
	if m.Position != nil && *m.Position < 0 {
		fields["position"] = fmt.Sprintf("must be non-negative, got %d", *m.Position)
	}
	if m.ChangeColumn && m.ColumnID != nil && strings.TrimSpace(*m.ColumnID) == "" {
		fields["column_id"] = domain.MsgMustNotEmpty
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch carries the optional fields of a note update. Nil fields are left
// unchanged. Archived toggles the archive flag when it differs from the
// current state; Move relocates the note inside the same transaction.
type Patch struct {
	Title    *string
	Content  *string
	Color    *string
	Archived *bool
	Move     Move
}

// Apply copies the plain fields of p onto n. Archive and move semantics are
// applied by the caller through the ordering rules.
func (p Patch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
}

// Reorder is a bulk reposition request. IDs are assigned list indexes in
// order. When ChangeColumn is true every listed note is re-scoped to
// ColumnID (nil for unfiled) first.
type Reorder struct {
	IDs          []string
	ChangeColumn bool
	ColumnID     *string
}

// Validate checks that the reorder names at least one note and no note twice.
func (r Reorder) Validate() error {
	return domain.ValidateIDList("note_ids", r.IDs)
}
