package ports

import (
	"context"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
	"github.com/jsamuelsen11/noteboard/internal/domain/ordering"
)

// BoardStore is the persistence port for columns and notes.
// Implemented by the store adapter; called by the application layer.
type BoardStore interface {
	// WithinTx runs fn in a single transaction. The transaction commits when
	// fn returns nil and rolls back on error, panic or context cancellation.
	// Transactions are serialized, so a scope snapshot read inside fn stays
	// current until fn returns.
	WithinTx(ctx context.Context, fn func(tx BoardTx) error) error
}

// BoardTx exposes the repositories bound to one transaction.
type BoardTx interface {
	ColumnRepository
	NoteRepository
}

// ColumnRepository persists columns. All lookups are scoped to owner.
type ColumnRepository interface {
	// ListColumns returns owner's columns ordered by position with NoteCount set.
	ListColumns(ctx context.Context, owner domain.UserID) ([]column.Column, error)

	// GetColumn returns domain.ErrNotFound when the column is missing.
	GetColumn(ctx context.Context, owner domain.UserID, id string) (*column.Column, error)

	// ColumnScope returns the position snapshot of owner's columns.
	ColumnScope(ctx context.Context, owner domain.UserID) ([]ordering.Item, error)

	// InsertColumn stores c and assigns its ID and CreatedAt.
	InsertColumn(ctx context.Context, c *column.Column) error

	// UpdateColumn writes the title and color of c. Positions change only
	// through SetColumnPositions.
	UpdateColumn(ctx context.Context, c *column.Column) error

	// SetColumnPositions applies position changes without ever holding two
	// columns of owner at the same position.
	SetColumnPositions(ctx context.Context, owner domain.UserID, changes []ordering.Change) error

	// DeleteColumn returns domain.ErrNotFound when the column is missing and
	// domain.ErrConflict while notes still reference it.
	DeleteColumn(ctx context.Context, owner domain.UserID, id string) error
}

// NoteRepository persists notes. All lookups are scoped to owner.
type NoteRepository interface {
	// ListNotes returns owner's notes matching filter with ColumnTitle set.
	ListNotes(ctx context.Context, owner domain.UserID, filter note.Filter) ([]note.Note, error)

	// GetNote returns domain.ErrNotFound when the note is missing.
	GetNote(ctx context.Context, owner domain.UserID, id string) (*note.Note, error)

	// NoteScope returns the position snapshot of owner's active notes in
	// columnID (nil for the unfiled lane).
	NoteScope(ctx context.Context, owner domain.UserID, columnID *string) ([]ordering.Item, error)

	// InsertNote stores n and assigns its ID and timestamps.
	InsertNote(ctx context.Context, n *note.Note) error

	// UpdateNote writes every mutable field of n and refreshes UpdatedAt.
	UpdateNote(ctx context.Context, n *note.Note) error

	// SetNotePositions applies position changes in order.
	SetNotePositions(ctx context.Context, owner domain.UserID, changes []ordering.Change) error

	// DeleteNote returns domain.ErrNotFound when the note is missing.
	DeleteNote(ctx context.Context, owner domain.UserID, id string) error

	// DeleteColumnNotes deletes every note of owner filed in columnID and
	// returns how many were removed.
	DeleteColumnNotes(ctx context.Context, owner domain.UserID, columnID string) (int64, error)
}
