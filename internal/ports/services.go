package ports

import (
	"context"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/board"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

// ColumnService defines the service port for the column ordering domain.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method acts on behalf of user and only sees that user's columns.
type ColumnService interface {
	// ListColumns returns the user's columns ordered by position, each with
	// the number of active notes it holds.
	ListColumns(ctx context.Context, user domain.UserID) ([]column.Column, error)

	// GetColumn returns a single column.
	// Returns domain.ErrNotFound if the column does not exist for user.
	GetColumn(ctx context.Context, user domain.UserID, id string) (*column.Column, error)

	// CreateColumn creates a column. A zero Position appends it after the
	// user's last column; a positive Position places it at that slot and
	// renumbers the rest.
	// Returns domain.ErrValidation if the column fails validation.
	CreateColumn(ctx context.Context, user domain.UserID, c *column.Column) (*column.Column, error)

	// UpdateColumn applies patch. A patch carrying a position moves the column.
	// Returns domain.ErrNotFound if the column does not exist for user.
	UpdateColumn(ctx context.Context, user domain.UserID, id string, patch column.Patch) (*column.Column, error)

	// MoveColumn moves a column to position, shifting the siblings in between.
	MoveColumn(ctx context.Context, user domain.UserID, id string, position int) (*column.Column, error)

	// DeleteColumn deletes a column, applies the configured policy to its
	// notes and closes the gap in the remaining columns.
	// Returns domain.ErrNotFound if the column does not exist for user.
	DeleteColumn(ctx context.Context, user domain.UserID, id string) error

	// ReorderColumns assigns list indexes to the given columns. The write is
	// atomic: an unknown id fails the whole reorder with domain.ErrNotFound.
	ReorderColumns(ctx context.Context, user domain.UserID, ids []string) ([]column.Column, error)
}

// NoteService defines the service port for the note ordering domain.
// Implemented by the application layer; called by inbound adapters (handlers).
type NoteService interface {
	// ListNotes returns the user's notes matching filter.
	ListNotes(ctx context.Context, user domain.UserID, filter note.Filter) ([]note.Note, error)

	// GetNote returns a single note.
	// Returns domain.ErrNotFound if the note does not exist for user.
	GetNote(ctx context.Context, user domain.UserID, id string) (*note.Note, error)

	// CreateNote creates a note in its column (or the unfiled lane). A zero
	// Position appends it to the active scope.
	// Returns domain.ErrNotFound if the target column does not exist for user.
	CreateNote(ctx context.Context, user domain.UserID, n *note.Note) (*note.Note, error)

	// UpdateNote applies patch, including archive and move semantics, in a
	// single transaction.
	UpdateNote(ctx context.Context, user domain.UserID, id string, patch note.Patch) (*note.Note, error)

	// MoveNote repositions a note within its column or moves it to another.
	MoveNote(ctx context.Context, user domain.UserID, id string, move note.Move) (*note.Note, error)

	// ArchiveToggle flips the archive flag without renumbering anything.
	ArchiveToggle(ctx context.Context, user domain.UserID, id string) (*note.Note, error)

	// DeleteNote deletes a note and compacts its scope when it was active.
	DeleteNote(ctx context.Context, user domain.UserID, id string) error

	// ReorderNotes assigns list indexes to the given notes, optionally
	// re-scoping them to a column first. The write is atomic.
	ReorderNotes(ctx context.Context, user domain.UserID, reorder note.Reorder) ([]note.Note, error)
}

// BoardService defines the service port for the whole-board read model.
type BoardService interface {
	// GetBoard returns every column with its active notes plus the unfiled lane.
	GetBoard(ctx context.Context, user domain.UserID) (*board.Board, error)
}
