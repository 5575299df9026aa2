package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
	"github.com/jsamuelsen11/noteboard/internal/domain/ordering"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// Compile-time check that NoteService implements ports.NoteService.
var _ ports.NoteService = (*NoteService)(nil)

// NoteService implements ports.NoteService on top of the board store.
type NoteService struct {
	store    ports.BoardStore
	recorder PositionRecorder
	logger   *slog.Logger
}

// NewNoteService creates a NoteService. recorder and logger may be nil.
func NewNoteService(store ports.BoardStore, recorder PositionRecorder, logger *slog.Logger) *NoteService {
	return &NoteService{
		store:    store,
		recorder: recorderOrNop(recorder),
		logger:   loggerOrDiscard(logger),
	}
}

// ListNotes returns the user's notes matching filter.
func (s *NoteService) ListNotes(ctx context.Context, user domain.UserID, filter note.Filter) ([]note.Note, error) {
	s.logger.InfoContext(ctx, "listing notes")

	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var notes []note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		var err error
		notes, err = tx.ListNotes(ctx, user, filter)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "ListNotes", err)
		return nil, err
	}
	return notes, nil
}

// GetNote returns a single note of the user.
func (s *NoteService) GetNote(ctx context.Context, user domain.UserID, id string) (*note.Note, error) {
	s.logger.InfoContext(ctx, "fetching note", slog.String("note_id", id))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var n *note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		var err error
		n, err = tx.GetNote(ctx, user, id)
		return notFound(entityNote, id, err)
	})
	if err != nil {
		logFailure(ctx, s.logger, "GetNote", err, slog.String("note_id", id))
		return nil, err
	}
	return n, nil
}

// CreateNote appends the note to its active scope, or places it at
// n.Position when set. New notes are always active.
func (s *NoteService) CreateNote(ctx context.Context, user domain.UserID, n *note.Note) (*note.Note, error) {
	s.logger.InfoContext(ctx, "creating note", slog.Any("column_id", n.ColumnID))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	n.OwnerID = user
	n.IsArchived = false
	if n.Color == "" {
		n.Color = note.DefaultColor
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	var created *note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		if err := s.requireColumn(ctx, tx, user, n.ColumnID); err != nil {
			return err
		}

		items, err := tx.NoteScope(ctx, user, n.ColumnID)
		if err != nil {
			return err
		}
		if n.Position == 0 {
			_, hi, ok := ordering.Bounds(items)
			n.Position = ordering.Next(hi, ok)
		} else {
			pos, changes := ordering.Place(items, "", n.Position)
			if err := tx.SetNotePositions(ctx, user, changes); err != nil {
				return err
			}
			s.recorder.RecordPositionWrites(ctx, entityNote, opCreate, len(changes))
			n.Position = pos
		}

		if err := tx.InsertNote(ctx, n); err != nil {
			return err
		}
		created, err = tx.GetNote(ctx, user, n.ID)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateNote", err)
		return nil, err
	}
	return created, nil
}

// UpdateNote applies patch: plain fields first, then an archive toggle when
// the requested flag differs, then the move.
func (s *NoteService) UpdateNote(ctx context.Context, user domain.UserID, id string, patch note.Patch) (*note.Note, error) {
	s.logger.InfoContext(ctx, "updating note", slog.String("note_id", id))

	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := patch.Move.Validate(); err != nil {
		return nil, err
	}

	var updated *note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		n, err := tx.GetNote(ctx, user, id)
		if err != nil {
			return notFound(entityNote, id, err)
		}

		patch.Apply(n)
		if patch.Archived != nil {
			n.IsArchived = *patch.Archived
		}
		if err := n.Validate(); err != nil {
			return err
		}
		if err := tx.UpdateNote(ctx, n); err != nil {
			return err
		}

		if !patch.Move.IsZero() {
			if err := s.move(ctx, tx, user, n, patch.Move); err != nil {
				return err
			}
		}

		updated, err = tx.GetNote(ctx, user, id)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateNote", err, slog.String("note_id", id))
		return nil, err
	}
	return updated, nil
}

// MoveNote repositions the note within its scope or moves it to another.
func (s *NoteService) MoveNote(ctx context.Context, user domain.UserID, id string, move note.Move) (*note.Note, error) {
	s.logger.InfoContext(ctx, "moving note",
		slog.String("note_id", id),
		slog.Bool("change_column", move.ChangeColumn),
	)

	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := move.Validate(); err != nil {
		return nil, err
	}

	var moved *note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		n, err := tx.GetNote(ctx, user, id)
		if err != nil {
			return notFound(entityNote, id, err)
		}
		if err := s.move(ctx, tx, user, n, move); err != nil {
			return err
		}
		moved, err = tx.GetNote(ctx, user, id)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "MoveNote", err, slog.String("note_id", id))
		return nil, err
	}
	return moved, nil
}

// move relocates n. Archived notes are relocated without touching any active
// scope. Within a scope the siblings between the old and new slot shift by
// one. Across scopes the source is renumbered without the note and the
// destination is renumbered around it.
func (s *NoteService) move(ctx context.Context, tx ports.BoardTx, user domain.UserID, n *note.Note, m note.Move) error {
	dest := n.ColumnID
	if m.ChangeColumn {
		dest = m.ColumnID
		if err := s.requireColumn(ctx, tx, user, dest); err != nil {
			return err
		}
	}

	if n.IsArchived {
		n.ColumnID = dest
		if m.Position != nil {
			n.Position = *m.Position
		}
		return tx.UpdateNote(ctx, n)
	}

	if n.InColumn(dest) {
		if m.Position == nil {
			return nil
		}
		items, err := tx.NoteScope(ctx, user, dest)
		if err != nil {
			return err
		}
		_, changes, err := ordering.Move(items, n.ID, *m.Position)
		if err != nil {
			return notFound(entityNote, n.ID, domain.ErrNotFound)
		}
		if err := tx.SetNotePositions(ctx, user, changes); err != nil {
			return err
		}
		s.recorder.RecordPositionWrites(ctx, entityNote, opMove, len(changes))
		return nil
	}

	source, err := tx.NoteScope(ctx, user, n.ColumnID)
	if err != nil {
		return err
	}
	source = ordering.Without(source, n.ID)
	writes := ordering.Renumber(source, ordering.Base(source))
	if err := tx.SetNotePositions(ctx, user, writes); err != nil {
		return err
	}

	target, err := tx.NoteScope(ctx, user, dest)
	if err != nil {
		return err
	}
	if m.Position == nil {
		_, hi, ok := ordering.Bounds(target)
		n.Position = ordering.Next(hi, ok)
	} else {
		pos, changes := ordering.Place(target, n.ID, *m.Position)
		if err := tx.SetNotePositions(ctx, user, changes); err != nil {
			return err
		}
		writes = append(writes, changes...)
		n.Position = pos
	}

	n.ColumnID = dest
	if err := tx.UpdateNote(ctx, n); err != nil {
		return err
	}
	s.recorder.RecordPositionWrites(ctx, entityNote, opMove, len(writes)+1)
	return nil
}

// ArchiveToggle flips the archive flag. No position is rewritten: an
// archived note keeps its position frozen and re-enters its scope there.
func (s *NoteService) ArchiveToggle(ctx context.Context, user domain.UserID, id string) (*note.Note, error) {
	s.logger.InfoContext(ctx, "toggling note archive", slog.String("note_id", id))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var toggled *note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		n, err := tx.GetNote(ctx, user, id)
		if err != nil {
			return notFound(entityNote, id, err)
		}
		n.IsArchived = !n.IsArchived
		if err := tx.UpdateNote(ctx, n); err != nil {
			return err
		}
		toggled, err = tx.GetNote(ctx, user, id)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "ArchiveToggle", err, slog.String("note_id", id))
		return nil, err
	}
	return toggled, nil
}

// DeleteNote deletes the note; an active note's scope is compacted.
func (s *NoteService) DeleteNote(ctx context.Context, user domain.UserID, id string) error {
	s.logger.InfoContext(ctx, "deleting note", slog.String("note_id", id))

	if err := requireUser(user); err != nil {
		return err
	}

	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		n, err := tx.GetNote(ctx, user, id)
		if err != nil {
			return notFound(entityNote, id, err)
		}
		if err := tx.DeleteNote(ctx, user, id); err != nil {
			return err
		}
		if n.IsArchived {
			return nil
		}

		remaining, err := tx.NoteScope(ctx, user, n.ColumnID)
		if err != nil {
			return err
		}
		changes := ordering.Compact(remaining, n.Position)
		if err := tx.SetNotePositions(ctx, user, changes); err != nil {
			return err
		}
		s.recorder.RecordPositionWrites(ctx, entityNote, opDelete, len(changes))
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteNote", err, slog.String("note_id", id))
		return err
	}
	return nil
}

// ReorderNotes assigns list order to the listed notes. With ChangeColumn
// set, every listed note is first re-scoped to the target column. Each
// affected active scope is then rebuilt: its listed notes take list order
// from 0 and its unlisted notes follow; a scope left without listed notes is
// renumbered from its own base. Archived notes take their list index.
func (s *NoteService) ReorderNotes(ctx context.Context, user domain.UserID, r note.Reorder) ([]note.Note, error) {
	s.logger.InfoContext(ctx, "reordering notes",
		slog.Int("count", len(r.IDs)),
		slog.Bool("change_column", r.ChangeColumn),
	)

	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var reordered []note.Note
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		listed := make([]*note.Note, len(r.IDs))
		for i, id := range r.IDs {
			n, err := tx.GetNote(ctx, user, id)
			if err != nil {
				return notFound(entityNote, id, err)
			}
			listed[i] = n
		}
		if r.ChangeColumn {
			if err := s.requireColumn(ctx, tx, user, r.ColumnID); err != nil {
				return err
			}
		}

		var scopes scopeSet
		var archived []ordering.Change
		for i, n := range listed {
			if n.IsArchived {
				archived = append(archived, ordering.Change{ID: n.ID, Position: i})
			} else {
				scopes.add(n.ColumnID)
			}
			if r.ChangeColumn && !n.InColumn(r.ColumnID) {
				n.ColumnID = r.ColumnID
				if err := tx.UpdateNote(ctx, n); err != nil {
					return err
				}
			}
			if !n.IsArchived {
				scopes.add(n.ColumnID)
			}
		}

		writes := len(archived)
		for _, columnID := range scopes {
			items, err := tx.NoteScope(ctx, user, columnID)
			if err != nil {
				return err
			}
			var order []string
			for _, n := range listed {
				if !n.IsArchived && n.InColumn(columnID) {
					order = append(order, n.ID)
				}
			}

			var changes []ordering.Change
			if len(order) > 0 {
				changes = ordering.Arrange(order, items, 0)
			} else {
				changes = ordering.Renumber(items, ordering.Base(items))
			}
			if err := tx.SetNotePositions(ctx, user, changes); err != nil {
				return err
			}
			writes += len(changes)
		}
		if err := tx.SetNotePositions(ctx, user, archived); err != nil {
			return err
		}
		s.recorder.RecordPositionWrites(ctx, entityNote, opReorder, writes)

		reordered = make([]note.Note, 0, len(listed))
		for _, n := range listed {
			fresh, err := tx.GetNote(ctx, user, n.ID)
			if err != nil {
				return err
			}
			reordered = append(reordered, *fresh)
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "ReorderNotes", err)
		return nil, err
	}
	return reordered, nil
}

// requireColumn verifies that columnID, when set, is one of user's columns.
func (s *NoteService) requireColumn(ctx context.Context, tx ports.BoardTx, user domain.UserID, columnID *string) error {
	if columnID == nil {
		return nil
	}
	if _, err := tx.GetColumn(ctx, user, *columnID); err != nil {
		return notFound(entityColumn, *columnID, err)
	}
	return nil
}

// scopeSet is an insertion-ordered set of note scopes keyed by column id.
type scopeSet []*string

func (s *scopeSet) add(columnID *string) {
	for _, existing := range *s {
		if note.SameColumn(existing, columnID) {
			return
		}
	}
	*s = append(*s, columnID)
}
