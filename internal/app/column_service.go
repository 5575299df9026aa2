package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
	"github.com/jsamuelsen11/noteboard/internal/domain/ordering"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// Compile-time check that ColumnService implements ports.ColumnService.
var _ ports.ColumnService = (*ColumnService)(nil)

// ColumnService implements ports.ColumnService on top of the board store.
type ColumnService struct {
	store    ports.BoardStore
	policy   column.DeletePolicy
	recorder PositionRecorder
	logger   *slog.Logger
}

// NewColumnService creates a ColumnService. policy decides the fate of a
// deleted column's notes; recorder and logger may be nil.
func NewColumnService(store ports.BoardStore, policy column.DeletePolicy, recorder PositionRecorder, logger *slog.Logger) *ColumnService {
	if policy == "" {
		policy = column.DeleteCascade
	}
	return &ColumnService{
		store:    store,
		policy:   policy,
		recorder: recorderOrNop(recorder),
		logger:   loggerOrDiscard(logger),
	}
}

// ListColumns returns the user's columns in position order.
func (s *ColumnService) ListColumns(ctx context.Context, user domain.UserID) ([]column.Column, error) {
	s.logger.InfoContext(ctx, "listing columns")

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var columns []column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		var err error
		columns, err = tx.ListColumns(ctx, user)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "ListColumns", err)
		return nil, err
	}
	return columns, nil
}

// GetColumn returns a single column of the user.
func (s *ColumnService) GetColumn(ctx context.Context, user domain.UserID, id string) (*column.Column, error) {
	s.logger.InfoContext(ctx, "fetching column", slog.String("column_id", id))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var c *column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		var err error
		c, err = tx.GetColumn(ctx, user, id)
		return notFound(entityColumn, id, err)
	})
	if err != nil {
		logFailure(ctx, s.logger, "GetColumn", err, slog.String("column_id", id))
		return nil, err
	}
	return c, nil
}

// CreateColumn appends the column, or places it at c.Position when set.
func (s *ColumnService) CreateColumn(ctx context.Context, user domain.UserID, c *column.Column) (*column.Column, error) {
	s.logger.InfoContext(ctx, "creating column", slog.String("title", c.Title))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	c.OwnerID = user
	if c.Color == "" {
		c.Color = column.DefaultColor
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var created *column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		items, err := tx.ColumnScope(ctx, user)
		if err != nil {
			return err
		}

		if c.Position == 0 {
			_, hi, ok := ordering.Bounds(items)
			c.Position = ordering.Next(hi, ok)
		} else {
			pos, changes := ordering.Place(items, "", c.Position)
			if err := tx.SetColumnPositions(ctx, user, changes); err != nil {
				return err
			}
			s.recorder.RecordPositionWrites(ctx, entityColumn, opCreate, len(changes))
			c.Position = pos
		}

		if err := tx.InsertColumn(ctx, c); err != nil {
			return err
		}
		created, err = tx.GetColumn(ctx, user, c.ID)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateColumn", err)
		return nil, err
	}
	return created, nil
}

// UpdateColumn applies the plain fields of patch and moves the column when
// the patch carries a position.
func (s *ColumnService) UpdateColumn(ctx context.Context, user domain.UserID, id string, patch column.Patch) (*column.Column, error) {
	s.logger.InfoContext(ctx, "updating column", slog.String("column_id", id))

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var updated *column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		c, err := tx.GetColumn(ctx, user, id)
		if err != nil {
			return notFound(entityColumn, id, err)
		}

		patch.Apply(c)
		if err := c.Validate(); err != nil {
			return err
		}
		if err := tx.UpdateColumn(ctx, c); err != nil {
			return err
		}

		if patch.Position != nil {
			if err := s.move(ctx, tx, user, id, *patch.Position); err != nil {
				return err
			}
		}

		updated, err = tx.GetColumn(ctx, user, id)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateColumn", err, slog.String("column_id", id))
		return nil, err
	}
	return updated, nil
}

// MoveColumn moves the column to position and shifts the columns in between.
func (s *ColumnService) MoveColumn(ctx context.Context, user domain.UserID, id string, position int) (*column.Column, error) {
	s.logger.InfoContext(ctx, "moving column",
		slog.String("column_id", id),
		slog.Int("position", position),
	)

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var moved *column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		if _, err := tx.GetColumn(ctx, user, id); err != nil {
			return notFound(entityColumn, id, err)
		}
		if err := s.move(ctx, tx, user, id, position); err != nil {
			return err
		}
		var err error
		moved, err = tx.GetColumn(ctx, user, id)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "MoveColumn", err, slog.String("column_id", id))
		return nil, err
	}
	return moved, nil
}

func (s *ColumnService) move(ctx context.Context, tx ports.BoardTx, user domain.UserID, id string, position int) error {
	if position < 0 {
		return domain.NewValidationError("position", fmt.Sprintf("must be non-negative, got %d", position))
	}

	items, err := tx.ColumnScope(ctx, user)
	if err != nil {
		return err
	}
	_, changes, err := ordering.Move(items, id, position)
	if err != nil {
		return fmt.Errorf("column %s: %w", id, domain.ErrNotFound)
	}
	if err := tx.SetColumnPositions(ctx, user, changes); err != nil {
		return err
	}
	s.recorder.RecordPositionWrites(ctx, entityColumn, opMove, len(changes))
	return nil
}

// DeleteColumn resolves the column's notes according to the delete policy,
// deletes the column and compacts the remaining ones.
func (s *ColumnService) DeleteColumn(ctx context.Context, user domain.UserID, id string) error {
	s.logger.InfoContext(ctx, "deleting column",
		slog.String("column_id", id),
		slog.String("policy", string(s.policy)),
	)

	if err := requireUser(user); err != nil {
		return err
	}

	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		c, err := tx.GetColumn(ctx, user, id)
		if err != nil {
			return notFound(entityColumn, id, err)
		}

		if err := s.releaseNotes(ctx, tx, user, id); err != nil {
			return err
		}
		if err := tx.DeleteColumn(ctx, user, id); err != nil {
			return err
		}

		remaining, err := tx.ColumnScope(ctx, user)
		if err != nil {
			return err
		}
		changes := ordering.Compact(remaining, c.Position)
		if err := tx.SetColumnPositions(ctx, user, changes); err != nil {
			return err
		}
		s.recorder.RecordPositionWrites(ctx, entityColumn, opDelete, len(changes))
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteColumn", err, slog.String("column_id", id))
		return err
	}
	return nil
}

// releaseNotes detaches every note from the column about to be deleted.
func (s *ColumnService) releaseNotes(ctx context.Context, tx ports.BoardTx, user domain.UserID, id string) error {
	if s.policy == column.DeleteCascade {
		removed, err := tx.DeleteColumnNotes(ctx, user, id)
		if err != nil {
			return err
		}
		s.logger.DebugContext(ctx, "deleted column notes",
			slog.String("column_id", id),
			slog.Int64("count", removed),
		)
		return nil
	}

	notes, err := tx.ListNotes(ctx, user, note.Filter{ColumnID: &id})
	if err != nil {
		return err
	}
	unfiled, err := tx.NoteScope(ctx, user, nil)
	if err != nil {
		return err
	}
	_, hi, ok := ordering.Bounds(unfiled)
	next := ordering.Next(hi, ok)

	var moved int
	for i := range notes {
		n := &notes[i]
		n.ColumnID = nil
		if !n.IsArchived {
			n.Position = next
			next++
			moved++
		}
		if err := tx.UpdateNote(ctx, n); err != nil {
			return err
		}
	}
	s.recorder.RecordPositionWrites(ctx, entityNote, opDelete, moved)
	return nil
}

// ReorderColumns assigns list indexes to ids; unlisted columns follow in
// their previous order.
func (s *ColumnService) ReorderColumns(ctx context.Context, user domain.UserID, ids []string) ([]column.Column, error) {
	s.logger.InfoContext(ctx, "reordering columns", slog.Int("count", len(ids)))

	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := domain.ValidateIDList("column_ids", ids); err != nil {
		return nil, err
	}

	var columns []column.Column
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		for _, id := range ids {
			if _, err := tx.GetColumn(ctx, user, id); err != nil {
				return notFound(entityColumn, id, err)
			}
		}

		items, err := tx.ColumnScope(ctx, user)
		if err != nil {
			return err
		}
		changes := ordering.Arrange(ids, items, 0)
		if err := tx.SetColumnPositions(ctx, user, changes); err != nil {
			return err
		}
		s.recorder.RecordPositionWrites(ctx, entityColumn, opReorder, len(changes))

		columns, err = tx.ListColumns(ctx, user)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "ReorderColumns", err)
		return nil, err
	}
	return columns, nil
}
