package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/board"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService.
type BoardService struct {
	store  ports.BoardStore
	logger *slog.Logger
}

// NewBoardService creates a BoardService.
func NewBoardService(store ports.BoardStore, logger *slog.Logger) *BoardService {
	return &BoardService{store: store, logger: loggerOrDiscard(logger)}
}

// GetBoard reads columns and active notes in one transaction so the lanes
// reflect a single consistent state.
func (s *BoardService) GetBoard(ctx context.Context, user domain.UserID) (*board.Board, error) {
	s.logger.InfoContext(ctx, "fetching board")

	if err := requireUser(user); err != nil {
		return nil, err
	}

	var b board.Board
	err := s.store.WithinTx(ctx, func(tx ports.BoardTx) error {
		columns, err := tx.ListColumns(ctx, user)
		if err != nil {
			return err
		}
		active := false
		notes, err := tx.ListNotes(ctx, user, note.Filter{Archived: &active})
		if err != nil {
			return err
		}
		b = board.Assemble(columns, notes)
		return nil
	})
	if err != nil {
		logFailure(ctx, s.logger, "GetBoard", err)
		return nil, err
	}
	return &b, nil
}
