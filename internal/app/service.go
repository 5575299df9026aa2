// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every use case runs inside one store transaction, so a scope snapshot read
// at the start of an operation is still current when the computed position
// writes are applied.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// Entity and operation labels for position write metrics.
const (
	entityColumn = "column"
	entityNote   = "note"

	opCreate  = "create"
	opMove    = "move"
	opDelete  = "delete"
	opReorder = "reorder"
)

// PositionRecorder receives the number of position rows each ordering
// operation rewrote. *telemetry.Metrics implements it.
type PositionRecorder interface {
	RecordPositionWrites(ctx context.Context, entity, operation string, n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordPositionWrites(context.Context, string, string, int) {}

func recorderOrNop(r PositionRecorder) PositionRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// requireUser rejects calls made without an identity.
func requireUser(user domain.UserID) error {
	if user.IsZero() {
		return fmt.Errorf("missing user: %w", domain.ErrUnauthorized)
	}
	return nil
}

// notFound rewrites a not-found lookup so the error names the entity and id
// the caller supplied.
func notFound(entity, id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return err
}

// logFailure records a failed use case. Validation failures are caller
// mistakes and are logged at info level.
func logFailure(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...any) {
	args := append([]any{slog.String("operation", op)}, attrs...)
	args = append(args, slog.Any("error", err))

	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		logger.InfoContext(ctx, "request rejected", args...)
		return
	}
	logger.ErrorContext(ctx, "operation failed", args...)
}
