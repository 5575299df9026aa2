package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/noteboard/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

const (
	alice domain.UserID = "alice"
	bob   domain.UserID = "bob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

// countingRecorder collects position write counts per entity/operation.
type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) RecordPositionWrites(_ context.Context, entity, operation string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[entity+"/"+operation] += n
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), sqlite.Options{Path: sqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fixture struct {
	columns  *ColumnService
	notes    *NoteService
	board    *BoardService
	recorder *countingRecorder
}

func newFixture(t *testing.T, policy column.DeletePolicy) fixture {
	t.Helper()
	store := newStore(t)
	rec := &countingRecorder{}
	return fixture{
		columns:  NewColumnService(store, policy, rec, discardLogger()),
		notes:    NewNoteService(store, rec, discardLogger()),
		board:    NewBoardService(store, discardLogger()),
		recorder: rec,
	}
}

func (f fixture) mustColumn(t *testing.T, user domain.UserID, title string) *column.Column {
	t.Helper()
	c, err := f.columns.CreateColumn(context.Background(), user, &column.Column{Title: title})
	require.NoError(t, err)
	return c
}

func (f fixture) mustNote(t *testing.T, user domain.UserID, columnID *string, title string) *note.Note {
	t.Helper()
	n, err := f.notes.CreateNote(context.Background(), user, &note.Note{ColumnID: columnID, Title: title, Content: title + " body"})
	require.NoError(t, err)
	return n
}

// columnPositions returns title -> position for user's columns.
func (f fixture) columnPositions(t *testing.T, user domain.UserID) map[string]int {
	t.Helper()
	columns, err := f.columns.ListColumns(context.Background(), user)
	require.NoError(t, err)
	out := make(map[string]int, len(columns))
	for _, c := range columns {
		out[c.Title] = c.Position
	}
	return out
}

// notePositions returns title -> position for every note of user in columnID
// (nil for unfiled), archived included.
func (f fixture) notePositions(t *testing.T, user domain.UserID, columnID *string) map[string]int {
	t.Helper()
	filter := note.Filter{ColumnID: columnID, Unfiled: columnID == nil}
	notes, err := f.notes.ListNotes(context.Background(), user, filter)
	require.NoError(t, err)
	out := make(map[string]int, len(notes))
	for _, n := range notes {
		out[n.Title] = n.Position
	}
	return out
}
