package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
	"github.com/jsamuelsen11/noteboard/internal/domain/ordering"
)

const noteSelect = `
SELECT n.id, n.owner_id, n.column_id, COALESCE(c.title, ''), n.title, n.content, n.color,
       n.position, n.is_archived, n.created_at, n.updated_at
FROM notes n
LEFT JOIN columns c ON c.id = n.column_id`

// sortColumns maps filter ordering keys onto SQL expressions.
var sortColumns = map[string]string{
	note.OrderPosition:  "n.position",
	note.OrderCreatedAt: "n.created_at",
	note.OrderUpdatedAt: "n.updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanNote(row interface{ Scan(dest ...any) error }) (*note.Note, error) {
	var (
		n                    note.Note
		owner                string
		columnID             sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&n.ID, &owner, &columnID, &n.ColumnTitle, &n.Title, &n.Content, &n.Color,
		&n.Position, &n.IsArchived, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	n.OwnerID = domain.UserID(owner)
	if columnID.Valid {
		n.ColumnID = &columnID.String
	}
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNotes implements ports.NoteRepository.
func (t *boardTx) ListNotes(ctx context.Context, owner domain.UserID, filter note.Filter) ([]note.Note, error) {
	where := []string{"n.owner_id = ?"}
	args := []any{string(owner)}

	switch {
	case filter.Unfiled:
		where = append(where, "n.column_id IS NULL")
	case filter.ColumnID != nil:
		where = append(where, "n.column_id = ?")
		args = append(args, *filter.ColumnID)
	}
	if filter.Archived != nil {
		where = append(where, "n.is_archived = ?")
		args = append(args, *filter.Archived)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		where = append(where, `(`+foldFunc+`(n.title) LIKE ? ESCAPE '\' OR `+foldFunc+`(n.content) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := noteSelect + " WHERE " + strings.Join(where, " AND ") + " ORDER BY " + orderBy(filter.SortKeys())

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("listing notes", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}
	return notes, nil
}

// orderBy renders validated sort keys; unknown keys are skipped and the id
// breaks remaining ties.
func orderBy(keys []string) string {
	parts := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		dir := "ASC"
		if strings.HasPrefix(key, "-") {
			dir = "DESC"
			key = key[1:]
		}
		if col, ok := sortColumns[key]; ok {
			parts = append(parts, col+" "+dir)
		}
	}
	parts = append(parts, "n.id ASC")
	return strings.Join(parts, ", ")
}

// GetNote implements ports.NoteRepository.
func (t *boardTx) GetNote(ctx context.Context, owner domain.UserID, id string) (*note.Note, error) {
	row := t.tx.QueryRowContext(ctx, noteSelect+` WHERE n.owner_id = ? AND n.id = ?`, string(owner), id)
	n, err := scanNote(row)
	if err != nil {
		return nil, translateError("note "+id, err)
	}
	return n, nil
}

// NoteScope implements ports.NoteRepository.
func (t *boardTx) NoteScope(ctx context.Context, owner domain.UserID, columnID *string) ([]ordering.Item, error) {
	if columnID == nil {
		return t.scope(ctx,
			`SELECT id, position FROM notes
			 WHERE owner_id = ? AND column_id IS NULL AND is_archived = 0
			 ORDER BY position, created_at DESC`,
			string(owner))
	}
	return t.scope(ctx,
		`SELECT id, position FROM notes
		 WHERE owner_id = ? AND column_id = ? AND is_archived = 0
		 ORDER BY position, created_at DESC`,
		string(owner), *columnID)
}

// InsertNote implements ports.NoteRepository.
func (t *boardTx) InsertNote(ctx context.Context, n *note.Note) error {
	n.ID = t.newID()
	n.CreatedAt = t.now()
	n.UpdatedAt = n.CreatedAt

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO notes (id, owner_id, column_id, title, content, color, position, is_archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, string(n.OwnerID), nullString(n.ColumnID), n.Title, n.Content, n.Color,
		n.Position, n.IsArchived, formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
	)
	return translateError("inserting note", err)
}

// UpdateNote implements ports.NoteRepository.
func (t *boardTx) UpdateNote(ctx context.Context, n *note.Note) error {
	n.UpdatedAt = t.now()

	res, err := t.tx.ExecContext(ctx,
		`UPDATE notes
		 SET column_id = ?, title = ?, content = ?, color = ?, position = ?, is_archived = ?, updated_at = ?
		 WHERE owner_id = ? AND id = ?`,
		nullString(n.ColumnID), n.Title, n.Content, n.Color, n.Position, n.IsArchived,
		formatTime(n.UpdatedAt), string(n.OwnerID), n.ID,
	)
	if err != nil {
		return translateError("updating note "+n.ID, err)
	}
	return requireAffected("note "+n.ID, res)
}

// SetNotePositions implements ports.NoteRepository.
func (t *boardTx) SetNotePositions(ctx context.Context, owner domain.UserID, changes []ordering.Change) error {
	if len(changes) == 0 {
		return nil
	}

	stmt, err := t.tx.PrepareContext(ctx, `UPDATE notes SET position = ? WHERE owner_id = ? AND id = ?`)
	if err != nil {
		return translateError("preparing note position update", err)
	}
	defer stmt.Close()

	for _, ch := range changes {
		res, err := stmt.ExecContext(ctx, ch.Position, string(owner), ch.ID)
		if err != nil {
			return translateError("positioning note "+ch.ID, err)
		}
		if err := requireAffected("note "+ch.ID, res); err != nil {
			return err
		}
	}
	return nil
}

// DeleteNote implements ports.NoteRepository.
func (t *boardTx) DeleteNote(ctx context.Context, owner domain.UserID, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM notes WHERE owner_id = ? AND id = ?`, string(owner), id)
	if err != nil {
		return translateError("deleting note "+id, err)
	}
	return requireAffected("note "+id, res)
}

// DeleteColumnNotes implements ports.NoteRepository.
func (t *boardTx) DeleteColumnNotes(ctx context.Context, owner domain.UserID, columnID string) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM notes WHERE owner_id = ? AND column_id = ?`, string(owner), columnID)
	if err != nil {
		return 0, translateError("deleting notes of column "+columnID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting notes of column %s: rows affected: %w", columnID, err)
	}
	return n, nil
}
