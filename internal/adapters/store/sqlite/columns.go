package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/ordering"
)

const columnSelect = `
SELECT c.id, c.owner_id, c.title, c.color, c.position, c.created_at,
       (SELECT COUNT(*) FROM notes n WHERE n.column_id = c.id AND n.is_archived = 0)
FROM columns c`

func scanColumn(row interface{ Scan(dest ...any) error }) (*column.Column, error) {
	var (
		c         column.Column
		owner     string
		createdAt string
	)
	if err := row.Scan(&c.ID, &owner, &c.Title, &c.Color, &c.Position, &createdAt, &c.NoteCount); err != nil {
		return nil, err
	}
	c.OwnerID = domain.UserID(owner)

	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListColumns implements ports.ColumnRepository.
func (t *boardTx) ListColumns(ctx context.Context, owner domain.UserID) ([]column.Column, error) {
	rows, err := t.tx.QueryContext(ctx, columnSelect+` WHERE c.owner_id = ? ORDER BY c.position, c.created_at`, string(owner))
	if err != nil {
		return nil, translateError("listing columns", err)
	}
	defer rows.Close()

	columns := []column.Column{}
	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// GetColumn implements ports.ColumnRepository.
func (t *boardTx) GetColumn(ctx context.Context, owner domain.UserID, id string) (*column.Column, error) {
	row := t.tx.QueryRowContext(ctx, columnSelect+` WHERE c.owner_id = ? AND c.id = ?`, string(owner), id)
	c, err := scanColumn(row)
	if err != nil {
		return nil, translateError("column "+id, err)
	}
	return c, nil
}

// ColumnScope implements ports.ColumnRepository.
func (t *boardTx) ColumnScope(ctx context.Context, owner domain.UserID) ([]ordering.Item, error) {
	return t.scope(ctx, `SELECT id, position FROM columns WHERE owner_id = ? ORDER BY position, created_at`, string(owner))
}

// InsertColumn implements ports.ColumnRepository.
func (t *boardTx) InsertColumn(ctx context.Context, c *column.Column) error {
	c.ID = t.newID()
	c.CreatedAt = t.now()

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO columns (id, owner_id, title, color, position, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.OwnerID), c.Title, c.Color, c.Position, formatTime(c.CreatedAt),
	)
	return translateError("inserting column", err)
}

// UpdateColumn implements ports.ColumnRepository.
func (t *boardTx) UpdateColumn(ctx context.Context, c *column.Column) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE columns SET title = ?, color = ? WHERE owner_id = ? AND id = ?`,
		c.Title, c.Color, string(c.OwnerID), c.ID,
	)
	if err != nil {
		return translateError("updating column "+c.ID, err)
	}
	return requireAffected("column "+c.ID, res)
}

// SetColumnPositions implements ports.ColumnRepository. The changed rows are
// first parked on distinct negative positions so that no intermediate
// statement violates UNIQUE(owner_id, position).
func (t *boardTx) SetColumnPositions(ctx context.Context, owner domain.UserID, changes []ordering.Change) error {
	if len(changes) == 0 {
		return nil
	}

	stmt, err := t.tx.PrepareContext(ctx, `UPDATE columns SET position = ? WHERE owner_id = ? AND id = ?`)
	if err != nil {
		return translateError("preparing column position update", err)
	}
	defer stmt.Close()

	for i, ch := range changes {
		if _, err := stmt.ExecContext(ctx, -(i + 1), string(owner), ch.ID); err != nil {
			return translateError("parking column "+ch.ID, err)
		}
	}
	for _, ch := range changes {
		res, err := stmt.ExecContext(ctx, ch.Position, string(owner), ch.ID)
		if err != nil {
			return translateError("positioning column "+ch.ID, err)
		}
		if err := requireAffected("column "+ch.ID, res); err != nil {
			return err
		}
	}
	return nil
}

// DeleteColumn implements ports.ColumnRepository.
func (t *boardTx) DeleteColumn(ctx context.Context, owner domain.UserID, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM columns WHERE owner_id = ? AND id = ?`, string(owner), id)
	if err != nil {
		return translateError("deleting column "+id, err)
	}
	return requireAffected("column "+id, res)
}

// scope reads an (id, position) snapshot.
func (t *boardTx) scope(ctx context.Context, query string, args ...any) ([]ordering.Item, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("reading scope", err)
	}
	defer rows.Close()

	var items []ordering.Item
	for rows.Next() {
		var it ordering.Item
		if err := rows.Scan(&it.ID, &it.Position); err != nil {
			return nil, fmt.Errorf("scanning scope row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scope rows: %w", err)
	}
	return items, nil
}

// nullString converts an optional id into a nullable column value.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
