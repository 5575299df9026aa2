// Package board assembles the read model of a user's whole board.
package board

import (
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

// Lane is a column together with its active notes in position order.
type Lane struct {
	Column column.Column
	Notes  []note.Note
}

// Board is every column of a user in order plus the unfiled lane.
type Board struct {
	Lanes   []Lane
	Unfiled []note.Note
}

// Assemble distributes active notes into their columns. Columns and notes
// must already be in display order; archived notes and notes whose column is
// not in columns are dropped.
func Assemble(columns []column.Column, notes []note.Note) Board {
	b := Board{Lanes: make([]Lane, len(columns)), Unfiled: []note.Note{}}
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		b.Lanes[i] = Lane{Column: c, Notes: []note.Note{}}
		index[c.ID] = i
	}

	for _, n := range notes {
		if n.IsArchived {
			continue
		}
		if n.ColumnID == nil {
			b.Unfiled = append(b.Unfiled, n)
			continue
		}
		if i, ok := index[*n.ColumnID]; ok {
			b.Lanes[i].Notes = append(b.Lanes[i].Notes, n)
		}
	}
	return b
}
