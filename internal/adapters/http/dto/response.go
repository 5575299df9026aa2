// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/noteboard/internal/domain/board"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

// ColumnResponse represents a single column in HTTP responses.
type ColumnResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	Position  int    `json:"position"`
	NoteCount int    `json:"note_count"`
	CreatedAt string `json:"created_at"`
}

// ColumnListResponse represents a list of columns in HTTP responses.
type ColumnListResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// ToColumnResponse converts a domain Column to an HTTP response DTO.
func ToColumnResponse(c *column.Column) ColumnResponse {
	return ColumnResponse{
		ID:        c.ID,
		Title:     c.Title,
		Color:     c.Color,
		Position:  c.Position,
		NoteCount: c.NoteCount,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// ToColumnListResponse converts domain columns to an HTTP list response DTO.
func ToColumnListResponse(columns []column.Column) ColumnListResponse {
	items := make([]ColumnResponse, len(columns))
	for i := range columns {
		items[i] = ToColumnResponse(&columns[i])
	}
	return ColumnListResponse{Columns: items, Count: len(items)}
}

// NoteResponse represents a single note in HTTP responses. ColumnID is null
// for unfiled notes.
type NoteResponse struct {
	ID          string  `json:"id"`
	ColumnID    *string `json:"column_id"`
	ColumnTitle string  `json:"column_title"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Color       string  `json:"color"`
	Position    int     `json:"position"`
	IsArchived  bool    `json:"is_archived"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NoteListResponse represents a list of notes in HTTP responses.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Count int            `json:"count"`
}

// ToNoteResponse converts a domain Note to an HTTP response DTO.
func ToNoteResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		ColumnID:    n.ColumnID,
		ColumnTitle: n.ColumnTitle,
		Title:       n.Title,
		Content:     n.Content,
		Color:       n.Color,
		Position:    n.Position,
		IsArchived:  n.IsArchived,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteResponses(notes []note.Note) []NoteResponse {
	items := make([]NoteResponse, len(notes))
	for i := range notes {
		items[i] = ToNoteResponse(&notes[i])
	}
	return items
}

// ToNoteListResponse converts domain notes to an HTTP list response DTO.
func ToNoteListResponse(notes []note.Note) NoteListResponse {
	items := toNoteResponses(notes)
	return NoteListResponse{Notes: items, Count: len(items)}
}

// LaneResponse is one board column with its active notes.
type LaneResponse struct {
	Column ColumnResponse `json:"column"`
	Notes  []NoteResponse `json:"notes"`
}

// BoardResponse represents GET /board.
type BoardResponse struct {
	Lanes   []LaneResponse `json:"lanes"`
	Unfiled []NoteResponse `json:"unfiled"`
}

// ToBoardResponse converts the board read model to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	lanes := make([]LaneResponse, len(b.Lanes))
	for i := range b.Lanes {
		lanes[i] = LaneResponse{
			Column: ToColumnResponse(&b.Lanes[i].Column),
			Notes:  toNoteResponses(b.Lanes[i].Notes),
		}
	}
	return BoardResponse{Lanes: lanes, Unfiled: toNoteResponses(b.Unfiled)}
}
