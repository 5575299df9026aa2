package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/noteboard/internal/domain"
	"github.com/jsamuelsen11/noteboard/internal/domain/column"
	"github.com/jsamuelsen11/noteboard/internal/domain/note"
)

// unfiledParam selects the unfiled lane in the column_id query parameter.
const unfiledParam = "none"

// NullableID is a column reference that distinguishes an absent JSON key
// from an explicit null. Set is true whenever the key was present; Value is
// nil for null or "" (the unfiled lane).
type NullableID struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only called for present keys.
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	n.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("column_id must be a string or null: %w", err)
	}
	if s = strings.TrimSpace(s); s != "" {
		n.Value = &s
	}
	return nil
}

func validatePosition(fields map[string]string, position *int) {
	if position != nil && *position < 0 {
		fields["position"] = fmt.Sprintf("must be non-negative, got %d", *position)
	}
}

func validationError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateColumnRequest represents the JSON body for creating a column.
// A nil or zero Position appends the column.
type CreateColumnRequest struct {
	Title    string `json:"title"`
	Color    string `json:"color,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateColumnRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ToDomain converts the request to a column ready for creation.
func (r *CreateColumnRequest) ToDomain() *column.Column {
	c := &column.Column{
		Title: strings.TrimSpace(r.Title),
		Color: r.Color,
	}
	if r.Position != nil {
		c.Position = *r.Position
	}
	return c
}

// UpdateColumnRequest represents the JSON body for updating a column.
// All fields are optional; nil means "do not change this field.".
type UpdateColumnRequest struct {
	Title    *string `json:"title,omitempty"`
	Color    *string `json:"color,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateColumnRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ToPatch converts the request to a column patch.
func (r *UpdateColumnRequest) ToPatch() column.Patch {
	p := column.Patch{Color: r.Color, Position: r.Position}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		p.Title = &title
	}
	return p
}

// MoveColumnRequest represents the JSON body for PATCH /columns/{id}/move.
type MoveColumnRequest struct {
	Position *int `json:"position"`
}

// Validate requires a non-negative position.
func (r *MoveColumnRequest) Validate() error {
	fields := make(map[string]string)

	if r.Position == nil {
		fields["position"] = domain.MsgRequired
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ReorderColumnsRequest represents the JSON body for PATCH /columns/reorder.
type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"column_ids"`
}

// Validate checks the id list.
func (r *ReorderColumnsRequest) Validate() error {
	return domain.ValidateIDList("column_ids", r.ColumnIDs)
}

// CreateNoteRequest represents the JSON body for creating a note. An absent
// or null column_id files the note in the unfiled lane.
type CreateNoteRequest struct {
	ColumnID NullableID `json:"column_id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Color    string     `json:"color,omitempty"`
	Position *int       `json:"position,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateNoteRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Content) == "" {
		fields["content"] = domain.MsgRequired
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ToDomain converts the request to a note ready for creation.
func (r *CreateNoteRequest) ToDomain() *note.Note {
	n := &note.Note{
		ColumnID: r.ColumnID.Value,
		Title:    strings.TrimSpace(r.Title),
		Content:  r.Content,
		Color:    r.Color,
	}
	if r.Position != nil {
		n.Position = *r.Position
	}
	return n
}

// UpdateNoteRequest represents the JSON body for updating a note.
// All fields are optional; nil means "do not change this field.". A present
// column_id (including null) moves the note.
type UpdateNoteRequest struct {
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	Color      *string    `json:"color,omitempty"`
	ColumnID   NullableID `json:"column_id"`
	Position   *int       `json:"position,omitempty"`
	IsArchived *bool      `json:"is_archived,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateNoteRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		fields["content"] = domain.MsgMustNotEmpty
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ToPatch converts the request to a note patch.
func (r *UpdateNoteRequest) ToPatch() note.Patch {
	p := note.Patch{
		Content:  r.Content,
		Color:    r.Color,
		Archived: r.IsArchived,
		Move: note.Move{
			ChangeColumn: r.ColumnID.Set,
			ColumnID:     r.ColumnID.Value,
			Position:     r.Position,
		},
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		p.Title = &title
	}
	return p
}

// MoveNoteRequest represents the JSON body for PATCH /notes/{id}/move.
// Omitting column_id keeps the note's column; omitting position appends
// to the destination.
type MoveNoteRequest struct {
	ColumnID NullableID `json:"column_id"`
	Position *int       `json:"position,omitempty"`
}

// Validate requires the move to change something.
func (r *MoveNoteRequest) Validate() error {
	fields := make(map[string]string)

	if !r.ColumnID.Set && r.Position == nil {
		fields["position"] = "column_id or position is required"
	}
	validatePosition(fields, r.Position)

	return validationError(fields)
}

// ToMove converts the request to a note move.
func (r *MoveNoteRequest) ToMove() note.Move {
	return note.Move{
		ChangeColumn: r.ColumnID.Set,
		ColumnID:     r.ColumnID.Value,
		Position:     r.Position,
	}
}

// ReorderNotesRequest represents the JSON body for PATCH /notes/reorder.
// A present column_id re-scopes every listed note to it.
type ReorderNotesRequest struct {
	NoteIDs  []string   `json:"note_ids"`
	ColumnID NullableID `json:"column_id"`
}

// Validate checks the id list.
func (r *ReorderNotesRequest) Validate() error {
	return domain.ValidateIDList("note_ids", r.NoteIDs)
}

// ToReorder converts the request to a note reorder.
func (r *ReorderNotesRequest) ToReorder() note.Reorder {
	return note.Reorder{
		IDs:          r.NoteIDs,
		ChangeColumn: r.ColumnID.Set,
		ColumnID:     r.ColumnID.Value,
	}
}

// ParseNoteFilter builds a note filter from the GET /notes query string:
// column_id (an id, or "none"/"null" for unfiled; empty means no column
// filter), is_archived, search and a comma-separated ordering.
func ParseNoteFilter(q url.Values) (note.Filter, error) {
	var f note.Filter
	fields := make(map[string]string)

	switch v := strings.TrimSpace(q.Get("column_id")); v {
	case "":
		// no column filter
	case unfiledParam, "null":
		f.Unfiled = true
	default:
		f.ColumnID = &v
	}

	if raw := q.Get("is_archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			fields["is_archived"] = fmt.Sprintf("invalid boolean: %q", raw)
		} else {
			f.Archived = &archived
		}
	}

	f.Search = strings.TrimSpace(q.Get("search"))

	if raw := q.Get("ordering"); raw != "" {
		for key := range strings.SplitSeq(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				f.Ordering = append(f.Ordering, key)
			}
		}
	}

	if len(fields) > 0 {
		return note.Filter{}, InLocation(&domain.ValidationError{Fields: fields}, LocationQuery)
	}
	if err := f.Validate(); err != nil {
		return note.Filter{}, InLocation(err, LocationQuery)
	}
	return f, nil
}
