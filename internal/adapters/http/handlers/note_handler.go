package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	svc ports.NoteService
}

// NewNoteHandler creates a new NoteHandler with the given service port.
func NewNoteHandler(svc ports.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListNotes handles GET /api/v1/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	filter, err := dto.ParseNoteFilter(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), currentUser(r), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteListResponse(notes))
}

// CreateNote handles POST /api/v1/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateNote(r.Context(), currentUser(r), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToNoteResponse(created))
}

// GetNote handles GET /api/v1/notes/{id}.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), currentUser(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteResponse(n))
}

// UpdateNote handles PATCH /api/v1/notes/{id}.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateNote(r.Context(), currentUser(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteResponse(updated))
}

// MoveNote handles PATCH /api/v1/notes/{id}/move.
func (h *NoteHandler) MoveNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MoveNote(r.Context(), currentUser(r), id, req.ToMove())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteResponse(moved))
}

// ArchiveToggle handles PATCH /api/v1/notes/{id}/archive.
func (h *NoteHandler) ArchiveToggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.ArchiveToggle(r.Context(), currentUser(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteResponse(n))
}

// DeleteNote handles DELETE /api/v1/notes/{id}.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), currentUser(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderNotes handles PATCH /api/v1/notes/reorder.
func (h *NoteHandler) ReorderNotes(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderNotesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	notes, err := h.svc.ReorderNotes(r.Context(), currentUser(r), req.ToReorder())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNoteListResponse(notes))
}
