package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// ColumnHandler handles HTTP requests for board columns.
type ColumnHandler struct {
	svc ports.ColumnService
}

// NewColumnHandler creates a new ColumnHandler with the given service port.
func NewColumnHandler(svc ports.ColumnService) *ColumnHandler {
	return &ColumnHandler{svc: svc}
}

// ListColumns handles GET /api/v1/columns.
func (h *ColumnHandler) ListColumns(w http.ResponseWriter, r *http.Request) {
	columns, err := h.svc.ListColumns(r.Context(), currentUser(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToColumnListResponse(columns))
}

// CreateColumn handles POST /api/v1/columns.
func (h *ColumnHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateColumn(r.Context(), currentUser(r), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToColumnResponse(created))
}

// GetColumn handles GET /api/v1/columns/{id}.
func (h *ColumnHandler) GetColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetColumn(r.Context(), currentUser(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToColumnResponse(c))
}

// UpdateColumn handles PATCH /api/v1/columns/{id}.
func (h *ColumnHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateColumn(r.Context(), currentUser(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToColumnResponse(updated))
}

// MoveColumn handles PATCH /api/v1/columns/{id}/move.
func (h *ColumnHandler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MoveColumn(r.Context(), currentUser(r), id, *req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToColumnResponse(moved))
}

// DeleteColumn handles DELETE /api/v1/columns/{id}.
func (h *ColumnHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteColumn(r.Context(), currentUser(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderColumns handles PATCH /api/v1/columns/reorder.
func (h *ColumnHandler) ReorderColumns(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderColumnsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	columns, err := h.svc.ReorderColumns(r.Context(), currentUser(r), req.ColumnIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToColumnListResponse(columns))
}
