package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/ports"
)

// BoardHandler serves the assembled board view.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// GetBoard handles GET /api/v1/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBoard(r.Context(), currentUser(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(b))
}
