// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/noteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/noteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/noteboard/internal/domain"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Column *handlers.ColumnHandler
	Note   *handlers.NoteHandler
	Board  *handlers.BoardHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; authenticate wraps every
// /api/v1 route but not the health endpoints.
func NewRouter(
	h Handlers,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix, unauthenticated).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticate)

		// Columns. The static reorder route is registered before {id}.
		r.Get("/columns", h.Column.ListColumns)
		r.Post("/columns", h.Column.CreateColumn)
		r.Patch("/columns/reorder", h.Column.ReorderColumns)
		r.Get("/columns/{id}", h.Column.GetColumn)
		r.Patch("/columns/{id}", h.Column.UpdateColumn)
		r.Delete("/columns/{id}", h.Column.DeleteColumn)
		r.Patch("/columns/{id}/move", h.Column.MoveColumn)

		// Notes.
		r.Get("/notes", h.Note.ListNotes)
		r.Post("/notes", h.Note.CreateNote)
		r.Patch("/notes/reorder", h.Note.ReorderNotes)
		r.Get("/notes/{id}", h.Note.GetNote)
		r.Patch("/notes/{id}", h.Note.UpdateNote)
		r.Delete("/notes/{id}", h.Note.DeleteNote)
		r.Patch("/notes/{id}/move", h.Note.MoveNote)
		r.Patch("/notes/{id}/archive", h.Note.ArchiveToggle)

		r.Get("/board", h.Board.GetBoard)
	})

	return r
}
