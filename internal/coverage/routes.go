package coverage

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/requests", h.Submit)
	r.Get("/requests", h.List)
	r.Get("/requests/summary", h.Summary)
	r.Get("/requests/{id}", h.Show)
	r.Post("/requests/{id}/accept", h.Accept)
	r.Post("/requests/{id}/reject", h.Reject)

	r.Post("/window/check", h.CheckWindow)
	r.Get("/window/minimum-date", h.MinimumDate)
	r.Get("/calendar/today", h.Today)
}
