package purchases

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers purchase routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/purchases", h.List)
	r.Post("/purchases", h.Create)
	r.Get("/purchases/{id}", h.Show)
	r.Put("/purchases/{id}", h.Update)
	r.Delete("/purchases/{id}", h.Delete)
}
