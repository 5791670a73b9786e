package reports

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers report routes under /q.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/q", func(r chi.Router) {
		r.Get("/where", h.Where)
		r.Get("/join", h.Join)
		r.Put("/update", h.Discount)
		r.Get("/groupby", h.GroupBy)
		r.Get("/sort", h.Sort)
	})
}
