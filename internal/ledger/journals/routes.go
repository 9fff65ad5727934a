package journals

import "github.com/go-chi/chi/v5"

// MountRoutes registers journal entry routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}
