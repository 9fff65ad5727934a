package accounts

import "github.com/go-chi/chi/v5"

// MountRoutes registers account registry routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/active", h.SetActive)
	r.Delete("/{id}", h.Deactivate)
}
