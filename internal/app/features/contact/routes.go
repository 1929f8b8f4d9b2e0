// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeStep)
	r.Post("/", h.HandleStep)
	r.Get("/thanks", h.ServeThanks)
	r.Post("/reset", h.HandleReset)
	r.Post("/quick", h.HandleQuick)
	return r
}
