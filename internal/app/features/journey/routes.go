// internal/app/features/journey/routes.go
package journey

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeJourney)
	return r
}
