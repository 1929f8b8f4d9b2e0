// internal/app/features/industries/routes.go
package industries

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Get("/{slug}", h.ServeLanding)
	return r
}
