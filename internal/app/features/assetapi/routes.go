// internal/app/features/assetapi/routes.go
package assetapi

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/assets.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{kind}/{key}", h.Serve)
	return r
}
