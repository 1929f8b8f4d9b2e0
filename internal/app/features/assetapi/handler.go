// internal/app/features/assetapi/handler.go
package assetapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Resolver is the part of assets.Resolver the API needs.
type Resolver interface {
	Lookup(key string, kind models.AssetKind) (models.AssetFallback, bool)
	Cached(key string, kind models.AssetKind) string
	ResolveOptimized(ctx context.Context, key string, kind models.AssetKind) string
}

// Handler serves asset URL lookups for client-side players.
type Handler struct {
	Assets Resolver
	Log    *zap.Logger
}

func NewHandler(assets Resolver, logger *zap.Logger) *Handler {
	return &Handler{Assets: assets, Log: logger}
}

type assetResponse struct {
	Key       string `json:"key"`
	Kind      string `json:"kind"`
	URL       string `json:"url"`
	Optimized bool   `json:"optimized"`
	Known     bool   `json:"known"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve handles GET /api/assets/{kind}/{key}.
//
// Without ?optimized=1 the answer comes from the warm cache and never
// touches the network. With it, the key's fallback chain is probed now.
// An unknown key still answers 200 with the kind's placeholder.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseAssetKind(chi.URLParam(r, "kind"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown asset kind"})
		return
	}
	key := chi.URLParam(r, "key")
	_, known := h.Assets.Lookup(key, kind)

	resp := assetResponse{Key: key, Kind: string(kind), Known: known}
	switch query.Get(r, "optimized") {
	case "1", "true":
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()
		resp.URL = h.Assets.ResolveOptimized(ctx, key, kind)
		resp.Optimized = true
	default:
		resp.URL = h.Assets.Cached(key, kind)
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, resp)
}
