// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/assets"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// AssetStats is satisfied by *assets.Resolver.
type AssetStats interface {
	Stats() assets.WarmStats
}

// ContactCounter is satisfied by *contacts.Store.
type ContactCounter interface {
	CountSince(ctx context.Context, t time.Time) (int64, error)
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB       Pinger
	Assets   AssetStats
	Contacts ContactCounter
	Log      *zap.Logger

	now func() time.Time
}

// NewHandler constructs a health Handler with the Mongo client, the asset
// resolver, the contact store and logger. assets and contacts may be nil.
func NewHandler(db Pinger, assets AssetStats, contacts ContactCounter, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Assets:   assets,
		Contacts: contacts,
		Log:      logger,
		now:      time.Now,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string        `json:"status"`
	Database string        `json:"database"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
	Assets   *assetsStatus `json:"assets,omitempty"`
	Contacts *contactStats `json:"contacts,omitempty"`
}

// assetsStatus reports the last warm pass of the asset resolver.
type assetsStatus struct {
	Warmed       int    `json:"warmed"`
	Placeholders int    `json:"placeholders"`
	Unresolved   int    `json:"unresolved"`
	At           string `json:"at,omitempty"`
}

type contactStats struct {
	Last24h int64 `json:"last_24h"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected",
//	  "assets":{"warmed":15,"placeholders":0,"unresolved":0}, "contacts":{"last_24h":3} }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.DB.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Asset cache state is informational only.
	if h.Assets != nil {
		st := h.Assets.Stats()
		resp.Assets = &assetsStatus{
			Warmed:       st.Keys - st.Unresolved,
			Placeholders: st.Placeholders,
			Unresolved:   st.Unresolved,
		}
		if !st.At.IsZero() {
			resp.Assets.At = st.At.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if h.Contacts != nil {
		cctx, ccancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer ccancel()
		n, err := h.Contacts.CountSince(cctx, h.now().Add(-24*time.Hour))
		if err != nil {
			h.Log.Warn("health-check: contact count failed", zap.Error(err))
		} else {
			resp.Contacts = &contactStats{Last24h: n}
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
