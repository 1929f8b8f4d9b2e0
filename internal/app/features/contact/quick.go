// internal/app/features/contact/quick.go
package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/formutil"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/limits"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type quickResponse struct {
	Submitted bool              `json:"submitted,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleQuick handles POST /contact/quick, the single-step footer form.
//
// Responses:
//
//	200 {"submitted":true}
//	422 {"errors":{"email":"…"}}
//	429 {"errors":{"submit":"…"}}
//	503 {"errors":{"submit":"…"}}   store or delivery failed
func (h *Handler) HandleQuick(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxContactFormSize)
	if err := r.ParseForm(); err != nil {
		h.Log.Warn("parse quick form failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, quickResponse{Errors: map[string]string{formflow.SubmitErrorKey: loc.T(i18n.ContactSubmitError)}})
		return
	}

	c := formflow.New(formflow.QuickDefinition)
	c.SimulatedDelay = h.SubmitDelay
	applyFields(r, c)

	// Invalid input is reported without spending the visitor's allowance.
	if errs := c.ValidateStep(1); !errs.Empty() {
		writeJSON(w, http.StatusUnprocessableEntity, quickResponse{Errors: formutil.LocalizeErrors(loc, errs, c.Data())})
		return
	}
	if !h.allow(r) {
		writeJSON(w, http.StatusTooManyRequests, quickResponse{Errors: map[string]string{formflow.SubmitErrorKey: loc.T(i18n.ContactRateLimited)}})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Submit(), h.Log, "quick contact submit")
	defer cancel()
	if err := c.Submit(ctx, h.submitFunc(r, formflow.QuickDefinition.Name)); err != nil {
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, formflow.ErrInvalid) {
			h.Log.Error("quick contact submit failed", zap.Error(err))
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, quickResponse{Errors: formutil.LocalizeErrors(loc, c.Errors(), c.Data())})
		return
	}
	writeJSON(w, http.StatusOK, quickResponse{Submitted: true})
}
