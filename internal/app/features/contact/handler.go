// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"time"

	uierrors "github.com/dalemusser/orsonvision/internal/app/features/errors"
	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/formsession"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/ratelimit"
	"github.com/dalemusser/orsonvision/internal/app/system/uploads"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the multi-step project form and the quick message form.
type Handler struct {
	Sessions *formsession.Manager
	Uploads  *uploads.Store
	Limiter  *ratelimit.SubmitLimiter
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	Render   viewdata.Renderer

	// Deliver persists a finished submission. Nil falls back to the
	// controller's simulated delay of SubmitDelay.
	Deliver     *Submitter
	SubmitDelay time.Duration
}

func NewHandler(sessions *formsession.Manager, up *uploads.Store, limiter *ratelimit.SubmitLimiter,
	deliver *Submitter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions:    sessions,
		Uploads:     up,
		Limiter:     limiter,
		Deliver:     deliver,
		ErrLog:      errLog,
		Log:         logger,
		Render:      viewdata.Render,
		SubmitDelay: formflow.DefaultSimulatedDelay,
	}
}

// allow applies the per-IP submit limit. A nil limiter allows everything.
func (h *Handler) allow(r *http.Request) bool {
	return h.Limiter == nil || h.Limiter.Allow(r)
}

// clientIP is recorded with a submission. It follows the limiter's proxy
// setting; without a limiter proxy headers are not trusted.
func (h *Handler) clientIP(r *http.Request) string {
	if h.Limiter != nil {
		return h.Limiter.ClientIP(r)
	}
	return ratelimit.ClientIP(r, false)
}

// submitFunc returns the SubmitFunc for one request, or nil to simulate.
func (h *Handler) submitFunc(r *http.Request, form string) formflow.SubmitFunc {
	if h.Deliver == nil {
		return nil
	}
	lang := i18n.FromContext(r.Context()).Code()
	return h.Deliver.Func(form, lang, h.clientIP(r))
}

// controller rebuilds the visitor's controller for def from the session.
func (h *Handler) controller(r *http.Request, def formflow.Definition) *formflow.Controller {
	c := h.Sessions.Load(r, def)
	c.SimulatedDelay = h.SubmitDelay
	return c
}
