// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and shows the visitor a
// friendly page. Handlers call it instead of writing raw error text.
type ErrorLogger struct {
	Log    *zap.Logger
	Render viewdata.Renderer
}

// NewErrorLogger builds an ErrorLogger on the WAFFLE renderer.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger, Render: viewdata.Render}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	}
}

// LogServerError logs at Error level and renders a 500 page with userMsg
// (or the default message when empty).
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	renderError(e.Render, w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs at Warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	renderError(e.Render, w, r, http.StatusBadRequest, userMsg, backURL)
}
