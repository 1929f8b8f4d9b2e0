// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status   int
	Heading  string
	Message  string
	BackLink string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct {
	Render viewdata.Renderer
}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{Render: viewdata.Render}
}

// NotFound renders the localized 404 page. Mounted as the router's
// NotFound handler and used for unknown slugs.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(h.Render, w, r, http.StatusNotFound, "", "/")
}

// renderError renders error_page with status. An empty msg uses the
// default body for status.
func renderError(render viewdata.Renderer, w http.ResponseWriter, r *http.Request, status int, msg, backURL string) {
	loc := i18n.FromContext(r.Context())

	heading, body := loc.T(i18n.ErrorServerTitle), loc.T(i18n.ErrorServerBody)
	if status == http.StatusNotFound {
		heading, body = loc.T(i18n.ErrorNotFoundTitle), loc.T(i18n.ErrorNotFoundBody)
	}
	if msg != "" {
		body = msg
	}
	if backURL == "" {
		backURL = "/"
	}

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, heading, backURL),
		Status:   status,
		Heading:  heading,
		Message:  body,
		BackLink: loc.T(i18n.ErrorBackHome),
	}
	data.BackURL = backURL

	viewdata.RenderStatus(render, status)(w, r, "error_page", data)
}
