// internal/app/system/viewdata/render.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer writes a named page template with data. Feature handlers hold
// one so tests can render against parsed templates directly.
type Renderer func(w http.ResponseWriter, r *http.Request, name string, data any)

// Render renders through the WAFFLE template engine booted in BuildHandler.
func Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// RenderStatus writes status before rendering. Used for error pages.
func RenderStatus(render Renderer, status int) Renderer {
	return func(w http.ResponseWriter, r *http.Request, name string, data any) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		render(w, r, name, data)
	}
}
