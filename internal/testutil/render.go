package testutil

import (
	"html/template"
	"io/fs"
	"net/http"
	"testing"

	"github.com/dalemusser/orsonvision/internal/app/resources"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
)

// PageRenderer parses the shared layout plus each feature FS
// ("templates/*.gohtml") with html/template and returns a Renderer that
// executes named templates. Execution errors fail the test.
func PageRenderer(t *testing.T, feature ...fs.FS) viewdata.Renderer {
	t.Helper()

	tmpl := template.New("")
	for _, fsys := range append([]fs.FS{resources.FS}, feature...) {
		var err error
		tmpl, err = tmpl.ParseFS(fsys, "templates/*.gohtml")
		if err != nil {
			t.Fatalf("parse templates: %v", err)
		}
	}

	return func(w http.ResponseWriter, r *http.Request, name string, data any) {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
			t.Errorf("execute %q: %v", name, err)
		}
	}
}

// Rendered records what a handler asked to render.
type Rendered struct {
	Name string
	Data any
}

// CaptureRenderer returns a Renderer that records calls instead of writing.
func CaptureRenderer(out *[]Rendered) viewdata.Renderer {
	return func(w http.ResponseWriter, r *http.Request, name string, data any) {
		*out = append(*out, Rendered{Name: name, Data: data})
	}
}
