// internal/app/features/language/handler.go
package language

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/navigation"
	"go.uber.org/zap"
)

// Handler switches the visitor's language.
type Handler struct {
	SecureCookie bool
	Log          *zap.Logger
}

func NewHandler(secureCookie bool, logger *zap.Logger) *Handler {
	return &Handler{SecureCookie: secureCookie, Log: logger}
}

// HandleSwitch handles POST /lang. It remembers the chosen language in a
// cookie and returns the visitor to the page they were on. An unsupported
// code leaves the current choice alone.
func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Log.Warn("parse language form failed", zap.Error(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	code := r.PostFormValue("lang")
	if lang, ok := i18n.ParseLang(code); ok {
		i18n.SetCookie(w, lang, h.SecureCookie)
	} else {
		h.Log.Debug("unsupported language requested", zap.String("lang", code))
	}

	http.Redirect(w, r, navigation.SafeReturn(r, "/"), http.StatusSeeOther)
}
