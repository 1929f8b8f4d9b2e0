// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// ActionPaths are POST-only endpoints a visitor must never be sent back to.
var ActionPaths = []string{"/lang", "/contact/reset", "/contact/quick"}

// SafeReturn extracts and validates the "return" URL of a request.
//
// It checks the query parameter first, then the form value, accepts only
// local paths (no open redirects) and rejects ActionPaths. Anything else
// yields fallback.
//
// Example usage:
//
//	http.Redirect(w, r, navigation.SafeReturn(r, "/"), http.StatusSeeOther)
func SafeReturn(r *http.Request, fallback string) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" || isAction(ret) {
		return fallback
	}
	return ret
}

func isAction(ret string) bool {
	path, _, _ := strings.Cut(ret, "?")
	for _, a := range ActionPaths {
		if path == a {
			return true
		}
	}
	return false
}
