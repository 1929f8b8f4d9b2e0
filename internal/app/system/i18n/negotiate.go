// internal/app/system/i18n/negotiate.go
package i18n

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// CookieName holds the visitor's explicit language choice.
const CookieName = "lang"

// Negotiator picks a language per request: ?lang=, then the lang cookie,
// then Accept-Language, then the configured default.
type Negotiator struct {
	def     Lang
	matcher language.Matcher
	tags    []Lang
	log     *zap.Logger
}

// NewNegotiator builds a Negotiator with def as the default language.
func NewNegotiator(def Lang, logger *zap.Logger) *Negotiator {
	if _, ok := ParseLang(string(def)); !ok {
		def = English
	}
	tags := make([]language.Tag, len(Supported))
	for i, l := range Supported {
		tags[i] = language.Make(string(l))
	}
	return &Negotiator{
		def:     def,
		matcher: language.NewMatcher(tags),
		tags:    Supported,
		log:     logger,
	}
}

// Negotiate returns the language for r.
func (n *Negotiator) Negotiate(r *http.Request) Lang {
	if l, ok := ParseLang(r.URL.Query().Get("lang")); ok {
		return l
	}
	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := ParseLang(c.Value); ok {
			return l
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		prefs, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(prefs) > 0 {
			_, idx, conf := n.matcher.Match(prefs...)
			if conf != language.No {
				return n.tags[idx]
			}
		}
	}
	return n.def
}

// Middleware stores a Localizer for the negotiated language in the request
// context.
func (n *Negotiator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := New(n.Negotiate(r), n.log)
		next.ServeHTTP(w, r.WithContext(WithLocalizer(r.Context(), loc)))
	})
}

// SetCookie remembers an explicit language choice for a year.
func SetCookie(w http.ResponseWriter, l Lang, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(l),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
