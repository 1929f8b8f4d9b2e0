// Package i18n holds the site's translations and the per-request Localizer.
//
// There is no global "current language". Middleware negotiates a language
// per request and stores a Localizer in the request context; handlers pass
// it to their views.
package i18n

import (
	"context"

	"go.uber.org/zap"
)

// Lang is a supported site language.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
)

// Supported lists the site languages; the first is the last-resort default.
var Supported = []Lang{English, French}

// ParseLang accepts a supported language code.
func ParseLang(s string) (Lang, bool) {
	for _, l := range Supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func dictionary(l Lang) *[keyCount]string {
	if l == French {
		return &french
	}
	return &english
}

// Missing returns the keys with no translation in lang.
func Missing(l Lang) []Key {
	d := dictionary(l)
	var out []Key
	for k := Key(0); k < keyCount; k++ {
		if d[k] == "" {
			out = append(out, k)
		}
	}
	return out
}

// Localizer translates keys into one language.
type Localizer struct {
	lang Lang
	log  *zap.Logger
}

// New returns a Localizer for lang. Unsupported languages get English.
func New(l Lang, logger *zap.Logger) *Localizer {
	if _, ok := ParseLang(string(l)); !ok {
		l = English
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Localizer{lang: l, log: logger}
}

// Lang returns the localizer's language.
func (l *Localizer) Lang() Lang { return l.lang }

// Code returns the language code for templates ("en", "fr").
func (l *Localizer) Code() string { return string(l.lang) }

// Other returns the language the switcher offers.
func (l *Localizer) Other() Lang {
	if l.lang == French {
		return English
	}
	return French
}

// T translates k. A missing translation falls back to English and is
// logged; the key identifier is returned only if English is missing too.
func (l *Localizer) T(k Key) string {
	if k < 0 || k >= keyCount {
		l.log.Error("i18n: invalid key", zap.Int("key", int(k)))
		return k.String()
	}
	if s := dictionary(l.lang)[k]; s != "" {
		return s
	}
	l.log.Warn("i18n: missing translation",
		zap.String("lang", string(l.lang)),
		zap.String("key", k.String()))
	if s := english[k]; s != "" {
		return s
	}
	return k.String()
}

type ctxKey struct{}

// WithLocalizer stores l in ctx.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request's Localizer, or an English one when the
// middleware did not run.
func FromContext(ctx context.Context) *Localizer {
	if l, ok := ctx.Value(ctxKey{}).(*Localizer); ok && l != nil {
		return l
	}
	return New(English, zap.L())
}
