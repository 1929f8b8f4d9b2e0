// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Text strips every tag from user input and returns plain text with
// entities decoded and surrounding whitespace trimmed. It is used on all
// free-text contact fields before they are stored or mailed.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict().Sanitize(s)))
}

// Values applies Text to every value of m in place.
func Values[K comparable](m map[K]string) {
	for k, v := range m {
		m[k] = Text(v)
	}
}

// PlainTextToHTML escapes s and turns line breaks into <br>.
func PlainTextToHTML(s string) template.HTML {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(html.EscapeString(s), "\n")
	return template.HTML(strings.Join(lines, "<br>\n"))
}
