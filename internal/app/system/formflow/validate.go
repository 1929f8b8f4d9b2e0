// internal/app/system/formflow/validate.go
package formflow

import (
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail reports whether s has the shape something@something.something.
func ValidEmail(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// FormErrors maps a field name to its message. A key is present only while
// that field fails its rule. SubmitErrorKey carries the submit failure.
type FormErrors map[string]string

const SubmitErrorKey = "submit"

// SubmitErrorMessage is shown for every submit failure regardless of cause.
const SubmitErrorMessage = "Failed to submit form. Please try again."

// Has reports whether field has an error.
func (e FormErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "".
func (e FormErrors) Get(field string) string { return e[field] }

// Empty reports whether there are no errors.
func (e FormErrors) Empty() bool { return len(e) == 0 }

func validateRules(rules []Rule, data FormData) FormErrors {
	errs := FormErrors{}
	for _, rule := range rules {
		v := strings.TrimSpace(data.Get(rule.Field))
		key := string(rule.Field)
		switch {
		case rule.Required && v == "":
			errs[key] = rule.Label + " is required"
		case rule.Email && v != "" && !ValidEmail(v):
			errs[key] = "Please enter a valid email address"
		}
	}
	return errs
}
