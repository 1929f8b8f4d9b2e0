// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form step fails validation, it is re-rendered with:
// - The visitor's previously entered values (echoed back)
// - A message per failing field, in the visitor's language
// - The select choices for the step
//
// Example usage:
//
//	data := stepData{Base: formutil.Base{BaseVM: viewdata.NewBaseVM(r, title, "/")}}
//	data.Errors = formutil.LocalizeErrors(loc, ctrl.Errors(), ctrl.Data())
//	data.Budgets = formutil.Choices(models.Budgets, ctrl.Data().Get(formflow.FieldBudget), loc.Code())
//	templates.Render(w, r, "contact_step", data)
package formutil

import (
	"html/template"
	"strings"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM
	Error  template.HTML
	Errors map[string]string
}

// SetError sets the form-level error message.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// FieldError returns the message for one field, or "".
func (b Base) FieldError(field string) string { return b.Errors[field] }

// Choice is one <option> of a select.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Choices turns options into select choices in lang, marking selected.
func Choices(opts []models.Option, selected, lang string) []Choice {
	out := make([]Choice, len(opts))
	for i, o := range opts {
		out[i] = Choice{Value: o.Value, Label: o.Label.In(lang), Selected: o.Value == selected}
	}
	return out
}

// LocalizeErrors rewrites controller errors into the visitor's language.
// A failing field with an empty value is reported as required, any other
// failing field as a malformed email; the submit error maps to its key.
func LocalizeErrors(loc *i18n.Localizer, errs formflow.FormErrors, data formflow.FormData) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field := range errs {
		switch {
		case field == formflow.SubmitErrorKey:
			out[field] = loc.T(i18n.ContactSubmitError)
		case strings.TrimSpace(data.Get(formflow.Field(field))) == "":
			out[field] = loc.T(i18n.ValidationRequired)
		default:
			out[field] = loc.T(i18n.ValidationEmail)
		}
	}
	return out
}
