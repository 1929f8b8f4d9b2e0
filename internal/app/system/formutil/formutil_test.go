package formutil

import (
	"testing"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestChoices(t *testing.T) {
	opts := []models.Option{
		{Value: "a", Label: models.Text{EN: "Alpha", FR: "Alpha FR"}},
		{Value: "b", Label: models.Text{EN: "Beta"}},
	}
	got := Choices(opts, "b", "fr")
	want := []Choice{
		{Value: "a", Label: "Alpha FR"},
		{Value: "b", Label: "Beta", Selected: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Choices mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalizeErrors(t *testing.T) {
	loc := i18n.New(i18n.French, zap.NewNop())
	data := formflow.NewFormData(map[formflow.Field]string{
		formflow.FieldEmail: "nope",
	})
	errs := formflow.FormErrors{
		"name":                  "Name is required",
		"email":                 "Please enter a valid email address",
		formflow.SubmitErrorKey: formflow.SubmitErrorMessage,
	}

	got := LocalizeErrors(loc, errs, data)
	want := map[string]string{
		"name":                  "Ce champ est obligatoire",
		"email":                 "Merci de saisir une adresse e-mail valide",
		formflow.SubmitErrorKey: "L'envoi du formulaire a échoué. Merci de réessayer.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LocalizeErrors mismatch (-want +got):\n%s", diff)
	}

	if LocalizeErrors(loc, nil, data) != nil {
		t.Error("no errors should give nil")
	}
}

func TestBase_SetError(t *testing.T) {
	var b Base
	b.SetError("<b>oops</b>")
	if string(b.Error) != "&lt;b&gt;oops&lt;/b&gt;" {
		t.Errorf("Error = %q", b.Error)
	}
	b.Errors = map[string]string{"email": "bad"}
	if b.FieldError("email") != "bad" || b.FieldError("name") != "" {
		t.Error("FieldError lookup wrong")
	}
}
