// internal/app/features/contact/step.go
package contact

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/formutil"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/limits"
	"github.com/dalemusser/orsonvision/internal/app/system/timeouts"
	"github.com/dalemusser/orsonvision/internal/app/system/uploads"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"go.uber.org/zap"
)

// attachmentsField is the multipart field name and the error key for uploads.
const attachmentsField = "attachments"

type fieldVM struct {
	Name     string
	Label    string
	Kind     string // text, email, tel, select, textarea
	Value    string
	Required bool
	Error    string
	Choices  []formutil.Choice
}

type stepData struct {
	formutil.Base
	Heading          string
	Intro            string
	Progress         string
	Step             int
	StepCount        int
	StepTitle        string
	Fields           []fieldVM
	Files            bool
	Attachments      []string
	AttachmentsLabel string
	AttachmentsError string
	SelectLabel      string
	IsFirst          bool
	IsLast           bool
	NextLabel        string
	BackLabel        string
	SubmitLabel      string
	SubmittingLabel  string
}

var fieldLabels = map[formflow.Field]i18n.Key{
	formflow.FieldName:        i18n.FieldName,
	formflow.FieldEmail:       i18n.FieldEmail,
	formflow.FieldPhone:       i18n.FieldPhone,
	formflow.FieldCompany:     i18n.FieldCompany,
	formflow.FieldProjectType: i18n.FieldProjectType,
	formflow.FieldBudget:      i18n.FieldBudget,
	formflow.FieldTimeline:    i18n.FieldTimeline,
	formflow.FieldDescription: i18n.FieldDescription,
	formflow.FieldMessage:     i18n.FieldMessage,
}

var fieldChoices = map[formflow.Field][]models.Option{
	formflow.FieldProjectType: models.ProjectTypes,
	formflow.FieldBudget:      models.Budgets,
	formflow.FieldTimeline:    models.Timelines,
}

var stepTitles = map[string][]i18n.Key{
	formflow.ContactDefinition.Name: {i18n.ContactStepAbout, i18n.ContactStepProject, i18n.ContactStepDetails},
}

func fieldKind(rule formflow.Rule) string {
	switch {
	case rule.Email:
		return "email"
	case rule.Field == formflow.FieldPhone:
		return "tel"
	case fieldChoices[rule.Field] != nil:
		return "select"
	case rule.Field == formflow.FieldDescription || rule.Field == formflow.FieldMessage:
		return "textarea"
	}
	return "text"
}

func stepTitle(loc *i18n.Localizer, c *formflow.Controller) string {
	if keys := stepTitles[c.Definition().Name]; c.Step() <= len(keys) {
		return loc.T(keys[c.Step()-1])
	}
	return c.CurrentStep().Title
}

// buildStepData assembles the view for the controller's active step.
// extra carries errors that are not held by the controller (uploads).
func buildStepData(r *http.Request, c *formflow.Controller, extra map[string]string) stepData {
	loc := i18n.FromContext(r.Context())
	lang := loc.Code()
	data := c.Data()

	errs := formutil.LocalizeErrors(loc, c.Errors(), data)
	for k, v := range extra {
		if errs == nil {
			errs = map[string]string{}
		}
		errs[k] = v
	}

	vm := stepData{
		Base:             formutil.Base{BaseVM: viewdata.NewBaseVM(r, loc.T(i18n.ContactTitle), "/"), Errors: errs},
		Heading:          loc.T(i18n.ContactTitle),
		Intro:            loc.T(i18n.ContactIntro),
		Progress:         fmt.Sprintf("%s %d %s %d", loc.T(i18n.ContactStep), c.Step(), loc.T(i18n.ContactOf), c.StepCount()),
		Step:             c.Step(),
		StepCount:        c.StepCount(),
		StepTitle:        stepTitle(loc, c),
		Files:            c.CurrentStep().Files,
		AttachmentsLabel: loc.T(i18n.ContactAttachments),
		AttachmentsError: errs[attachmentsField],
		SelectLabel:      loc.T(i18n.ContactSelect),
		IsFirst:          c.IsFirstStep(),
		IsLast:           c.IsLastStep(),
		NextLabel:        loc.T(i18n.ContactNext),
		BackLabel:        loc.T(i18n.ContactBack),
		SubmitLabel:      loc.T(i18n.ContactSubmit),
		SubmittingLabel:  loc.T(i18n.ContactSubmitting),
	}
	if msg, ok := errs[formflow.SubmitErrorKey]; ok {
		vm.SetError(msg)
	}

	for _, rule := range c.CurrentStep().Rules {
		f := fieldVM{
			Name:     string(rule.Field),
			Label:    loc.T(fieldLabels[rule.Field]),
			Kind:     fieldKind(rule),
			Value:    data.Get(rule.Field),
			Required: rule.Required,
			Error:    errs[string(rule.Field)],
		}
		if opts := fieldChoices[rule.Field]; opts != nil {
			f.Choices = formutil.Choices(opts, f.Value, lang)
		}
		vm.Fields = append(vm.Fields, f)
	}
	for _, a := range data.Files {
		vm.Attachments = append(vm.Attachments, a.OriginalName)
	}
	return vm
}

// ServeStep handles GET /contact and renders the visitor's current step.
func (h *Handler) ServeStep(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r, formflow.ContactDefinition)
	if c.IsSubmitted() {
		http.Redirect(w, r, "/contact/thanks", http.StatusSeeOther)
		return
	}
	h.Render(w, r, "contact_step", buildStepData(r, c, nil))
}

// HandleStep handles POST /contact. The action field is next, back or
// submit; a missing action means next.
func (h *Handler) HandleStep(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxContactFormSize+h.uploadAllowance())
	if err := parseForm(r); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c := h.controller(r, formflow.ContactDefinition)
			h.Log.Warn("contact form too large", zap.Int64("limit", tooBig.Limit))
			h.Render(w, r, "contact_step", buildStepData(r, c, map[string]string{attachmentsField: loc.T(i18n.ContactUploadTooLarge)}))
			return
		}
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "", "/contact")
		return
	}

	c := h.controller(r, formflow.ContactDefinition)
	if c.IsSubmitted() {
		http.Redirect(w, r, "/contact/thanks", http.StatusSeeOther)
		return
	}

	action := r.PostFormValue("action")
	if action != "back" {
		applyFields(r, c)
	}
	extra := map[string]string{}
	if key, failed := h.applyFiles(r, c); failed {
		extra[attachmentsField] = loc.T(key)
	}

	switch action {
	case "back":
		c.Retreat()
		h.saveAndRedirect(w, r, c, "/contact")

	case "submit":
		if len(extra) > 0 {
			h.saveAndRender(w, r, c, extra)
			return
		}
		if !h.allow(r) {
			h.Log.Info("contact submit rate limited", zap.String("path", r.URL.Path))
			if err := h.Sessions.Save(w, r, c); err != nil {
				h.ErrLog.LogServerError(w, r, "save contact session failed", err, "", "/contact")
				return
			}
			vm := buildStepData(r, c, nil)
			vm.SetError(loc.T(i18n.ContactRateLimited))
			viewdata.RenderStatus(h.Render, http.StatusTooManyRequests)(w, r, "contact_step", vm)
			return
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Submit(), h.Log, "contact submit")
		defer cancel()
		err := c.Submit(ctx, h.submitFunc(r, c.Definition().Name))
		switch {
		case err == nil:
			h.saveAndRedirect(w, r, c, "/contact/thanks")
		case errors.Is(err, formflow.ErrInvalid):
			h.saveAndRender(w, r, c, nil)
		default:
			h.Log.Error("contact submit failed", zap.Error(err))
			h.saveAndRender(w, r, c, nil)
		}

	default:
		if !c.Advance() || len(extra) > 0 {
			h.saveAndRender(w, r, c, extra)
			return
		}
		h.saveAndRedirect(w, r, c, "/contact")
	}
}

func (h *Handler) uploadAllowance() int64 {
	if h.Uploads == nil {
		return 0
	}
	return h.Uploads.MaxBytes() * limits.MaxAttachments
}

func (h *Handler) saveAndRedirect(w http.ResponseWriter, r *http.Request, c *formflow.Controller, to string) {
	if err := h.Sessions.Save(w, r, c); err != nil {
		h.ErrLog.LogServerError(w, r, "save contact session failed", err, "", "/contact")
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (h *Handler) saveAndRender(w http.ResponseWriter, r *http.Request, c *formflow.Controller, extra map[string]string) {
	if err := h.Sessions.Save(w, r, c); err != nil {
		h.ErrLog.LogServerError(w, r, "save contact session failed", err, "", "/contact")
		return
	}
	h.Render(w, r, "contact_step", buildStepData(r, c, extra))
}

// parseForm accepts both multipart and urlencoded bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(limits.MaxContactFormSize)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// applyFields copies the active step's fields from the request. Values are
// trimmed and capped at limits.MaxFieldLength runes.
func applyFields(r *http.Request, c *formflow.Controller) {
	for _, rule := range c.CurrentStep().Rules {
		c.Set(rule.Field, clip(strings.TrimSpace(r.PostFormValue(string(rule.Field)))))
	}
}

func clip(s string) string {
	if utf8.RuneCountInString(s) <= limits.MaxFieldLength {
		return s
	}
	return string([]rune(s)[:limits.MaxFieldLength])
}

// applyFiles stores uploaded attachments for a step that accepts them. It
// reports the message key of the last problem, if any.
func (h *Handler) applyFiles(r *http.Request, c *formflow.Controller) (problem i18n.Key, failed bool) {
	if !c.CurrentStep().Files || r.MultipartForm == nil || h.Uploads == nil {
		return problem, false
	}
	count := len(c.Data().Files)
	for _, fh := range r.MultipartForm.File[attachmentsField] {
		if fh.Filename == "" {
			continue
		}
		if count >= limits.MaxAttachments {
			return i18n.ContactTooManyFiles, true
		}
		att, err := h.Uploads.Save(fh)
		switch {
		case err == nil:
			c.AddFile(att)
			count++
		case errors.Is(err, uploads.ErrTooLarge):
			problem, failed = i18n.ContactUploadTooLarge, true
		case errors.Is(err, uploads.ErrType):
			problem, failed = i18n.ContactUploadType, true
		default:
			h.Log.Error("store attachment failed", zap.String("file", fh.Filename), zap.Error(err))
			problem, failed = i18n.ContactSubmitError, true
		}
	}
	return problem, failed
}
