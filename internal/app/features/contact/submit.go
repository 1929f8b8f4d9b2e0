// internal/app/features/contact/submit.go
package contact

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/htmlsanitize"
	"github.com/dalemusser/orsonvision/internal/app/system/mailer"
	"github.com/dalemusser/orsonvision/internal/domain/models"
	"go.uber.org/zap"
)

// SubmissionSaver persists a finished submission.
type SubmissionSaver interface {
	Insert(ctx context.Context, sub models.ContactSubmission) (models.ContactSubmission, error)
}

// AttachmentCommitter marks uploaded files as belonging to a stored
// submission so the sweeper leaves them alone.
type AttachmentCommitter interface {
	Commit(stored string) error
}

// Notifier sends the studio's new-enquiry email.
type Notifier interface {
	Enabled() bool
	Send(e mailer.Email) error
}

// Submitter stores submissions and then notifies the studio. A failed
// notification is logged and does not fail the submission.
type Submitter struct {
	Store    SubmissionSaver
	Files    AttachmentCommitter // nil when the form takes no attachments
	Mail     Notifier
	NotifyTo string
	Log      *zap.Logger

	now func() time.Time
}

func NewSubmitter(store SubmissionSaver, files AttachmentCommitter, mail Notifier, notifyTo string, logger *zap.Logger) *Submitter {
	return &Submitter{Store: store, Files: files, Mail: mail, NotifyTo: notifyTo, Log: logger, now: time.Now}
}

// Func binds the request details a submission records.
func (s *Submitter) Func(form, lang, clientIP string) formflow.SubmitFunc {
	return func(ctx context.Context, data formflow.FormData) error {
		sub := BuildSubmission(form, data, lang, clientIP, s.now().UTC())
		// Files are committed first; a retry after a failed insert finds
		// them already in place.
		if s.Files != nil {
			for _, a := range sub.Attachments {
				if err := s.Files.Commit(a.StoredName); err != nil {
					return fmt.Errorf("commit attachment %s: %w", a.StoredName, err)
				}
			}
		}
		saved, err := s.Store.Insert(ctx, sub)
		if err != nil {
			return fmt.Errorf("store contact submission: %w", err)
		}
		s.Log.Info("contact submission stored",
			zap.String("id", saved.ID.Hex()),
			zap.String("form", form),
			zap.Int("attachments", len(saved.Attachments)))
		s.notify(saved)
		return nil
	}
}

func (s *Submitter) notify(sub models.ContactSubmission) {
	if s.Mail == nil || !s.Mail.Enabled() || s.NotifyTo == "" {
		return
	}
	email := mailer.BuildContactNotification(notificationData(sub))
	email.To = s.NotifyTo
	if err := s.Mail.Send(email); err != nil {
		s.Log.Warn("contact notification failed",
			zap.String("id", sub.ID.Hex()), zap.Error(err))
	}
}

// BuildSubmission maps form data to the stored document. Free text is
// reduced to plain text first. The quick form's message is stored as the
// description.
func BuildSubmission(form string, data formflow.FormData, lang, clientIP string, at time.Time) models.ContactSubmission {
	v := maps.Clone(data.Values)
	if v == nil {
		v = map[formflow.Field]string{}
	}
	htmlsanitize.Values(v)

	desc := v[formflow.FieldDescription]
	if desc == "" {
		desc = v[formflow.FieldMessage]
	}
	return models.ContactSubmission{
		Form:        form,
		Name:        v[formflow.FieldName],
		Email:       v[formflow.FieldEmail],
		Phone:       v[formflow.FieldPhone],
		Company:     v[formflow.FieldCompany],
		ProjectType: v[formflow.FieldProjectType],
		Budget:      v[formflow.FieldBudget],
		Timeline:    v[formflow.FieldTimeline],
		Description: desc,
		Attachments: append([]models.Attachment(nil), data.Files...),
		Language:    lang,
		ClientIP:    clientIP,
		CreatedAt:   at,
	}
}

// notificationData renders option values with their English labels; the
// studio reads notifications in English whatever the visitor's language.
func notificationData(sub models.ContactSubmission) mailer.ContactNotificationData {
	d := mailer.ContactNotificationData{
		SiteName: models.DefaultSiteName,
		Form:     sub.Form,
		Name:     sub.Name,
		Email:    sub.Email,
		Message:  sub.Description,
		Language: sub.Language,
	}
	add := func(label, value string) {
		if value != "" {
			d.Fields = append(d.Fields, mailer.ContactField{Label: label, Value: value})
		}
	}
	add("Phone", sub.Phone)
	add("Company", sub.Company)
	add("Project type", models.OptionLabel(models.ProjectTypes, sub.ProjectType, "en"))
	add("Budget", models.OptionLabel(models.Budgets, sub.Budget, "en"))
	add("Timeline", models.OptionLabel(models.Timelines, sub.Timeline, "en"))
	for _, a := range sub.Attachments {
		d.Attachments = append(d.Attachments, fmt.Sprintf("%s (%s, %d bytes)", a.OriginalName, a.ContentType, a.Size))
	}
	return d
}
