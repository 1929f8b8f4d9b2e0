// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment is an uploaded file that belongs to a contact submission.
// The bytes live on disk under the configured upload directory; only the
// metadata is stored with the submission.
type Attachment struct {
	StoredName   string `bson:"stored_name" json:"stored_name"`     // uuid-based name on disk
	OriginalName string `bson:"original_name" json:"original_name"` // name the visitor uploaded
	ContentType  string `bson:"content_type" json:"content_type"`
	Size         int64  `bson:"size" json:"size"`
}

// ContactSubmission is one completed contact form.
type ContactSubmission struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Form string `bson:"form" json:"form"` // "project" or "quick"

	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string `bson:"company,omitempty" json:"company,omitempty"`
	ProjectType string `bson:"project_type,omitempty" json:"project_type,omitempty"`
	Budget      string `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline    string `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Attachments []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`

	Language  string    `bson:"language" json:"language"`
	ClientIP  string    `bson:"client_ip,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
