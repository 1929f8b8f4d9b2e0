// internal/app/system/formflow/data.go
package formflow

import (
	"maps"

	"github.com/dalemusser/orsonvision/internal/domain/models"
)

// FormData holds the named string fields plus attached files.
type FormData struct {
	Values map[Field]string    `json:"values"`
	Files  []models.Attachment `json:"files,omitempty"`
}

// NewFormData builds FormData from plain field/value pairs.
func NewFormData(values map[Field]string) FormData {
	return FormData{Values: maps.Clone(values)}
}

// Get returns the value of f, or "".
func (d FormData) Get(f Field) string {
	return d.Values[f]
}

// Clone returns a deep copy.
func (d FormData) Clone() FormData {
	return FormData{
		Values: maps.Clone(d.Values),
		Files:  append([]models.Attachment(nil), d.Files...),
	}
}
