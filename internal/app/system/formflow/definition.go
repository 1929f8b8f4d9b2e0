// internal/app/system/formflow/definition.go
package formflow

// Field names a value in FormData. The string is also the form input name
// and the FormErrors key.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldCompany     Field = "company"
	FieldProjectType Field = "project_type"
	FieldBudget      Field = "budget"
	FieldTimeline    Field = "timeline"
	FieldDescription Field = "description"
	FieldMessage     Field = "message"
)

// Rule describes how one field of a step is validated.
type Rule struct {
	Field    Field
	Label    string // used in messages
	Required bool
	Email    bool
}

// StepDef is one group of fields shown and validated together.
type StepDef struct {
	Title string
	Rules []Rule
	// Files marks the step that accepts attachments.
	Files bool
}

// Definition is an ordered list of steps. Steps are numbered from 1.
type Definition struct {
	Name  string
	Steps []StepDef
}

// StepCount returns the number of steps.
func (d Definition) StepCount() int { return len(d.Steps) }

// Fields returns every field across all steps in order.
func (d Definition) Fields() []Field {
	var out []Field
	for _, s := range d.Steps {
		for _, r := range s.Rules {
			out = append(out, r.Field)
		}
	}
	return out
}

// ContactDefinition is the three-step project enquiry.
var ContactDefinition = Definition{
	Name: "project",
	Steps: []StepDef{
		{
			Title: "About you",
			Rules: []Rule{
				{Field: FieldName, Label: "Name", Required: true},
				{Field: FieldEmail, Label: "Email", Required: true, Email: true},
				{Field: FieldPhone, Label: "Phone"},
			},
		},
		{
			Title: "Your project",
			Rules: []Rule{
				{Field: FieldCompany, Label: "Company"},
				{Field: FieldProjectType, Label: "Project type", Required: true},
				{Field: FieldBudget, Label: "Budget", Required: true},
				{Field: FieldTimeline, Label: "Timeline", Required: true},
			},
		},
		{
			Title: "Details",
			Rules: []Rule{
				{Field: FieldDescription, Label: "Project description", Required: true},
			},
			Files: true,
		},
	},
}

// QuickDefinition is the single-step form used in page footers.
var QuickDefinition = Definition{
	Name: "quick",
	Steps: []StepDef{
		{
			Title: "Contact",
			Rules: []Rule{
				{Field: FieldName, Label: "Name", Required: true},
				{Field: FieldEmail, Label: "Email", Required: true, Email: true},
				{Field: FieldMessage, Label: "Message", Required: true},
			},
		},
	},
}
