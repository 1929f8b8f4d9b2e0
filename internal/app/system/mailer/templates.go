// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// ContactField is one labelled line of a contact notification.
type ContactField struct {
	Label string
	Value string
}

// ContactNotificationData holds data for the studio's new-enquiry email.
type ContactNotificationData struct {
	SiteName    string
	Form        string // "project" or "quick"
	Name        string
	Email       string
	Fields      []ContactField
	Message     string
	Attachments []string
	Language    string
}

// BuildContactNotification creates the new-enquiry email with both bodies.
// To is set by the caller.
func BuildContactNotification(data ContactNotificationData) Email {
	return Email{
		Subject:  fmt.Sprintf("[%s] New %s enquiry from %s", data.SiteName, data.Form, data.Name),
		TextBody: buildContactText(data),
		HTMLBody: buildContactHTML(data),
	}
}

func buildContactText(data ContactNotificationData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "New %s enquiry (%s)\n\n", data.Form, data.Language)
	fmt.Fprintf(&buf, "Name: %s\nEmail: %s\n", data.Name, data.Email)
	for _, f := range data.Fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\n", f.Label, f.Value)
	}
	if data.Message != "" {
		buf.WriteString("\n" + data.Message + "\n")
	}
	if len(data.Attachments) > 0 {
		buf.WriteString("\nAttachments: " + strings.Join(data.Attachments, ", ") + "\n")
	}
	return buf.String()
}

var contactHTML = template.Must(template.New("contact").Parse(contactHTMLTemplate))

func buildContactHTML(data ContactNotificationData) string {
	var buf bytes.Buffer
	_ = contactHTML.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>New enquiry</title>
</head>
<body style="margin: 0; padding: 24px; font-family: Georgia, 'Times New Roman', serif; background-color: #0b0b0c; color: #f4f1ea;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; margin: 0 auto; background-color: #16161a; border-radius: 6px;">
    <tr>
      <td style="padding: 24px 32px; border-bottom: 1px solid #2a2a30;">
        <h1 style="margin: 0; font-size: 20px; letter-spacing: 2px; color: #d4a24c;">{{.SiteName}}</h1>
        <p style="margin: 8px 0 0; font-size: 13px; color: #9a968c;">New {{.Form}} enquiry ({{.Language}})</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 24px 32px;">
        <p style="margin: 0 0 4px;"><strong>{{.Name}}</strong></p>
        <p style="margin: 0 0 16px;"><a href="mailto:{{.Email}}" style="color: #d4a24c;">{{.Email}}</a></p>
        {{range .Fields}}{{if .Value}}<p style="margin: 0 0 6px; font-size: 14px;"><span style="color: #9a968c;">{{.Label}}:</span> {{.Value}}</p>{{end}}{{end}}
        {{if .Message}}<p style="margin: 16px 0 0; font-size: 14px; white-space: pre-wrap;">{{.Message}}</p>{{end}}
        {{if .Attachments}}<p style="margin: 16px 0 0; font-size: 13px; color: #9a968c;">Attachments: {{range $i, $a := .Attachments}}{{if $i}}, {{end}}{{$a}}{{end}}</p>{{end}}
      </td>
    </tr>
  </table>
</body>
</html>`
