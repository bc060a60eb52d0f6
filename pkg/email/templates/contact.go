package templates

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// ContactNotification is the data shown in a new-submission email. Field
// values are expected to be sanitized already; they may contain HTML
// character references.
type ContactNotification struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Message     string
	SubmittedAt time.Time
}

var subjectName = sanitizer.Compose(html.UnescapeString, sanitizer.SingleLine)

// Subject returns the notification subject line.
func (n ContactNotification) Subject() string {
	return "New Contact Form Submission from " + subjectName(n.Name)
}

// htmlView carries every field already encoded, so html/template must not
// escape it again.
type htmlView struct {
	Name        template.HTML
	Email       template.HTML
	Phone       template.HTML
	Company     template.HTML
	ProjectType template.HTML
	Budget      template.HTML
	Timeline    template.HTML
	Message     template.HTML
	SubmittedAt string
}

// encoded re-applies entity encoding. EncodeHTML leaves existing references
// alone, so sanitized input is not encoded twice.
func encoded(s string) template.HTML {
	return template.HTML(sanitizer.EncodeHTML(s))
}

var contactHTML = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New contact form submission</title></head>
<body style="font-family:Arial,sans-serif;line-height:1.6;color:#333;max-width:600px;margin:0 auto;padding:20px">
<h2 style="color:#2563eb;border-bottom:2px solid #e5e7eb;padding-bottom:10px">New Contact Form Submission</h2>
<div style="margin-bottom:20px">
<h3 style="color:#374151;margin-bottom:10px">Contact Information</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
{{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
</div>
<div style="margin-bottom:20px">
<h3 style="color:#374151;margin-bottom:10px">Project Details</h3>
<p><strong>Project Type:</strong> {{.ProjectType}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Timeline:</strong> {{.Timeline}}</p>
</div>
<div style="margin-bottom:20px">
<h3 style="color:#374151;margin-bottom:10px">Message</h3>
<div style="background:#f9fafb;padding:15px;border-radius:8px;border-left:4px solid #2563eb;white-space:pre-wrap">{{.Message}}</div>
</div>
<div style="margin-top:30px;padding-top:20px;border-top:1px solid #e5e7eb;font-size:12px;color:#6b7280">
<p>Submitted on {{.SubmittedAt}}</p>
</div>
</body>
</html>
`))

var contactText = texttemplate.Must(texttemplate.New("contact").Parse(`New Contact Form Submission

Contact Information:
- Name: {{.Name}}
- Email: {{.Email}}
{{- if .Phone}}
- Phone: {{.Phone}}
{{- end}}
{{- if .Company}}
- Company: {{.Company}}
{{- end}}

Project Details:
- Project Type: {{.ProjectType}}
- Budget: {{.Budget}}
- Timeline: {{.Timeline}}

Message:
{{.Message}}

Submitted on {{.SubmittedAt}}
`))

const timestampLayout = "2006-01-02 15:04:05 MST"

// ContactHTML returns the HTML body as a templ component.
func ContactHTML(n ContactNotification) templ.Component {
	return templ.FromGoHTML(contactHTML, htmlView{
		Name:        encoded(n.Name),
		Email:       encoded(n.Email),
		Phone:       encoded(n.Phone),
		Company:     encoded(n.Company),
		ProjectType: encoded(n.ProjectType),
		Budget:      encoded(n.Budget),
		Timeline:    encoded(n.Timeline),
		Message:     encoded(n.Message),
		SubmittedAt: n.SubmittedAt.UTC().Format(timestampLayout),
	})
}

type textView struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Message     string
	SubmittedAt string
}

// ContactText renders the plain-text body. Character references are decoded
// since a text part is never interpreted as markup.
func ContactText(n ContactNotification) (string, error) {
	view := textView{
		Name:        html.UnescapeString(n.Name),
		Email:       html.UnescapeString(n.Email),
		Phone:       html.UnescapeString(n.Phone),
		Company:     html.UnescapeString(n.Company),
		ProjectType: html.UnescapeString(n.ProjectType),
		Budget:      html.UnescapeString(n.Budget),
		Timeline:    html.UnescapeString(n.Timeline),
		Message:     html.UnescapeString(n.Message),
		SubmittedAt: n.SubmittedAt.UTC().Format(timestampLayout),
	}

	var sb strings.Builder
	if err := contactText.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render contact text: %w", err)
	}
	return sb.String(), nil
}

// RenderContact renders both bodies of a notification.
func RenderContact(ctx context.Context, n ContactNotification) (htmlBody, textBody string, err error) {
	htmlBody, err = Render(ctx, ContactHTML(n))
	if err != nil {
		return "", "", fmt.Errorf("render contact html: %w", err)
	}
	textBody, err = ContactText(n)
	if err != nil {
		return "", "", err
	}
	return htmlBody, textBody, nil
}
