// Package render produces the HTML bodies of the notification emails sent to
// the operator mailbox. Every interpolated value goes through html/template's
// contextual escaping, so submitter-controlled text cannot inject markup into
// the operator's mail client.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed email templates. Safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// ContactEmail carries the values interpolated into the contact notification.
type ContactEmail struct {
	FirstName   string
	Company     string
	Email       string
	PhoneNumber string
	Message     string
	SubmittedAt string
}

// CareerEmail carries the values interpolated into the application
// notification. JobTitle is the resolved display label, not the posting code.
type CareerEmail struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	JobTitle       string
	Location       string
	CurrentRole    string
	Experience     string
	ExpectedSalary string
	JoiningDate    string
	Portfolio      string
	LinkedIn       string
	ResumeName     string
	SubmittedAt    string
}

// Contact renders the contact notification body.
func (r *Renderer) Contact(data ContactEmail) (string, error) {
	if data.SubmittedAt == "" {
		data.SubmittedAt = Timestamp()
	}
	return r.render("contact.html", data)
}

// Career renders the job-application notification body.
func (r *Renderer) Career(data CareerEmail) (string, error) {
	if data.SubmittedAt == "" {
		data.SubmittedAt = Timestamp()
	}
	return r.render("career.html", data)
}

func (r *Renderer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Timestamp is the locale-neutral submission timestamp embedded in emails.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
