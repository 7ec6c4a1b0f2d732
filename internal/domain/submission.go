package domain

import "strings"

// ContactSubmission is one contact-form payload. It exists only for the
// duration of the request that carried it and is never persisted.
type ContactSubmission struct {
	FirstName   string `json:"firstName" form:"firstName"`
	Company     string `json:"company" form:"company"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Message     string `json:"message" form:"message"`
}

// ContactRequiredFields is the canonical required set for the contact pipeline.
// Company is optional.
var ContactRequiredFields = []string{"firstName", "email", "phoneNumber", "message"}

// Fields exposes the submission's text fields by their wire names.
func (s *ContactSubmission) Fields() map[string]string {
	return map[string]string{
		"firstName":   s.FirstName,
		"company":     s.Company,
		"email":       s.Email,
		"phoneNumber": s.PhoneNumber,
		"message":     s.Message,
	}
}

// Normalize trims surrounding whitespace from every field and strips HTML
// markup from the free-text message before it reaches the renderer.
func (s *ContactSubmission) Normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.Company = strings.TrimSpace(s.Company)
	s.Email = strings.TrimSpace(s.Email)
	s.PhoneNumber = strings.TrimSpace(s.PhoneNumber)
	s.Message = sanitizer().StripMarkup(strings.TrimSpace(s.Message))
}

// Validate runs format-level checks over the submission.
func (s *ContactSubmission) Validate() error {
	return ValidateStruct(s)
}

// CareerSubmission is one job-application payload. The résumé upload travels
// separately as a staged file; see the storage package.
type CareerSubmission struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone"`
	JobTitle       string `json:"jobTitle" form:"jobTitle"`
	Location       string `json:"location" form:"location"`
	CurrentRole    string `json:"currentRole" form:"currentRole"`
	Experience     string `json:"experience" form:"experience"`
	ExpectedSalary string `json:"expectedSalary" form:"expectedSalary"`
	JoiningDate    string `json:"joiningDate" form:"joiningDate"`
	Portfolio      string `json:"portfolio" form:"portfolio"`
	LinkedIn       string `json:"linkedin" form:"linkedin"`
}

// CareerRequiredFields is the canonical required set for the career pipeline.
// expectedSalary, joiningDate and portfolio are optional; absent values render
// a fallback in the notification email.
var CareerRequiredFields = []string{
	"firstName", "lastName", "email", "phone", "jobTitle",
	"location", "currentRole", "experience", "linkedin",
}

// Fields exposes the submission's text fields by their wire names.
func (s *CareerSubmission) Fields() map[string]string {
	return map[string]string{
		"firstName":      s.FirstName,
		"lastName":       s.LastName,
		"email":          s.Email,
		"phone":          s.Phone,
		"jobTitle":       s.JobTitle,
		"location":       s.Location,
		"currentRole":    s.CurrentRole,
		"experience":     s.Experience,
		"expectedSalary": s.ExpectedSalary,
		"joiningDate":    s.JoiningDate,
		"portfolio":      s.Portfolio,
		"linkedin":       s.LinkedIn,
	}
}

// Normalize trims surrounding whitespace from every field and strips HTML
// markup from the free-text fields.
func (s *CareerSubmission) Normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.JobTitle = strings.TrimSpace(s.JobTitle)
	s.Location = strings.TrimSpace(s.Location)
	s.CurrentRole = sanitizer().StripMarkup(strings.TrimSpace(s.CurrentRole))
	s.Experience = strings.TrimSpace(s.Experience)
	s.ExpectedSalary = strings.TrimSpace(s.ExpectedSalary)
	s.JoiningDate = strings.TrimSpace(s.JoiningDate)
	s.Portfolio = strings.TrimSpace(s.Portfolio)
	s.LinkedIn = strings.TrimSpace(s.LinkedIn)
}

// Validate runs format-level checks over the submission.
func (s *CareerSubmission) Validate() error {
	return ValidateStruct(s)
}
