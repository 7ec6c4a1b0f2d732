package domain

import (
	"html"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// FieldSource exposes a submission's text fields by their wire names so the
// required-field check can be configured per pipeline instead of hard-coded
// per submission kind.
type FieldSource interface {
	Fields() map[string]string
}

// MissingField returns the name of the first required field that is absent or
// blank, or "" when every requirement is met. Whitespace-only values count as
// missing.
func MissingField(src FieldSource, required []string) string {
	fields := src.Fields()
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			return name
		}
	}
	return ""
}

// SecuritySanitizer strips HTML markup from submitter-controlled text before
// it is interpolated into the notification email.
type SecuritySanitizer struct {
	policy *bluemonday.Policy
}

func NewSecuritySanitizer() *SecuritySanitizer {
	return &SecuritySanitizer{policy: bluemonday.StrictPolicy()}
}

// StripMarkup removes HTML elements from submitter text and returns the
// result as plain text. The entities bluemonday introduces while escaping
// are decoded again so the renderer performs the only escaping pass.
func (s *SecuritySanitizer) StripMarkup(input string) string {
	return html.UnescapeString(s.policy.Sanitize(input))
}

var (
	sanitizerOnce sync.Once
	sanitizerInst *SecuritySanitizer
)

func sanitizer() *SecuritySanitizer {
	sanitizerOnce.Do(func() {
		sanitizerInst = NewSecuritySanitizer()
	})
	return sanitizerInst
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator lazily initializes and returns a shared validator instance.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// ValidateStruct validates a submission using go-playground/validator and maps
// the first failure into the domain's ValidationError type for consistent
// error handling.
func ValidateStruct(model interface{}) error {
	if err := getValidator().Struct(model); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return NewValidationError(fieldErr.Field(), formatValidationMessage(fieldErr))
		}
		return err
	}
	return nil
}

func formatValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	default:
		return err.Error()
	}
}
