package domain

import "fmt"

// AttachmentReason identifies which résumé constraint a submission violated.
type AttachmentReason string

const (
	AttachmentMissing  AttachmentReason = "missing"
	AttachmentTooLarge AttachmentReason = "too_large"
	AttachmentBadType  AttachmentReason = "bad_type"
)

// ValidationError reports a required field that is absent or malformed. It is
// client-caused: the pipeline halts before any mail-transport interaction.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// AttachmentError reports a résumé upload that is absent or violates the
// size/type policy. Client-caused, distinguished from field validation so the
// caller learns which constraint failed.
type AttachmentError struct {
	Reason AttachmentReason
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("resume attachment rejected: %s", e.Reason)
}

// DeliveryError wraps a mail-transport failure. The wrapped detail is for
// server-side logs only and must never reach the caller.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
