package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexivatech/nexivatech-website-backend/internal/domain"
	"github.com/nexivatech/nexivatech-website-backend/internal/mailer"
	"github.com/nexivatech/nexivatech-website-backend/internal/render"
	"github.com/nexivatech/nexivatech-website-backend/internal/storage"
)

// SubmissionService runs the receive-validate-render-send pipeline for the
// website's two forms. Each call is independent and stateless; nothing is
// persisted and a failed delivery is never retried.
type SubmissionService interface {
	SubmitContact(ctx context.Context, sub *domain.ContactSubmission) error
	SubmitCareer(ctx context.Context, sub *domain.CareerSubmission, resume *storage.StagedFile) error
}

type submissionService struct {
	sender      mailer.Sender
	renderer    *render.Renderer
	from        string
	recipient   string
	sendTimeout time.Duration
}

func NewSubmissionService(sender mailer.Sender, renderer *render.Renderer, from, recipient string, sendTimeout time.Duration) SubmissionService {
	return &submissionService{
		sender:      sender,
		renderer:    renderer,
		from:        from,
		recipient:   recipient,
		sendTimeout: sendTimeout,
	}
}

func (s *submissionService) SubmitContact(ctx context.Context, sub *domain.ContactSubmission) error {
	sub.Normalize()

	if field := domain.MissingField(sub, domain.ContactRequiredFields); field != "" {
		return domain.NewValidationError(field, "field is required")
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	html, err := s.renderer.Contact(render.ContactEmail{
		FirstName:   sub.FirstName,
		Company:     sub.Company,
		Email:       sub.Email,
		PhoneNumber: sub.PhoneNumber,
		Message:     sub.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	return s.deliver(ctx, &mailer.Message{
		From:    s.from,
		To:      s.recipient,
		Subject: "Contact Us Form Submission",
		HTML:    html,
	})
}

func (s *submissionService) SubmitCareer(ctx context.Context, sub *domain.CareerSubmission, resume *storage.StagedFile) error {
	sub.Normalize()

	if field := domain.MissingField(sub, domain.CareerRequiredFields); field != "" {
		return domain.NewValidationError(field, "field is required")
	}
	if err := sub.Validate(); err != nil {
		return err
	}
	if err := checkResume(resume); err != nil {
		return err
	}

	title := domain.ResolveJobTitle(sub.JobTitle)

	html, err := s.renderer.Career(render.CareerEmail{
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		JobTitle:       title,
		Location:       sub.Location,
		CurrentRole:    sub.CurrentRole,
		Experience:     sub.Experience,
		ExpectedSalary: sub.ExpectedSalary,
		JoiningDate:    sub.JoiningDate,
		Portfolio:      sub.Portfolio,
		LinkedIn:       sub.LinkedIn,
		ResumeName:     resume.OriginalName,
	})
	if err != nil {
		return fmt.Errorf("failed to render application email: %w", err)
	}

	return s.deliver(ctx, &mailer.Message{
		From:    s.from,
		To:      s.recipient,
		Subject: "New Job Application - " + title,
		HTML:    html,
		Attachments: []mailer.Attachment{
			{Filename: resume.OriginalName, Path: resume.Path},
		},
	})
}

// checkResume enforces the attachment policy: present, allowed extension, at
// most storage.MaxResumeSize bytes. The type check runs before the size check
// so a disallowed extension is reported regardless of size.
func checkResume(resume *storage.StagedFile) error {
	switch {
	case resume == nil:
		return &domain.AttachmentError{Reason: domain.AttachmentMissing}
	case !storage.AllowedResumeExt(resume.OriginalName):
		return &domain.AttachmentError{Reason: domain.AttachmentBadType}
	case resume.Size > storage.MaxResumeSize:
		return &domain.AttachmentError{Reason: domain.AttachmentTooLarge}
	}
	return nil
}

// deliver is the single point of contact with the mail transport. One attempt
// bounded by the configured timeout; a timeout counts as a delivery failure.
func (s *submissionService) deliver(ctx context.Context, msg *mailer.Message) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, msg); err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("mail delivery failed")
		return &domain.DeliveryError{Err: err}
	}
	return nil
}
