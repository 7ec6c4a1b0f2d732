package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nexivatech/nexivatech-website-backend/internal/domain"
	"github.com/nexivatech/nexivatech-website-backend/internal/mailer"
	"github.com/nexivatech/nexivatech-website-backend/internal/render"
	"github.com/nexivatech/nexivatech-website-backend/internal/storage"
)

const testRecipient = "nexivatech@gmail.com"

// stubSender records every delivery attempt instead of talking to a relay.
type stubSender struct {
	mu   sync.Mutex
	sent []*mailer.Message
	err  error
}

func (s *stubSender) Send(ctx context.Context, msg *mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newService(t *testing.T, sender mailer.Sender) SubmissionService {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return NewSubmissionService(sender, renderer, "relay@nexivatech.com", testRecipient, 5*time.Second)
}

func validContact() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		FirstName:   "Amina",
		Email:       "a@x.com",
		PhoneNumber: "0300",
		Message:     "Hello",
	}
}

func validCareer() *domain.CareerSubmission {
	return &domain.CareerSubmission{
		FirstName:   "Amina",
		LastName:    "Khan",
		Email:       "a@x.com",
		Phone:       "0300",
		JobTitle:    "seo-expert",
		Location:    "Karachi",
		CurrentRole: "SEO Analyst",
		Experience:  "3",
		LinkedIn:    "https://linkedin.com/in/amina",
	}
}

func stagedResume(name string, size int64) *storage.StagedFile {
	return &storage.StagedFile{Path: "/tmp/staged-resume", OriginalName: name, Size: size}
}

func TestSubmitContact_Delivers(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	if err := svc.SubmitContact(context.Background(), validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.count() != 1 {
		t.Fatalf("send count = %d, want 1", sender.count())
	}
	msg := sender.sent[0]
	if msg.To != testRecipient {
		t.Errorf("recipient = %q, want %q", msg.To, testRecipient)
	}
	if !strings.Contains(msg.Subject, "Contact") {
		t.Errorf("subject %q does not identify the contact form", msg.Subject)
	}
	for _, want := range []string{"Amina", "a@x.com", "0300", "Hello"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}

func TestSubmitContact_EscapesBodyOnce(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	sub := validContact()
	sub.Message = "Tom & Jerry: 5 < 6"
	if err := svc.SubmitContact(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.count() != 1 {
		t.Fatalf("send count = %d, want 1", sender.count())
	}
	body := sender.sent[0].HTML
	if !strings.Contains(body, "Tom &amp; Jerry: 5 &lt; 6") {
		t.Errorf("message not escaped in body: %q", body)
	}
	for _, double := range []string{"&amp;amp;", "&amp;lt;"} {
		if strings.Contains(body, double) {
			t.Errorf("message escaped twice in body: found %q", double)
		}
	}
}

func TestSubmitContact_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ContactSubmission)
	}{
		{"firstName", func(s *domain.ContactSubmission) { s.FirstName = "" }},
		{"email", func(s *domain.ContactSubmission) { s.Email = "" }},
		{"phoneNumber", func(s *domain.ContactSubmission) { s.PhoneNumber = "" }},
		{"message", func(s *domain.ContactSubmission) { s.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{}
			svc := newService(t, sender)

			sub := validContact()
			tt.mutate(sub)

			err := svc.SubmitContact(context.Background(), sub)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if sender.count() != 0 {
				t.Errorf("transport was touched despite validation failure")
			}
		})
	}
}

func TestSubmitContact_DeliveryFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("relay rejected")}
	svc := newService(t, sender)

	err := svc.SubmitContact(context.Background(), validContact())
	var dErr *domain.DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
}

func TestSubmitCareer_Delivers(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	resume := stagedResume("my-resume.pdf", 2<<20)
	if err := svc.SubmitCareer(context.Background(), validCareer(), resume); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.count() != 1 {
		t.Fatalf("send count = %d, want 1", sender.count())
	}
	msg := sender.sent[0]
	if !strings.Contains(msg.Subject, "SEO Expert") {
		t.Errorf("subject %q missing the resolved job title", msg.Subject)
	}
	if len(msg.Attachments) != 1 {
		t.Fatalf("attachment count = %d, want 1", len(msg.Attachments))
	}
	if msg.Attachments[0].Filename != "my-resume.pdf" {
		t.Errorf("attachment filename = %q, want the original name", msg.Attachments[0].Filename)
	}
	if msg.Attachments[0].Path != resume.Path {
		t.Errorf("attachment path = %q, want the staged path", msg.Attachments[0].Path)
	}
}

func TestSubmitCareer_UnknownJobCode(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	sub := validCareer()
	sub.JobTitle = "quantum-engineer"
	if err := svc.SubmitCareer(context.Background(), sub, stagedResume("cv.pdf", 1024)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sender.sent[0].Subject, "quantum-engineer") {
		t.Errorf("unknown job code should pass through to the subject, got %q", sender.sent[0].Subject)
	}
}

func TestSubmitCareer_ResumePolicy(t *testing.T) {
	tests := []struct {
		name       string
		resume     *storage.StagedFile
		wantReason domain.AttachmentReason
	}{
		{"missing", nil, domain.AttachmentMissing},
		{"bad extension", stagedResume("cv.exe", 1024), domain.AttachmentBadType},
		{"bad extension ignores size", stagedResume("cv.exe", 10<<20), domain.AttachmentBadType},
		{"one byte over limit", stagedResume("cv.pdf", storage.MaxResumeSize+1), domain.AttachmentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{}
			svc := newService(t, sender)

			err := svc.SubmitCareer(context.Background(), validCareer(), tt.resume)
			var aErr *domain.AttachmentError
			if !errors.As(err, &aErr) {
				t.Fatalf("expected AttachmentError, got %v", err)
			}
			if aErr.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", aErr.Reason, tt.wantReason)
			}
			if sender.count() != 0 {
				t.Errorf("transport was touched despite attachment rejection")
			}
		})
	}
}

func TestSubmitCareer_ExactSizeLimitAccepted(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	if err := svc.SubmitCareer(context.Background(), validCareer(), stagedResume("cv.pdf", storage.MaxResumeSize)); err != nil {
		t.Fatalf("a resume of exactly the size limit must be accepted, got %v", err)
	}
	if sender.count() != 1 {
		t.Errorf("send count = %d, want 1", sender.count())
	}
}

func TestSubmitCareer_MissingFieldBeforeTransport(t *testing.T) {
	sender := &stubSender{}
	svc := newService(t, sender)

	sub := validCareer()
	sub.LinkedIn = ""

	err := svc.SubmitCareer(context.Background(), sub, stagedResume("cv.pdf", 1024))
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if sender.count() != 0 {
		t.Errorf("transport was touched despite validation failure")
	}
}

func TestSubmitCareer_DeliveryFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("auth failed")}
	svc := newService(t, sender)

	err := svc.SubmitCareer(context.Background(), validCareer(), stagedResume("cv.pdf", 1024))
	var dErr *domain.DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
}
