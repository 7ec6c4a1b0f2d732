// Package mailer delivers composed notification emails through an outbound
// mail relay.
package mailer

import "context"

// Attachment is one file attached to an outbound email, referenced by its
// staged path and carrying the submitter's original filename.
type Attachment struct {
	Filename string
	Path     string
}

// Message is one outbound email. Constructed fresh per request, never reused.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender is the mail-transport collaborator. Implementations must not retry:
// a failed send is terminal for the request that produced it.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
