package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender delivers one message and returns the provider-assigned id.
type EmailSender interface {
	SendEmail(ctx context.Context, msg Message) (id string, err error)
}

// SenderFunc adapts a plain function to EmailSender.
type SenderFunc func(ctx context.Context, msg Message) (string, error)

func (f SenderFunc) SendEmail(ctx context.Context, msg Message) (string, error) {
	return f(ctx, msg)
}

// Message represents a single outbound email.
type Message struct {
	From    string `json:"from"`               // Sender address
	To      string `json:"to"`                 // Recipient address
	ReplyTo string `json:"reply_to,omitempty"` // Optional
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
	Tag     string `json:"tag,omitempty"` // Optional, for provider analytics
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the addresses, requires a single-line subject and at least
// one body.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(m.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if m.ReplyTo != "" && !emailRegex.MatchString(m.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("%w: Subject must be a single line", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: HTML or Text body is required", ErrInvalidParams)
	}
	return nil
}
