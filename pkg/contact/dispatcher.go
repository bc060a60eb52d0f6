package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/email/templates"
)

// Dispatcher delivers a sanitized submission and returns the provider id.
type Dispatcher interface {
	Dispatch(ctx context.Context, s Submission) (id string, err error)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, s Submission) (string, error)

func (f DispatcherFunc) Dispatch(ctx context.Context, s Submission) (string, error) {
	return f(ctx, s)
}

// EmailDispatcher renders a submission into a notification email and hands
// it to an email.EmailSender. Sender and recipient are fixed; Reply-To is
// the submitter.
type EmailDispatcher struct {
	sender        email.EmailSender
	from          string
	to            string
	subjectPrefix string
	now           func() time.Time
}

// EmailDispatcherOption configures an EmailDispatcher.
type EmailDispatcherOption func(*EmailDispatcher)

// WithSubjectPrefix prepends prefix and a space to every subject.
func WithSubjectPrefix(prefix string) EmailDispatcherOption {
	return func(d *EmailDispatcher) { d.subjectPrefix = strings.TrimSpace(prefix) }
}

// WithDispatchClock replaces time.Now for the submission timestamp.
func WithDispatchClock(now func() time.Time) EmailDispatcherOption {
	return func(d *EmailDispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewEmailDispatcher creates a dispatcher sending from one fixed address to another.
func NewEmailDispatcher(sender email.EmailSender, from, to string, opts ...EmailDispatcherOption) *EmailDispatcher {
	d := &EmailDispatcher{
		sender: sender,
		from:   from,
		to:     to,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch implements Dispatcher.
func (d *EmailDispatcher) Dispatch(ctx context.Context, s Submission) (string, error) {
	n := templates.ContactNotification{
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Company:     s.Company,
		ProjectType: s.ProjectType,
		Budget:      s.Budget,
		Timeline:    s.Timeline,
		Message:     s.Message,
		SubmittedAt: d.now(),
	}

	htmlBody, textBody, err := templates.RenderContact(ctx, n)
	if err != nil {
		return "", fmt.Errorf("%w: render: %w", ErrDispatch, err)
	}

	subject := n.Subject()
	if d.subjectPrefix != "" {
		subject = d.subjectPrefix + " " + subject
	}

	id, err := d.sender.SendEmail(ctx, email.Message{
		From:    d.from,
		To:      d.to,
		ReplyTo: asciiAddress(s.Email),
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
		Tag:     "contact-form",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDispatch, err)
	}
	return id, nil
}

// asciiAddress converts an internationalized domain to its punycode form so
// the address survives SMTP headers. The local part is left as is.
func asciiAddress(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at < 0 {
		return addr
	}
	domain, err := idna.Lookup.ToASCII(addr[at+1:])
	if err != nil {
		return addr
	}
	return addr[:at+1] + domain
}
