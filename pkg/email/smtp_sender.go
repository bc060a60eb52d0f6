package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/google/uuid"
	jwemail "github.com/jordan-wright/email"
)

type smtpSender struct {
	host string
	send func(e *jwemail.Email) error
}

// SMTPOption configures the SMTP sender.
type SMTPOption func(*smtpSender)

// WithSMTPTransport replaces the network send, mainly for tests.
func WithSMTPTransport(send func(e *jwemail.Email) error) SMTPOption {
	return func(s *smtpSender) {
		if send != nil {
			s.send = send
		}
	}
}

// NewSMTPSender creates an EmailSender that relays through an SMTP server
// with PLAIN authentication. With SMTPSSL set the connection uses implicit
// TLS, otherwise STARTTLS is negotiated when the server offers it.
func NewSMTPSender(cfg Config, opts ...SMTPOption) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("%w: SMTPPort must be between 1 and 65535", ErrInvalidConfig)
	}

	addr := net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort))
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	s := &smtpSender{host: cfg.SMTPHost}
	if cfg.SMTPSSL {
		tlsConfig := &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
		s.send = func(e *jwemail.Email) error { return e.SendWithTLS(addr, auth, tlsConfig) }
	} else {
		s.send = func(e *jwemail.Email) error { return e.Send(addr, auth) }
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// SendEmail implements EmailSender. The returned id is the Message-ID header
// set on the outgoing message. net/smtp has no context support, so a
// cancelled ctx abandons the send and reports failure while the transfer
// finishes in the background.
func (s *smtpSender) SendEmail(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString() + "@" + s.host

	e := jwemail.NewEmail()
	e.From = msg.From
	e.To = []string{msg.To}
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)
	e.HTML = []byte(msg.HTML)
	e.Headers.Set("Message-ID", "<"+id+">")

	done := make(chan error, 1)
	go func() {
		done <- s.send(e)
	}()

	select {
	case <-ctx.Done():
		return "", errors.Join(ErrFailedToSendEmail, ctx.Err())
	case err := <-done:
		if err != nil {
			return "", errors.Join(ErrFailedToSendEmail, err)
		}
		return id, nil
	}
}
