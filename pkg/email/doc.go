// Package email delivers transactional messages through a provider-agnostic
// EmailSender interface.
//
// Three senders are available:
//   - NewPostmarkClient posts to Postmark's API and returns its MessageID
//   - NewSMTPSender relays through any SMTP server and returns the Message-ID header
//   - NewDevSender writes HTML, text and JSON files to a directory for local development
//
// NewSender picks one from Config.Provider ("postmark", "smtp" or "dev").
// Every sender validates the Message before contacting the provider.
//
// # Usage
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//
//	id, err := sender.SendEmail(ctx, email.Message{
//	    From:    "noreply@example.com",
//	    To:      "owner@example.com",
//	    ReplyTo: "jane@example.com",
//	    Subject: "New Contact Form Submission from Jane Doe",
//	    HTML:    htmlBody,
//	    Text:    textBody,
//	})
//
// The templates subpackage renders the contact notification bodies.
//
// # Error Handling
//
//   - ErrInvalidConfig: sender configuration is incomplete
//   - ErrInvalidParams: the message failed validation and was not sent
//   - ErrFailedToSendEmail: the provider rejected the message or could not be reached
//
// A cancelled or expired context makes SendEmail return ErrFailedToSendEmail
// joined with the context error.
package email
