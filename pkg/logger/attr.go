package logger

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Attribute keys shared by every package.
const (
	KeyError     = "error"
	KeyIdentity  = "identity"
	KeyFields    = "fields"
	KeyMessageID = "message_id"
	KeyDuration  = "duration"
	KeyComponent = "component"
)

// Error returns an empty Attr for a nil err, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Identity logs a rate-limit identity. Email addresses are masked.
func Identity(id string) slog.Attr {
	if strings.Contains(id, "@") {
		id = sanitizer.MaskEmail(id)
	}
	return slog.String(KeyIdentity, id)
}

// Fields lists the form fields that failed validation.
func Fields(names []string) slog.Attr {
	return slog.Any(KeyFields, names)
}

// MessageID logs the provider's message id. An empty id is dropped.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String(KeyMessageID, id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
