package contact

import "time"

// Config holds the endpoint settings. Rate-limit quota lives in
// ratelimit.Config and provider credentials in email.Config.
type Config struct {
	Path          string `env:"CONTACT_PATH" envDefault:"/api/send-email" validate:"startswith=/"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000" validate:"required,url"`

	From          string `env:"CONTACT_FROM" envDefault:"noreply@example.com" validate:"required,email"`
	To            string `env:"CONTACT_TO" envDefault:"hello@example.com" validate:"required,email"`
	SubjectPrefix string `env:"CONTACT_SUBJECT_PREFIX"`

	DispatchTimeout time.Duration `env:"CONTACT_DISPATCH_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	// DispatchRate caps provider calls per second across all identities; 0 disables it.
	DispatchRate  float64 `env:"CONTACT_DISPATCH_RATE" envDefault:"2" validate:"gte=0"`
	DispatchBurst int     `env:"CONTACT_DISPATCH_BURST" envDefault:"5" validate:"gte=1"`

	MaxBodyBytes int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536" validate:"gte=1024"`
	DomainsFile  string `env:"CONTACT_DOMAINS_FILE"`
}
