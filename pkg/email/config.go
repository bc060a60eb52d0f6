package email

import "fmt"

// Supported values of Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderDev      = "dev"
)

// Config selects and configures the delivery provider.
// Postmark and SMTP credentials are optional to support development
// environments where messages are written to disk instead.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"dev" validate:"oneof=postmark smtp dev"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587" validate:"min=1,max=65535"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPSSL      bool   `env:"SMTP_SSL" envDefault:"false"` // implicit TLS, usually port 465

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// NewSender builds the EmailSender selected by cfg.Provider.
func NewSender(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderDev, "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// MustNewSender is NewSender that panics on invalid config.
func MustNewSender(cfg Config) EmailSender {
	sender, err := NewSender(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}
