package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestNewSender(t *testing.T) {
	t.Parallel()

	t.Run("dev by default", func(t *testing.T) {
		t.Parallel()
		sender, err := email.NewSender(email.Config{DevDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &email.DevSender{}, sender)
	})

	t.Run("postmark", func(t *testing.T) {
		t.Parallel()
		sender, err := email.NewSender(email.Config{
			Provider:             email.ProviderPostmark,
			PostmarkServerToken:  "server",
			PostmarkAccountToken: "account",
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("smtp", func(t *testing.T) {
		t.Parallel()
		sender, err := email.NewSender(email.Config{
			Provider: email.ProviderSMTP,
			SMTPHost: "smtp.example.com",
			SMTPPort: 587,
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewSender(email.Config{Provider: "carrier-pigeon"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("must panics on invalid config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			email.MustNewSender(email.Config{Provider: email.ProviderSMTP})
		})
	})
}
