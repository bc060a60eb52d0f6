package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"o'brien@example.ie",
			"user@münchen.de",
			strings.Repeat("a", 64) + "@example.com",
		}

		for _, email := range validEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.NoError(t, err, "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"two@@example.com",
			"a@b@example.com",
			".leading@example.com",
			"trailing.@example.com",
			"double..dot@example.com",
			"user@-example.com",
			"user@example-.com",
			"user@exa_mple.com",
			"user name@example.com",
			"<script>@example.com",
			strings.Repeat("a", 65) + "@example.com",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.Error(t, err, "email should be invalid: %q", email)
		}
	})
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone string
		valid bool
	}{
		{"+15551234567", true},
		{"+1 (555) 123-4567", true},
		{"5551234567", true},
		{"7", true},
		{"+1234567890123456", true},
		{"+12345678901234567", false},
		{"0551234567", false},
		{"+0 555", false},
		{"555.123.4567", false},
		{"call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidPhone("phone", tt.phone))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
