package validator

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

var (
	// Local part per RFC 5322 atext plus dots; domain labels may not start or end with a hyphen.
	emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

	// International format, checked after formatting characters are stripped.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

const maxEmailLocalLength = 64

// ValidEmail validates the address grammar: one "@", a dotted domain made of
// well-formed labels and a local part of at most 64 characters without
// leading, trailing or consecutive dots. Internationalized domains are
// checked in their ASCII form.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isEmailAddress(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isEmailAddress(value string) bool {
	if strings.Count(value, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(value, "@")

	if local == "" || len(local) > maxEmailLocalLength {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}

	asciiDomain, ok := asciiDomain(domain)
	if !ok || !strings.Contains(asciiDomain, ".") {
		return false
	}

	return emailRegex.MatchString(local + "@" + asciiDomain)
}

// asciiDomain converts a domain to its lowercase ASCII (punycode) form.
func asciiDomain(domain string) (string, bool) {
	if domain == "" {
		return "", false
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", false
	}
	return strings.ToLower(ascii), true
}

// ValidPhone validates an international phone number once spaces, dashes and
// parentheses are removed, so "+1 (555) 123-4567" is accepted.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(sanitizer.StripPhoneFormatting(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
