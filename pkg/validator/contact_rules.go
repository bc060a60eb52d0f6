package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Field limits of the contact form, in characters.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	EmailMaxLength   = 254
	CompanyMaxLength = 100
	ChoiceMaxLength  = 100
	MessageMinLength = 10
	MessageMaxLength = 2000
)

// Letters (with combining marks), spaces, hyphens, apostrophes and periods.
var nameRegex = regexp.MustCompile(`^[\p{L}\p{M} .'\-]+$`)

// ContactForm is the raw field set of a contact form submission.
type ContactForm struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Message     string
}

// ValidateSubmission checks every field of f and returns ValidationErrors with
// at most one reason per field, in field order. Values are passed through
// sanitizer.SanitizeInput first so lengths are measured on what would be kept.
// A nil registry disables the disposable-domain and typo checks.
func ValidateSubmission(f ContactForm, domains *DomainRegistry) error {
	var rules []Rule
	rules = append(rules, ContactName("name", f.Name)...)
	rules = append(rules, ContactEmail("email", f.Email, domains)...)
	rules = append(rules, ContactPhone("phone", f.Phone)...)
	rules = append(rules, BoundedOptional("company", f.Company, CompanyMaxLength)...)
	rules = append(rules, BoundedRequired("projectType", f.ProjectType, ChoiceMaxLength)...)
	rules = append(rules, BoundedRequired("budget", f.Budget, ChoiceMaxLength)...)
	rules = append(rules, BoundedRequired("timeline", f.Timeline, ChoiceMaxLength)...)
	rules = append(rules, ContactMessage("message", f.Message)...)
	return ApplyFirst(rules...)
}

// ContactName requires 2 to 100 characters made of letters, spaces, hyphens,
// apostrophes and periods.
func ContactName(field, value string) []Rule {
	value = sanitizer.SanitizeInput(value)
	return []Rule{
		RequiredString(field, value),
		MinLenString(field, value, NameMinLength),
		MaxLenString(field, value, NameMaxLength),
		MatchesPattern(field, value, nameRegex.MatchString, "letters, spaces, hyphens, apostrophes and periods"),
	}
}

// ContactEmail checks length and grammar, then rejects throwaway domains and
// likely misspellings of popular providers. A misspelling error carries the
// corrected address in TranslationValues["suggestion"].
func ContactEmail(field, value string, domains *DomainRegistry) []Rule {
	value = sanitizer.SanitizeInput(value)
	rules := []Rule{
		RequiredString(field, value),
		MaxLenString(field, value, EmailMaxLength),
		ValidEmail(field, value),
	}
	if domains == nil {
		return rules
	}
	return append(rules,
		NotDisposableEmail(field, value, domains),
		NoDomainTypo(field, value, domains),
	)
}

// NotDisposableEmail rejects addresses served by a throwaway mailbox provider.
func NotDisposableEmail(field, value string, domains *DomainRegistry) Rule {
	return Rule{
		Check: func() bool {
			return !domains.IsDisposable(sanitizer.ExtractEmailDomain(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "disposable email addresses are not allowed",
			TranslationKey: "validation.email_disposable",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoDomainTypo rejects addresses whose domain looks like a misspelled provider.
func NoDomainTypo(field, value string, domains *DomainRegistry) Rule {
	local := value
	if at := strings.LastIndexByte(value, '@'); at >= 0 {
		local = value[:at]
	}
	suggestion, found := domains.Suggest(sanitizer.ExtractEmailDomain(value))
	corrected := local + "@" + suggestion

	return Rule{
		Check: func() bool {
			return !found
		},
		Error: ValidationError{
			Field:          field,
			Message:        "did you mean " + corrected + "?",
			TranslationKey: "validation.email_typo",
			TranslationValues: map[string]any{
				"field":      field,
				"suggestion": corrected,
				"domain":     suggestion,
			},
		},
	}
}

// ContactPhone accepts an empty value; otherwise the number must be valid.
func ContactPhone(field, value string) []Rule {
	value = sanitizer.SanitizeInput(value)
	if value == "" {
		return nil
	}
	return []Rule{ValidPhone(field, value)}
}

// ContactMessage requires 10 to 2000 characters and rejects markup, scripts
// and protocol injections instead of silently stripping them.
func ContactMessage(field, value string) []Rule {
	value = sanitizer.SanitizeInput(value)
	return []Rule{
		RequiredString(field, value),
		MinLenString(field, value, MessageMinLength),
		MaxLenString(field, value, MessageMaxLength),
		NoDangerousContent(field, value),
	}
}

// NoDangerousContent rejects values containing script, markup or protocol
// injection patterns.
func NoDangerousContent(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !sanitizer.ContainsDangerous(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains disallowed content",
			TranslationKey: "validation.dangerous_content",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// BoundedRequired requires a non-empty value of at most max characters.
func BoundedRequired(field, value string, max int) []Rule {
	value = sanitizer.SanitizeInput(value)
	return []Rule{
		RequiredString(field, value),
		MaxLenString(field, value, max),
	}
}

// BoundedOptional accepts an empty value or one of at most max characters.
func BoundedOptional(field, value string, max int) []Rule {
	value = sanitizer.SanitizeInput(value)
	return []Rule{MaxLenString(field, value, max)}
}
