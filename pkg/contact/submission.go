package contact

import (
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Submission is one contact form post. Optional fields are empty strings
// when absent.
type Submission struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone,omitempty" form:"phone"`
	Company     string `json:"company,omitempty" form:"company"`
	ProjectType string `json:"projectType" form:"projectType"`
	Budget      string `json:"budget" form:"budget"`
	Timeline    string `json:"timeline" form:"timeline"`
	Message     string `json:"message" form:"message"`
}

// FromMap builds a Submission from a decoded request body. Each value passes
// through sanitizer.SanitizeAny, so non-string values become empty strings
// and fail the required-field rules instead of the decoder.
func FromMap(m map[string]any) Submission {
	return Submission{
		Name:        sanitizer.SanitizeAny(m["name"]),
		Email:       sanitizer.SanitizeAny(m["email"]),
		Phone:       sanitizer.SanitizeAny(m["phone"]),
		Company:     sanitizer.SanitizeAny(m["company"]),
		ProjectType: sanitizer.SanitizeAny(m["projectType"]),
		Budget:      sanitizer.SanitizeAny(m["budget"]),
		Timeline:    sanitizer.SanitizeAny(m["timeline"]),
		Message:     sanitizer.SanitizeAny(m["message"]),
	}
}

// Validate runs every field rule. A nil registry skips the disposable and
// typo checks. The error is a validator.ValidationErrors.
func (s Submission) Validate(domains *validator.DomainRegistry) error {
	return validator.ValidateSubmission(validator.ContactForm(s), domains)
}

// Sanitized returns the copy used for output: every field is XSS-sanitized
// except the email, which is basic-sanitized and normalized to lowercase.
func (s Submission) Sanitized() Submission {
	return Submission{
		Name:        sanitizer.SanitizeForXSS(s.Name),
		Email:       sanitizer.NormalizeEmail(s.Email),
		Phone:       sanitizer.SanitizeForXSS(s.Phone),
		Company:     sanitizer.SanitizeForXSS(s.Company),
		ProjectType: sanitizer.SanitizeForXSS(s.ProjectType),
		Budget:      sanitizer.SanitizeForXSS(s.Budget),
		Timeline:    sanitizer.SanitizeForXSS(s.Timeline),
		Message:     sanitizer.SanitizeForXSS(s.Message),
	}
}
