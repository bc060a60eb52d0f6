// Package validator provides declarative field validation for contact form
// submissions.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates rules and aggregates every failure into ValidationErrors,
// which implements error. ApplyFirst records only the first failure of each
// field and skips that field's remaining checks.
//
// # Contact form rules
//
// ValidateSubmission checks a ContactForm in field order:
//
//	name         2-100 characters; letters, spaces, hyphens, apostrophes, periods
//	email        at most 254 characters, strict grammar, not disposable, no typo
//	phone        optional; international number once formatting is removed
//	company      optional, at most 100 characters
//	projectType  required, at most 100 characters (also budget and timeline)
//	message      10-2000 characters, no script, markup or protocol injection
//
// Values are run through sanitizer.SanitizeInput before measuring, so limits
// apply to the text that would be kept.
//
// # Domain registry
//
// DomainRegistry holds throwaway mailbox domains, known misspellings and
// popular providers. DefaultDomains returns the embedded list; LoadDomains and
// LoadDomainsFile read the same YAML layout from elsewhere. When a domain looks
// like a misspelled provider the email error carries the corrected address in
// TranslationValues["suggestion"]:
//
//	err := validator.ValidateSubmission(form, validator.DefaultDomains())
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    if e, ok := errs.First("email"); ok {
//	        fmt.Println(e.TranslationValues["suggestion"])
//	    }
//	}
//
// # Error handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered with ExtractValidationErrors after wrapping. Registry loading
// failures wrap ErrInvalidRegistry.
package validator
