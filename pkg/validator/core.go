package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule. TranslationKey and TranslationValues
// let a client localize Message.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is returned by Apply and ApplyFirst, in rule order. It
// matches ErrValidationFailed under errors.Is.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(ve.Messages(), "; ")
}

func (ve ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

func (ve *ValidationErrors) Add(err ValidationError) { *ve = append(*ve, err) }

func (ve ValidationErrors) Has(field string) bool {
	_, ok := ve.First(field)
	return ok
}

// First returns the earliest error recorded for field.
func (ve ValidationErrors) First(field string) (ValidationError, bool) {
	for _, e := range ve {
		if e.Field == field {
			return e, true
		}
	}
	return ValidationError{}, false
}

// Get returns every message recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Fields lists failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for i, e := range ve {
		if _, seen := ve[:i].First(e.Field); !seen {
			out = append(out, e.Field)
		}
	}
	return out
}

// Messages renders each error as "field: message".
func (ve ValidationErrors) Messages() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Field + ": " + e.Message
	}
	return out
}

// Map keys the first message of each field by field name. It is nil when
// there are no errors.
func (ve ValidationErrors) Map() map[string]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string]string, len(ve))
	for _, f := range ve.Fields() {
		e, _ := ve.First(f)
		m[f] = e.Message
	}
	return m
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and collects all failures.
func Apply(rules ...Rule) error {
	return run(false, rules)
}

// ApplyFirst stops checking a field after its first failure, so each field
// reports a single reason. Other fields keep going.
func ApplyFirst(rules ...Rule) error {
	return run(true, rules)
}

func run(firstOnly bool, rules []Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if firstOnly && errs.Has(r.Error.Field) {
			continue
		}
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps err to its ValidationErrors, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
