package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// rule builds a Rule whose translation values always include the field.
func rule(field, key, msg string, check func() bool, kv ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(kv); i += 2 {
		values[kv[i].(string)] = kv[i+1]
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// RequiredString fails for empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return rule(field, "validation.required", "field is required",
		func() bool { return strings.TrimSpace(value) != "" })
}

// MinLenString counts characters, not bytes.
func MinLenString(field, value string, min int) Rule {
	return rule(field, "validation.min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return utf8.RuneCountInString(value) >= min }, "min", min)
}

// MaxLenString counts characters, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return rule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max }, "max", max)
}

// MatchesPattern passes when match accepts value. description completes the
// message "must contain only ...".
func MatchesPattern(field, value string, match func(string) bool, description string) Rule {
	return rule(field, "validation.pattern", "must contain only "+description,
		func() bool { return match(value) }, "description", description)
}
