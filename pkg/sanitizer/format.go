package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// NormalizeEmail applies basic input sanitization, then trims and lowercases
// the address. Structural checks belong to the validator.
func NormalizeEmail(email string) string {
	return TrimToLower(SanitizeInput(email))
}

// ExtractEmailDomain returns the lowercased part after the last "@", or "" if there is none.
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// MaskEmail keeps the first character of the local part and the domain:
// "jane@example.com" becomes "j***@example.com". A one-character local part
// is fully masked. Anything that does not look
// like an address comes back trimmed but otherwise unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}
	r, size := utf8.DecodeRuneInString(local)
	if size == len(local) {
		return "*@" + domain
	}
	return string(r) + strings.Repeat("*", utf8.RuneCountInString(local[size:])) + "@" + domain
}

// StripPhoneFormatting removes spaces, dashes and parentheses from a phone number.
func StripPhoneFormatting(phone string) string {
	return phoneFormattingRegex.ReplaceAllString(phone, "")
}
