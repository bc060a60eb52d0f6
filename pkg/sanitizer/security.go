package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxInputLength is the hard ceiling, in runes, applied to every sanitized value.
const MaxInputLength = 10000

// SanitizeInput makes untrusted text safe to store and compare: null bytes and
// control characters (except tab, newline and carriage return) are removed, the
// text is normalized to NFC, trimmed and capped at MaxInputLength runes.
func SanitizeInput(s string) string {
	return Apply(s,
		RemoveNullBytes,
		NormalizeUnicode,
		RemoveControlChars,
		strings.TrimSpace,
		capInput,
	)
}

// SanitizeAny is SanitizeInput for loosely typed input such as decoded JSON.
// Anything that is not a string yields an empty string.
func SanitizeAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return SanitizeInput(s)
}

// SanitizeForXSS runs SanitizeInput, strips dangerous markup and protocols and
// then HTML-encodes what is left. The result is stable under repeated
// application as long as it stays within MaxInputLength.
func SanitizeForXSS(s string) string {
	return Apply(s,
		SanitizeInput,
		StripDangerous,
		strings.TrimSpace,
		EncodeHTML,
	)
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// NormalizeUnicode converts s to Unicode normalization form C so that
// equivalent glyphs compare and count the same.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes C0 and C1 control characters, keeping tab,
// newline and carriage return so multi-line messages survive.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// LimitLength truncates input to prevent DoS attacks through large inputs.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength])
}

func capInput(s string) string {
	return LimitLength(s, MaxInputLength)
}

// StripDangerous removes script, iframe, object, embed, form and input
// elements, meta refresh tags, inline event handlers, javascript: and
// vbscript: URIs and non-image data: URIs. Removal is repeated until nothing
// matches, so fragments cannot be reassembled into a new match.
func StripDangerous(s string) string {
	for {
		next := stripOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripOnce(s string) string {
	for _, re := range strippers {
		s = re.ReplaceAllString(s, "")
	}
	return stripDataURIs(s)
}

// stripDataURIs removes every "data:" scheme not followed by an image media type.
func stripDataURIs(s string) string {
	matches := dataProtocolRegex.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		if isImageMediaType(s[m[1]:]) {
			continue
		}
		b.WriteString(s[last:m[0]])
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// isImageMediaType accepts the slash in raw or encoded form so that encoded
// output is left alone on a second pass.
func isImageMediaType(rest string) bool {
	for _, prefix := range []string{"image/", "image&#x2f;"} {
		if len(rest) >= len(prefix) && strings.EqualFold(rest[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// ContainsDangerous reports whether s carries any content StripDangerous would
// act on. Opening tags are enough; a closing tag is not required.
func ContainsDangerous(s string) bool {
	if dangerousTagRegex.MatchString(s) ||
		metaRefreshRegex.MatchString(s) ||
		jsProtocolRegex.MatchString(s) ||
		vbsProtocolRegex.MatchString(s) ||
		eventHandlerRegex.MatchString(s) {
		return true
	}
	return stripDataURIs(s) != s
}

// EncodeHTML encodes & < > " ' and / as HTML entities. An ampersand that
// already starts a well-formed character reference is left alone, so encoded
// text is never encoded twice.
func EncodeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'/`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if ent := entityRegex.FindString(s[i:]); ent != "" {
				b.WriteString(ent)
				i += len(ent) - 1
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		case '/':
			b.WriteString("&#x2F;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PreventHeaderInjection removes characters that could be used for header injection.
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", " ")
	return RemoveNullBytes(result)
}
