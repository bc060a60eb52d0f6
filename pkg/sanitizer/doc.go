// Package sanitizer turns untrusted form input into text that is safe to
// store, log and embed in HTML or plain-text email bodies.
//
// Two entry points cover almost every use:
//
//   - SanitizeInput removes null bytes and control characters (tab, newline
//     and carriage return are kept), normalizes to Unicode NFC, trims and caps
//     the value at MaxInputLength runes.
//
//   - SanitizeForXSS runs SanitizeInput, strips dangerous constructs (script,
//     iframe, object, embed, form and input elements, meta refresh, inline
//     event handlers, javascript:/vbscript: URIs and non-image data: URIs) and
//     HTML-encodes & < > " ' and /.
//
// Stripping happens before encoding so raw markup never reaches a mail client
// even when the text is later copied into an unescaped context; encoding
// afterwards covers whatever the pattern list misses.
//
// EncodeHTML leaves existing character references untouched, which makes
// SanitizeForXSS idempotent for values within the length cap:
//
//	once := sanitizer.SanitizeForXSS(`Tom & "Jerry"`) // Tom &amp; &quot;Jerry&quot;
//	twice := sanitizer.SanitizeForXSS(once)           // unchanged
//
// ContainsDangerous reports the same pattern classes without modifying input;
// validators use it to reject a message outright instead of silently cleaning it.
//
// # Composition
//
// Apply and Compose build pipelines from plain string transforms:
//
//	clean := sanitizer.Compose(
//	    sanitizer.SanitizeInput,
//	    sanitizer.SingleLine,
//	)
//
// # Error handling
//
// None of the helpers returns an error. Sanitization always succeeds; input of
// the wrong type passed to SanitizeAny yields an empty string.
//
// All functions are stateless and safe for concurrent use.
package sanitizer
