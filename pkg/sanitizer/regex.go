package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Paired tags are removed together with everything up to their own closing tag.
	scriptTagRegex = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	iframeTagRegex = regexp.MustCompile(`(?is)<iframe\b.*?</iframe\s*>`)
	objectTagRegex = regexp.MustCompile(`(?is)<object\b.*?</object\s*>`)
	embedTagRegex  = regexp.MustCompile(`(?is)<embed\b.*?</embed\s*>`)
	formTagRegex   = regexp.MustCompile(`(?is)<form\b.*?</form\s*>`)
	inputTagRegex  = regexp.MustCompile(`(?is)<input\b.*?</input\s*>`)

	// embed and input are void elements and usually appear without a closing tag.
	voidTagRegex = regexp.MustCompile(`(?i)<(?:embed|input)\b[^>]*>`)

	metaRefreshRegex  = regexp.MustCompile(`(?i)<meta\s+http-equiv\s*=\s*["']refresh["']`)
	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	vbsProtocolRegex  = regexp.MustCompile(`(?i)vbscript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	dataProtocolRegex = regexp.MustCompile(`(?i)data:`)

	// Detection only: an opening tag is enough to reject a message.
	dangerousTagRegex = regexp.MustCompile(`(?i)<(?:script|iframe|object|embed|form|input)\b`)

	// Well-formed character references that EncodeHTML must not encode twice.
	entityRegex = regexp.MustCompile(`^&(?:[a-zA-Z][a-zA-Z0-9]{1,31}|#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6});`)

	// Formatting characters stripped from phone numbers before validation.
	phoneFormattingRegex = regexp.MustCompile(`[\s\-()]`)
)

// strippers run in order on every StripDangerous pass.
var strippers = []*regexp.Regexp{
	scriptTagRegex,
	jsProtocolRegex,
	eventHandlerRegex,
	vbsProtocolRegex,
	iframeTagRegex,
	objectTagRegex,
	embedTagRegex,
	formTagRegex,
	inputTagRegex,
	voidTagRegex,
	metaRefreshRegex,
}
