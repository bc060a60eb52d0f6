package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims surrounding whitespace",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "removes null bytes",
			input:    "he\x00llo",
			expected: "hello",
		},
		{
			name:     "keeps newlines and tabs",
			input:    "line1\nline2\r\n\tindented",
			expected: "line1\nline2\r\n\tindented",
		},
		{
			name:     "removes other control characters",
			input:    "a\x01b\x7fc\u0085d",
			expected: "abcd",
		},
		{
			name:     "normalizes to NFC",
			input:    "e\u0301",
			expected: "\u00e9",
		},
		{
			name:     "leaves markup untouched",
			input:    "<b>bold</b>",
			expected: "<b>bold</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeInput(tt.input))
		})
	}
}

func TestSanitizeInput_LengthCeiling(t *testing.T) {
	t.Parallel()

	t.Run("ascii", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.SanitizeInput(strings.Repeat("a", 20000))
		assert.Equal(t, sanitizer.MaxInputLength, sanitizer.Length(out))
	})

	t.Run("multibyte counts runes", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.SanitizeInput(strings.Repeat("日", sanitizer.MaxInputLength+5))
		assert.Equal(t, sanitizer.MaxInputLength, sanitizer.Length(out))
	})

	t.Run("exactly at limit is kept", func(t *testing.T) {
		t.Parallel()
		in := strings.Repeat("b", sanitizer.MaxInputLength)
		assert.Equal(t, in, sanitizer.SanitizeInput(in))
	})
}

func TestSanitizeAny(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", sanitizer.SanitizeAny(" ok "))
	assert.Equal(t, "", sanitizer.SanitizeAny(42))
	assert.Equal(t, "", sanitizer.SanitizeAny(nil))
	assert.Equal(t, "", sanitizer.SanitizeAny([]string{"a"}))
	assert.Equal(t, "", sanitizer.SanitizeAny(map[string]any{"a": "b"}))
}

func TestSanitizeForXSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script element with content",
			input:    "<script>alert(1)</script>Hello",
			expected: "Hello",
		},
		{
			name:     "encodes special characters",
			input:    `Tom & "Jerry"`,
			expected: "Tom &amp; &quot;Jerry&quot;",
		},
		{
			name:     "encodes apostrophe and slash",
			input:    "it's a/b",
			expected: "it&#x27;s a&#x2F;b",
		},
		{
			name:     "strips inline event handler",
			input:    `<b onclick="x()">hi</b>`,
			expected: "&lt;b &quot;x()&quot;&gt;hi&lt;&#x2F;b&gt;",
		},
		{
			name:     "strips javascript protocol",
			input:    `<a href="javascript:alert(1)">x</a>`,
			expected: "&lt;a href=&quot;alert(1)&quot;&gt;x&lt;&#x2F;a&gt;",
		},
		{
			name:     "strips nested script fragments",
			input:    "<scr<script>x</script>ipt>alert(1)</script>",
			expected: "",
		},
		{
			name:     "strips reassembled protocol",
			input:    "javajavascript:script:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "strips non-image data uri",
			input:    "data:text/html,hi",
			expected: "text&#x2F;html,hi",
		},
		{
			name:     "keeps image data uri",
			input:    "data:image/png;base64,AA",
			expected: "data:image&#x2F;png;base64,AA",
		},
		{
			name:     "keeps multi-line text",
			input:    "Hello,\nI need a site.\n\tThanks",
			expected: "Hello,\nI need a site.\n\tThanks",
		},
		{
			name:     "does not double encode entities",
			input:    "Tom &amp; Jerry &#x27;&#39;",
			expected: "Tom &amp; Jerry &#x27;&#39;",
		},
		{
			name:     "encodes bare ampersand before semicolon",
			input:    "&a; & ;",
			expected: "&amp;a; &amp; ;",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeForXSS(tt.input))
		})
	}
}

func TestSanitizeForXSS_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text",
		`Tom & "Jerry" <tom@example.com>`,
		"<script>alert('x')</script><img src=x onerror=alert(1)>",
		"&amp;&lt;&#x2F;&#47; & &; &#; &#xZZ;",
		"a/b/c 'quoted' \"double\"",
		"line\nbreak\ttab",
		"<iframe src=//evil></iframe><form><input name=a></form>",
		`<meta http-equiv="refresh" content="0">`,
		"data:text/html;base64,PHNjcmlwdD4= data:image/gif;base64,R0l",
		"vbscript:msgbox JAVASCRIPT:alert",
		"  \x00 padded \x01 ",
	}

	for _, in := range inputs {
		once := sanitizer.SanitizeForXSS(in)
		twice := sanitizer.SanitizeForXSS(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestSanitizeForXSS_NoExecutableMarkup(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<script>alert(1)</script>",
		"<SCRIPT SRC=//x.js></SCRIPT>",
		"<scr<script>ipt>alert(1)</script>",
		"<img src=x onerror=alert(1)>",
		`<a href="javascript:void(0)">`,
	}

	for _, in := range inputs {
		out := sanitizer.SanitizeForXSS(in)
		assert.NotContains(t, strings.ToLower(out), "<script", "input %q", in)
		assert.NotContains(t, strings.ToLower(out), "javascript:", "input %q", in)
		assert.NotContains(t, out, "<", "input %q", in)
		assert.False(t, sanitizer.ContainsDangerous(out), "input %q produced %q", in, out)
	}
}

func TestStripDangerous(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"iframe", "a<iframe src=x></iframe>b", "ab"},
		{"object", "a<object data=x></object>b", "ab"},
		{"void embed", "a<embed src=x.swf>b", "ab"},
		{"void input", `a<input type="text" value="x">b`, "ab"},
		{"form", "a<form action=x><button>go</button></form>b", "ab"},
		{"meta refresh", `<meta http-equiv="refresh" content="0">`, ` content="0">`},
		{"vbscript", "VBScript:run", "run"},
		{"case insensitive", "<ScRiPt>x</sCrIpT>ok", "ok"},
		{"word containing on is kept", "conditions = met", "conditions = met"},
		{"safe text", "Hello there", "Hello there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripDangerous(tt.input))
		})
	}
}

func TestContainsDangerous(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"<script>", true},
		{"hello <IFRAME src=x>", true},
		{"click javascript:void(0)", true},
		{"<img onload =x>", true},
		{"data:text/html,hi", true},
		{"vbscript:x", true},
		{`<meta http-equiv='refresh'>`, true},
		{"data:image/png;base64,AA", false},
		{"Hello, I'd like a quote for a new website.", false},
		{"Our considerations = budget and timeline", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.ContainsDangerous(tt.input))
		})
	}
}

func TestEncodeHTML(t *testing.T) {
	t.Parallel()

	out := sanitizer.EncodeHTML(`<a href="/x">'&'</a>`)
	require.NotContains(t, out, "<")
	assert.Equal(t, "&lt;a href=&quot;&#x2F;x&quot;&gt;&#x27;&amp;&#x27;&lt;&#x2F;a&gt;", out)
	assert.Equal(t, out, sanitizer.EncodeHTML(out))
}

func TestLimitLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hel", sanitizer.LimitLength("hello", 3))
	assert.Equal(t, "hello", sanitizer.LimitLength("hello", 10))
	assert.Equal(t, "", sanitizer.LimitLength("hello", 0))
}

func TestPreventHeaderInjection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Subject Bcc: evil@example.com", sanitizer.PreventHeaderInjection("Subject\r\nBcc: evil@example.com"))
}
