package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"joins lines", "first\nsecond", "first second"},
		{"collapses whitespace", "a \r\n\t  b", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SingleLine(tt.input))
		})
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, sanitizer.Length("h\u00e9llo"))
	assert.Equal(t, 2, sanitizer.Length("日本"))
	assert.Equal(t, 0, sanitizer.Length(""))
}
