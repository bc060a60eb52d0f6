package templates

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// Render writes c into memory and returns the markup.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}
