package secureheaders

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// Directive is one CSP directive. Directives without sources, such as
// upgrade-insecure-requests, are emitted bare.
type Directive struct {
	Name    string
	Sources []string
}

// Policy is an ordered Content-Security-Policy.
type Policy struct {
	Directives []Directive
	// UseNonce appends 'nonce-<value>' to script-src and style-src.
	UseNonce bool
}

// DefaultPolicy returns the policy for the marketing site and its embeds.
func DefaultPolicy() Policy {
	return Policy{
		Directives: []Directive{
			{"default-src", []string{"'self'"}},
			{"script-src", []string{"'self'", "https://fonts.googleapis.com", "https://www.googletagmanager.com", "https://assets.calendly.com", "https://js.stripe.com"}},
			{"style-src", []string{"'self'", "https://fonts.googleapis.com"}},
			{"img-src", []string{"'self'", "data:", "https:"}},
			{"font-src", []string{"'self'", "https://fonts.gstatic.com"}},
			{"connect-src", []string{"'self'", "https://www.google-analytics.com", "https://analytics.google.com", "https://calendly.com", "https://api.stripe.com"}},
			{"frame-src", []string{"'self'", "https://calendly.com", "https://checkout.stripe.com", "https://js.stripe.com"}},
			{"frame-ancestors", []string{"'none'"}},
			{"base-uri", []string{"'self'"}},
			{"form-action", []string{"'self'"}},
			{"object-src", []string{"'none'"}},
			{"media-src", []string{"'self'"}},
			{"worker-src", []string{"'self'"}},
			{"manifest-src", []string{"'self'"}},
			{"upgrade-insecure-requests", nil},
		},
		UseNonce: true,
	}
}

// APIPolicy is the policy for JSON endpoints that never render documents.
func APIPolicy() Policy {
	return Policy{Directives: []Directive{
		{"default-src", []string{"'none'"}},
		{"frame-ancestors", []string{"'none'"}},
	}}
}

// String renders the header value. nonce is ignored when empty.
func (p Policy) String(nonce string) string {
	parts := make([]string, 0, len(p.Directives))
	for _, d := range p.Directives {
		if len(d.Sources) == 0 {
			parts = append(parts, d.Name)
			continue
		}
		v := d.Name + " " + strings.Join(d.Sources, " ")
		if nonce != "" && (d.Name == "script-src" || d.Name == "style-src") {
			v += " 'nonce-" + nonce + "'"
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, "; ")
}

// NewNonce returns 16 random bytes, base64 encoded.
func NewNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

type nonceKey struct{}

func withNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey{}, nonce)
}

// NonceFromContext returns the per-request CSP nonce set by Middleware.
func NonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey{}).(string)
	return nonce
}
