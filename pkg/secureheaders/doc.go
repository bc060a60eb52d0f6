// Package secureheaders provides HTTP middleware for response hardening:
// a fixed set of security headers, an optional Content-Security-Policy with
// per-request nonces, and a single-origin CORS policy.
//
//	r.Use(secureheaders.Middleware(secureheaders.WithCSP(secureheaders.APIPolicy())))
//	r.Use(secureheaders.CORS("https://example.com"))
//
// Templates read the nonce with NonceFromContext.
package secureheaders
