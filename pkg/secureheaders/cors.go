package secureheaders

import (
	"net/http"
	"strings"
)

// CORS request headers accepted from browsers.
var AllowedHeaders = []string{
	"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
	"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
}

// AllowedMethods are the only methods advertised to browsers.
var AllowedMethods = []string{http.MethodPost, http.MethodOptions}

// CORS allows exactly one origin, with credentials. The origin is written
// unconditionally, so other origins are refused by the browser rather than
// the server. Preflight handling is left to the wrapped handler.
func CORS(origin string) func(http.Handler) http.Handler {
	methods := strings.Join(AllowedMethods, ", ")
	headers := strings.Join(AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			h.Add("Vary", "Origin")
			next.ServeHTTP(w, r)
		})
	}
}
