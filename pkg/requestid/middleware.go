package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const maxLength = 128

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Middleware reuses a well-formed incoming id (Header, then
// CorrelationHeader) or generates a time-ordered UUID, stores it in the
// request context and echoes it in the response Header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := incoming(r)
		if id == "" {
			id = generate()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func incoming(r *http.Request) string {
	for _, h := range []string{Header, CorrelationHeader} {
		if id := r.Header.Get(h); valid(id) {
			return id
		}
	}
	return ""
}

func valid(id string) bool {
	return id != "" && len(id) <= maxLength && validID.MatchString(id)
}

func generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
