package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is the identity used when no valid address can be found.
const Unknown = "unknown"

// DefaultHeaders are consulted, in order, before falling back to RemoteAddr.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client's IP address from HTTP request using DefaultHeaders.
// Comma-separated header values (X-Forwarded-For) yield their first valid IP.
// Returns an empty string when nothing usable is found.
func GetIP(r *http.Request) string {
	return GetIPFromHeaders(r, DefaultHeaders...)
}

// GetIPFromHeaders is GetIP with an explicit header priority list, e.g. to
// put CF-Connecting-IP first behind Cloudflare.
func GetIPFromHeaders(r *http.Request, headers ...string) string {
	for _, h := range headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for ip := range strings.SplitSeq(value, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If SplitHostPort fails, assume it's already just an IP
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Identity returns GetIP(r), or Unknown when the address cannot be determined.
func Identity(r *http.Request) string {
	if ip := GetIP(r); ip != "" {
		return ip
	}
	return Unknown
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
