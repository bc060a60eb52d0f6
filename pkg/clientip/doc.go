// Package clientip resolves the originating client address of an
// *http.Request, for use as a rate-limit identity.
//
// Headers are examined in priority order until a valid IP is found:
//
//  1. X-Forwarded-For - comma-separated list, the first valid IP is used
//  2. X-Real-IP       - set by reverse proxies such as Nginx
//  3. RemoteAddr      - TCP peer address as a fallback
//
// GetIPFromHeaders accepts a custom list for other proxy setups. Identity
// returns "unknown" instead of an empty string, so all unidentifiable clients
// share one quota.
//
// Middleware stores the identity in the request context; handlers read it
// back with FromContext.
//
// Forwarding headers are client controlled unless a trusted proxy overwrites
// them. Deploy behind one that does.
package clientip
