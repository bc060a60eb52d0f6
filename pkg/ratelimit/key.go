package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	maxKeyLength = 64
	hashedPrefix = "h:"
)

// StorageKey maps an identity to the key a Store sees. Identities up to 64
// bytes pass through unchanged; longer ones become "h:" followed by the
// first 16 bytes of their SHA-256 in hex, so the prefix keeps them apart
// from raw identities.
func StorageKey(identity string) string {
	if len(identity) <= maxKeyLength {
		return identity
	}
	sum := sha256.Sum256([]byte(identity))
	return hashedPrefix + hex.EncodeToString(sum[:16])
}
