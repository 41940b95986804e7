package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA-256 digest of data.
//
// Used for non-secret fingerprinting, such as condensing a User-Agent header
// into a short client identity component for rate limiting. For keyed
// fingerprints of sensitive values use the crypto package instead.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
