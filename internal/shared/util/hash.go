package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionKey returns a short, log-safe fingerprint of a session ID.
func HashSessionKey(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
