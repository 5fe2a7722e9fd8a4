package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashKey returns a fixed-length hex digest of parts, case-folded and trimmed.
// Parts are separated so ("ab","c") and ("a","bc") differ.
func HashKey(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
	}
	return hex.EncodeToString(h.Sum(nil))
}
