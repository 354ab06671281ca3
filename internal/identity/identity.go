// Package identity gives demo parties a short, stable fingerprint for log
// lines. It is never used in any signing computation.
package identity

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short blake2b-256 hex digest identifying a public
// key or other public material, the same hash construction
// crypto/schemes.go uses for its IdentityHashFunc.
func Fingerprint(public []byte) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(public)
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
