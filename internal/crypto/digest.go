package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"passphrases/internal/domain"
)

// WordlistDigest returns the hex BLAKE2b-256 digest of the list in its
// canonical file form: each word followed by a newline, in order.
func WordlistDigest(wl domain.Wordlist) string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for i := 0; i < wl.Len(); i++ {
		h.Write([]byte(wl.Word(i)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a short hex fingerprint of a wordlist digest.
//
// It truncates to 10 bytes (20 hex chars).
func Fingerprint(digest string) string {
	if len(digest) > 20 {
		return digest[:20]
	}
	return digest
}
