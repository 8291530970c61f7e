package crypto

import (
	"sync"

	"golang.org/x/crypto/chacha20"

	"passphrases/internal/domain"
)

// StreamSource is a deterministic source over a ChaCha20 keystream. The same
// seed always yields the same sequence, which makes generated fixtures
// reproducible. It must never back a user-facing passphrase.
type StreamSource struct {
	*ReaderSource
}

type keystream struct {
	mu sync.Mutex
	c  *chacha20.Cipher
}

// NewStreamSource seeds a keystream with seed and an all-zero nonce.
func NewStreamSource(seed [32]byte) (*StreamSource, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &StreamSource{ReaderSource: NewReaderSource(&keystream{c: c})}, nil
}

// Read fills p with keystream bytes. Calls are serialised so concurrent
// draws never share cipher state.
func (k *keystream) Read(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}

var _ domain.RandomSource = (*StreamSource)(nil)
