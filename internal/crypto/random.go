package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"passphrases/internal/domain"
)

// ReaderSource draws uniform integers from an io.Reader that yields
// cryptographically secure bytes.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r. The caller guarantees r is a secure generator.
func NewReaderSource(r io.Reader) *ReaderSource { return &ReaderSource{r: r} }

// NewSystemSource returns a source backed by the operating system CSPRNG.
func NewSystemSource() *ReaderSource { return NewReaderSource(rand.Reader) }

// UniformInt returns a uniformly distributed value in [0, n).
//
// Raw draws are 64-bit. With rem = 2^64 mod n, draws at or above 2^64-rem
// fall in the biased remainder and are redrawn; the rest reduce by modulo
// without bias.
func (s *ReaderSource) UniformInt(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: upper bound %d must be positive", domain.ErrInvalidRequest, n)
	}
	if n == 1 {
		return 0, nil
	}
	bound := uint64(n)
	rem := (math.MaxUint64%bound + 1) % bound

	var buf [8]byte
	defer Wipe(buf[:])
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", domain.ErrRandomUnavailable, err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if rem != 0 && v > math.MaxUint64-rem {
			continue
		}
		return int(v % bound), nil
	}
}

var _ domain.RandomSource = (*ReaderSource)(nil)
