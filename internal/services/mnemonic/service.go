package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"passphrases/internal/crypto"
	"passphrases/internal/domain"
)

// DefaultBits gives a 12-word phrase.
const DefaultBits = 128

// Service wraps go-bip39. Entropy comes from crypto/rand inside the library.
type Service struct{}

// New returns a mnemonic service.
func New() *Service { return &Service{} }

// Generate returns a mnemonic carrying bits of entropy. bits must be a
// multiple of 32 between 128 and 256. The checksum word bits are derived and
// do not count towards EntropyBits.
func (s *Service) Generate(bits int) (domain.Passphrase, error) {
	if bits < 128 || bits > 256 || bits%32 != 0 {
		return domain.Passphrase{}, fmt.Errorf("%w: mnemonic entropy %d must be a multiple of 32 in [128, 256]",
			domain.ErrInvalidRequest, bits)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return domain.Passphrase{}, fmt.Errorf("%w: %v", domain.ErrRandomUnavailable, err)
	}
	defer crypto.Wipe(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return domain.Passphrase{}, err
	}
	return domain.Passphrase{
		Words:       strings.Fields(phrase),
		Text:        phrase,
		EntropyBits: float64(bits),
	}, nil
}

// Valid reports whether phrase is a well-formed mnemonic with a correct checksum.
func (s *Service) Valid(phrase string) bool {
	return bip39.IsMnemonicValid(strings.Join(strings.Fields(phrase), " "))
}

var _ domain.MnemonicService = (*Service)(nil)
