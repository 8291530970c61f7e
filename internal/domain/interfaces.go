package domain

// RandomSource supplies uniformly distributed integers from a cryptographically
// secure generator.
type RandomSource interface {
	// UniformInt returns a value in [0, n). It fails with ErrRandomUnavailable
	// when the underlying generator cannot be read.
	UniformInt(n int) (int, error)
}

// PassphraseService turns requests into passphrases.
type PassphraseService interface {
	Generate(req Request) (Passphrase, error)
	GenerateN(req Request, n int) ([]Passphrase, error)
}

// MnemonicService produces BIP-39 recovery phrases.
type MnemonicService interface {
	Generate(bits int) (Passphrase, error)
	Valid(phrase string) bool
}
