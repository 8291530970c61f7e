package passphrase

import (
	"fmt"
	"math"
	"strings"

	"passphrases/internal/domain"
)

// MaxWords bounds a single request.
const MaxWords = 1024

// Service draws passphrases from a random source.
type Service struct {
	rnd domain.RandomSource
}

// New returns a passphrase service drawing from rnd.
func New(rnd domain.RandomSource) *Service { return &Service{rnd: rnd} }

// Generate draws req.Words words (or enough words for req.EntropyBits) and
// joins them with req.Separator. A random source failure aborts the whole
// generation; partial passphrases are never returned.
func (s *Service) Generate(req domain.Request) (domain.Passphrase, error) {
	size := req.Wordlist.Len()
	if size < domain.MinWordlistSize {
		return domain.Passphrase{}, fmt.Errorf("%w: wordlist has %d words, need at least %d",
			domain.ErrInvalidRequest, size, domain.MinWordlistSize)
	}
	if req.Separator == "" {
		return domain.Passphrase{}, fmt.Errorf("%w: separator must not be empty", domain.ErrInvalidRequest)
	}
	n, err := resolveWords(req, size)
	if err != nil {
		return domain.Passphrase{}, err
	}
	if word, ok := req.Wordlist.CollidesWith(req.Separator); ok {
		return domain.Passphrase{}, fmt.Errorf("%w: word %q contains separator %q",
			domain.ErrInvalidWordlist, word, req.Separator)
	}

	words := make([]string, n)
	for i := range words {
		idx, err := s.rnd.UniformInt(size)
		if err != nil {
			return domain.Passphrase{}, fmt.Errorf("drawing word %d: %w", i+1, err)
		}
		words[i] = req.Wordlist.Word(idx)
	}

	return domain.Passphrase{
		Words:       words,
		Text:        strings.Join(words, req.Separator),
		EntropyBits: Entropy(n, size),
	}, nil
}

// GenerateN returns count independent passphrases for req.
func (s *Service) GenerateN(req domain.Request, count int) ([]domain.Passphrase, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d must be at least 1", domain.ErrInvalidRequest, count)
	}
	out := make([]domain.Passphrase, 0, count)
	for i := 0; i < count; i++ {
		p, err := s.Generate(req)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func resolveWords(req domain.Request, size int) (int, error) {
	n := req.Words
	if n == 0 && req.EntropyBits > 0 {
		n = WordsForEntropy(req.EntropyBits, size)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: word count %d must be at least 1", domain.ErrInvalidRequest, n)
	}
	if n > MaxWords {
		return 0, fmt.Errorf("%w: word count %d exceeds %d", domain.ErrInvalidRequest, n, MaxWords)
	}
	return n, nil
}

// Entropy is words * log2(size).
func Entropy(words, size int) float64 {
	return float64(words) * math.Log2(float64(size))
}

// WordsForEntropy returns the smallest word count reaching bits with a list
// of size words.
func WordsForEntropy(bits float64, size int) int {
	if bits <= 0 || math.IsNaN(bits) || size < domain.MinWordlistSize {
		return 0
	}
	x := bits / math.Log2(float64(size))
	if x > MaxWords {
		return MaxWords + 1
	}
	n := int(math.Ceil(x))
	// Guard against ceil rounding up an exact multiple.
	if n > 1 && Entropy(n-1, size) >= bits {
		n--
	}
	return n
}

var _ domain.PassphraseService = (*Service)(nil)
