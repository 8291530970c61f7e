package domain

import "fmt"

// Request asks for one passphrase drawn from Wordlist.
//
// Words is the number of words to draw. When Words is zero and EntropyBits is
// positive, the engine picks the smallest word count reaching EntropyBits.
type Request struct {
	Wordlist    Wordlist
	Words       int
	Separator   string
	EntropyBits float64
}

// Passphrase is produced once per generation call and owned by the caller.
type Passphrase struct {
	Words       []string `json:"words" yaml:"words"`
	Text        string   `json:"passphrase" yaml:"passphrase"`
	EntropyBits float64  `json:"entropy_bits" yaml:"entropy_bits"`
}

// String redacts the text so passphrases do not leak through %v or log fields.
func (p Passphrase) String() string {
	return fmt.Sprintf("[passphrase: %d words, %.2f bits]", len(p.Words), p.EntropyBits)
}
