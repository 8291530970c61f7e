// Package passphrase generates word-based passphrases.
//
// Each word is drawn independently and with replacement from a Wordlist via
// a domain.RandomSource, so every position contributes log2(size) bits and
// the reported entropy is exactly words * log2(size).
package passphrase
