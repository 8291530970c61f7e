package domain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// MinWordlistSize is the smallest list that still gives a non-degenerate draw.
const MinWordlistSize = 2

// Wordlist is an ordered, deduplicated and immutable vocabulary.
// The zero value is an empty list and is rejected by the engine.
type Wordlist struct {
	source string
	words  []string
	index  map[string]struct{}
}

// NewWordlist copies words into a Wordlist, dropping later duplicates.
// Every word must be non-empty valid UTF-8 and at least MinWordlistSize
// unique words must remain.
func NewWordlist(source string, words []string) (Wordlist, error) {
	out := Wordlist{
		source: source,
		words:  make([]string, 0, len(words)),
		index:  make(map[string]struct{}, len(words)),
	}
	for i, w := range words {
		if w == "" {
			return Wordlist{}, fmt.Errorf("%w: entry %d is empty", ErrInvalidWordlist, i+1)
		}
		if !utf8.ValidString(w) {
			return Wordlist{}, fmt.Errorf("%w: entry %d is not valid UTF-8", ErrInvalidWordlist, i+1)
		}
		if _, dup := out.index[w]; dup {
			continue
		}
		out.index[w] = struct{}{}
		out.words = append(out.words, w)
	}
	if len(out.words) < MinWordlistSize {
		return Wordlist{}, fmt.Errorf("%w: %d unique words, need at least %d",
			ErrInvalidWordlist, len(out.words), MinWordlistSize)
	}
	return out, nil
}

// Source names where the list came from (a path or a built-in name).
func (w Wordlist) Source() string { return w.source }

// Len returns the number of unique words.
func (w Wordlist) Len() int { return len(w.words) }

// Word returns the i-th word in file order.
func (w Wordlist) Word(i int) string { return w.words[i] }

// Words returns a copy of the list.
func (w Wordlist) Words() []string {
	return append([]string(nil), w.words...)
}

// Contains reports whether word is in the list.
func (w Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// CollidesWith reports whether any word contains a character of sep. Words
// free of separator characters split back out of the joined text exactly,
// even when sep is several characters long. An empty separator never collides.
func (w Wordlist) CollidesWith(sep string) (string, bool) {
	if sep == "" {
		return "", false
	}
	for _, word := range w.words {
		if strings.ContainsAny(word, sep) {
			return word, true
		}
	}
	return "", false
}

// BitsPerWord is log2 of the list size.
func (w Wordlist) BitsPerWord() float64 {
	if len(w.words) == 0 {
		return 0
	}
	return math.Log2(float64(len(w.words)))
}
