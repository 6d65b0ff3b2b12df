package vocab

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultAlphabet is the alphabet poems are reduced to.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ,:—'? \n"

// ErrEmptyVocabulary indicates an alphabet with no runes.
var ErrEmptyVocabulary = errors.New("vocab: alphabet must contain at least one rune")

// Vocabulary is an immutable rune set used to filter upper-cased text.
// It is safe for concurrent use.
type Vocabulary struct {
	alphabet string
	set      map[rune]struct{}
}

var defaultVocabulary = MustNew(DefaultAlphabet)

// Default returns the shared vocabulary built from DefaultAlphabet.
func Default() *Vocabulary {
	return defaultVocabulary
}

// New builds a Vocabulary from every distinct rune of alphabet, in order of
// first appearance.
func New(alphabet string) (*Vocabulary, error) {
	if alphabet == "" {
		return nil, ErrEmptyVocabulary
	}
	set := make(map[rune]struct{}, len(alphabet))
	var canon strings.Builder
	for _, r := range alphabet {
		if _, dup := set[r]; dup {
			continue
		}
		set[r] = struct{}{}
		canon.WriteRune(r)
	}

	return &Vocabulary{alphabet: canon.String(), set: set}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// constants.
func MustNew(alphabet string) *Vocabulary {
	v, err := New(alphabet)
	if err != nil {
		panic(fmt.Sprintf("vocab: MustNew(%q): %v", alphabet, err))
	}

	return v
}

// Normalize upper-cases s and removes every rune outside the alphabet.
// Empty input yields the empty string. Normalizing an already normalized
// string returns it unchanged.
func (v *Vocabulary) Normalize(s string) string {
	// cases.Caser keeps state between calls, so each call gets its own.
	upper := cases.Upper(language.Und).String(s)

	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if _, ok := v.set[r]; ok {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Contains reports whether r belongs to the alphabet.
func (v *Vocabulary) Contains(r rune) bool {
	_, ok := v.set[r]
	return ok
}

// Len returns the number of distinct runes in the alphabet.
func (v *Vocabulary) Len() int {
	return len(v.set)
}

// String returns the alphabet with duplicates removed.
func (v *Vocabulary) String() string {
	return v.alphabet
}
