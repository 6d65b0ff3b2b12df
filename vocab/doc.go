// Package vocab normalizes raw poem text into the canonical form hashed by
// the digest package.
//
// What:
//
//   - Vocabulary holds a fixed set of runes (the alphabet).
//   - Normalize upper-cases with a locale-independent, full Unicode mapping
//     and then drops every rune that is not in the alphabet.
//
// The default alphabet is A–Z plus `,` `:` `—` `'` `?`, space and newline
// (33 runes). Digits are deliberately absent, so "POEM 1" and "POEM 2"
// normalize to the same text.
//
// Complexity:
//
//   - Normalize: O(n) time and memory in the length of the input.
//
// Errors:
//
//   - ErrEmptyVocabulary: New was called with an empty alphabet.
package vocab
