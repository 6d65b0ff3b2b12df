// Package digest derives the 25-character amulet digest from normalized text.
//
// What:
//
//   - Two-stage hashing: first = HASH(text), second = HASH(text ++ hex(first)).
//     Poems are usually shorter than the hash block, so the second pass mixes
//     the first digest back in.
//   - A fixed index Mask selects 25 characters of hex(second).
//
// The default hash is SHA3-512 (128 hex digits) and the default mask is the
// identity 0..24 with position 21 pointing at 12. That irregular entry is
// load-bearing: changing it changes every amulet ever derived.
//
// Errors (all configuration errors, raised by constructors):
//
//   - ErrMaskLength: mask does not have exactly Size entries.
//   - ErrMaskIndex:  mask holds a negative index.
//   - ErrShortHash:  hash hex output too short for the largest mask index.
//   - ErrNilHash:    no hash constructor supplied.
//   - ErrDigestLength / ErrDigestChar: Parse received a malformed digest.
package digest
