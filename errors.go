package amulet

import "errors"

// ErrMagicNotHex indicates a magic character outside [0-9a-f]; such a
// character never appears in a digest, so no sigil or match could exist.
var ErrMagicNotHex = errors.New("amulet: magic character must be a lowercase hex digit")
