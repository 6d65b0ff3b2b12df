package digest

import (
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Digest is the masked 25-character lowercase hex string, stored as bytes.
type Digest [Size]byte

// String returns the digest as text.
func (d Digest) String() string {
	return string(d[:])
}

// Parse rebuilds a Digest from its textual form.
func Parse(s string) (Digest, error) {
	var d Digest
	if len(s) != Size {
		return d, fmt.Errorf("Parse: got %d characters: %w", len(s), ErrDigestLength)
	}
	for i := 0; i < Size; i++ {
		c := s[i]
		if !isHex(c) {
			return d, fmt.Errorf("Parse: position %d is %q: %w", i, c, ErrDigestChar)
		}
		d[i] = c
	}

	return d, nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// Deriver turns normalized text into a Digest. It holds no mutable state and
// is safe for concurrent use.
type Deriver struct {
	mask    Mask
	newHash func() hash.Hash
	hexLen  int
}

var defaultDeriver = sync.OnceValue(func() *Deriver {
	d, err := NewDeriver(DefaultMask, sha3.New512)
	if err != nil {
		panic(fmt.Sprintf("digest: default deriver: %v", err))
	}
	return d
})

// Default returns the SHA3-512 deriver with DefaultMask.
func Default() *Deriver {
	return defaultDeriver()
}

// NewDeriver checks that newHash produces enough hex digits for every mask
// index and returns a Deriver.
func NewDeriver(mask Mask, newHash func() hash.Hash) (*Deriver, error) {
	if newHash == nil {
		return nil, ErrNilHash
	}
	for i, idx := range mask {
		if idx < 0 {
			return nil, fmt.Errorf("NewDeriver: entry %d is %d: %w", i, idx, ErrMaskIndex)
		}
	}
	hexLen := 2 * newHash().Size()
	if hi := mask.Max(); hi >= hexLen {
		return nil, fmt.Errorf("NewDeriver: index %d needs %d hex digits, hash gives %d: %w",
			hi, hi+1, hexLen, ErrShortHash)
	}

	return &Deriver{mask: mask, newHash: newHash, hexLen: hexLen}, nil
}

// Mask returns the deriver's index mask.
func (d *Deriver) Mask() Mask {
	return d.mask
}

// HexLen returns the number of hex digits produced by each hash stage.
func (d *Deriver) HexLen() int {
	return d.hexLen
}

// Stages returns both hex-encoded hash stages for normalized.
func (d *Deriver) Stages(normalized string) (first, second string) {
	first = d.hexSum(normalized)
	second = d.hexSum(normalized + first)
	return first, second
}

// Derive computes the digest of normalized. Empty input is valid.
func (d *Deriver) Derive(normalized string) Digest {
	_, second := d.Stages(normalized)

	var out Digest
	for i, idx := range d.mask {
		out[i] = second[idx]
	}

	return out
}

func (d *Deriver) hexSum(s string) string {
	h := d.newHash()
	_, _ = h.Write([]byte(s)) // hash.Hash.Write never returns an error
	return hex.EncodeToString(h.Sum(nil))
}
