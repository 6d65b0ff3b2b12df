package digest

import "fmt"

// Size is the number of characters in a Digest.
const Size = 25

// Mask maps each digest position to an index in the hex-encoded hash.
// Duplicate indices are permitted.
type Mask [Size]int

// DefaultMask is the identity mapping with position 21 reading index 12.
var DefaultMask = Mask{
	0, 1, 2, 3, 4,
	5, 6, 7, 8, 9,
	10, 11, 12, 13, 14,
	15, 16, 17, 18, 19,
	20, 12, 22, 23, 24,
}

// NewMask validates indices and copies them into a Mask.
// Upper bounds depend on the hash and are checked by NewDeriver.
func NewMask(indices []int) (Mask, error) {
	var m Mask
	if len(indices) != Size {
		return m, fmt.Errorf("NewMask: got %d entries: %w", len(indices), ErrMaskLength)
	}
	for i, idx := range indices {
		if idx < 0 {
			return m, fmt.Errorf("NewMask: entry %d is %d: %w", i, idx, ErrMaskIndex)
		}
		m[i] = idx
	}

	return m, nil
}

// Max returns the largest index in the mask.
func (m Mask) Max() int {
	hi := m[0]
	for _, idx := range m[1:] {
		if idx > hi {
			hi = idx
		}
	}

	return hi
}

// Slice returns the mask entries as a new slice.
func (m Mask) Slice() []int {
	out := make([]int, Size)
	copy(out, m[:])
	return out
}
