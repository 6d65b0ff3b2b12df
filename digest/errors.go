package digest

import "errors"

var (
	// ErrMaskLength indicates a mask with other than Size entries.
	ErrMaskLength = errors.New("digest: mask must have exactly 25 entries")
	// ErrMaskIndex indicates a negative mask index.
	ErrMaskIndex = errors.New("digest: mask index out of range")
	// ErrShortHash indicates the hash output cannot satisfy the mask.
	ErrShortHash = errors.New("digest: hash output shorter than mask requires")
	// ErrNilHash indicates a missing hash constructor.
	ErrNilHash = errors.New("digest: hash constructor is nil")
	// ErrDigestLength indicates a digest string of the wrong length.
	ErrDigestLength = errors.New("digest: digest must be exactly 25 characters")
	// ErrDigestChar indicates a digest character outside [0-9a-f].
	ErrDigestChar = errors.New("digest: digest characters must be lowercase hex")
)
