package amulet

import (
	"fmt"
	"hash"

	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/amulet/digest"
	"github.com/katalvlaran/amulet/pattern"
	"github.com/katalvlaran/amulet/sigil"
	"github.com/katalvlaran/amulet/vocab"
)

// Option customizes a Deriver. Option constructors panic on nil or
// meaningless arguments; New reports configuration conflicts as errors.
type Option func(*settings)

// settings collects every knob before New resolves them.
type settings struct {
	vocab   *vocab.Vocabulary
	mask    digest.Mask
	newHash func() hash.Hash
	magic   byte
	minSize int
	conn    sigil.Connectivity
	library *pattern.Library
	bounds  pattern.Bounds
	logger  *zap.Logger
}

func defaultSettings() settings {
	return settings{
		vocab:   vocab.Default(),
		mask:    digest.DefaultMask,
		newHash: sha3.New512,
		magic:   sigil.DefaultMagic,
		minSize: sigil.DefaultMinSize,
		conn:    sigil.Conn4,
		library: nil, // resolved to pattern.Default() lazily
		bounds:  pattern.BoundsStrict,
		logger:  zap.NewNop(),
	}
}

// WithVocabulary sets the normalization alphabet.
func WithVocabulary(v *vocab.Vocabulary) Option {
	if v == nil {
		panic("amulet: WithVocabulary(nil)")
	}
	return func(s *settings) {
		s.vocab = v
	}
}

// WithMask sets the digest index mask.
func WithMask(m digest.Mask) Option {
	return func(s *settings) {
		s.mask = m
	}
}

// WithHash sets the hash constructor used by both digest stages.
func WithHash(newHash func() hash.Hash) Option {
	if newHash == nil {
		panic("amulet: WithHash(nil)")
	}
	return func(s *settings) {
		s.newHash = newHash
	}
}

// WithMagic sets the sigil character, also used as the match target.
func WithMagic(ch byte) Option {
	return func(s *settings) {
		s.magic = ch
	}
}

// WithMinSigilSize sets the exclusive sigil size threshold.
func WithMinSigilSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("amulet: WithMinSigilSize(%d)", n))
	}
	return func(s *settings) {
		s.minSize = n
	}
}

// WithConnectivity selects the sigil neighbourhood.
func WithConnectivity(c sigil.Connectivity) Option {
	if c != sigil.Conn4 && c != sigil.Conn8 {
		panic(fmt.Sprintf("amulet: WithConnectivity(%d)", int(c)))
	}
	return func(s *settings) {
		s.conn = c
	}
}

// WithLibrary replaces the default pattern library.
func WithLibrary(lib *pattern.Library) Option {
	if lib == nil {
		panic("amulet: WithLibrary(nil)")
	}
	return func(s *settings) {
		s.library = lib
	}
}

// WithBounds selects the pattern offset scan policy.
func WithBounds(b pattern.Bounds) Option {
	if b != pattern.BoundsStrict && b != pattern.BoundsInclusive {
		panic(fmt.Sprintf("amulet: WithBounds(%d)", int(b)))
	}
	return func(s *settings) {
		s.bounds = b
	}
}

// WithLogger attaches a zap logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("amulet: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}
