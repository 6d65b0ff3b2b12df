package amulet

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/amulet/digest"
	"github.com/katalvlaran/amulet/grid"
	"github.com/katalvlaran/amulet/pattern"
	"github.com/katalvlaran/amulet/sigil"
	"github.com/katalvlaran/amulet/vocab"
)

// Deriver runs the full pipeline. It holds only read-only configuration and
// is safe for concurrent use.
type Deriver struct {
	vocab    *vocab.Vocabulary
	digest   *digest.Deriver
	detector *sigil.Detector
	matcher  *pattern.Matcher
	log      *zap.Logger
}

// New resolves opts over the defaults and validates the result.
//
// Errors: ErrMagicNotHex, digest.ErrMaskIndex, digest.ErrShortHash.
func New(opts ...Option) (*Deriver, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if !isHex(s.magic) {
		return nil, fmt.Errorf("New: magic %q: %w", s.magic, ErrMagicNotHex)
	}
	dd, err := digest.NewDeriver(s.mask, s.newHash)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	lib := s.library
	if lib == nil {
		lib = pattern.Default()
	}

	d := &Deriver{
		vocab:  s.vocab,
		digest: dd,
		detector: sigil.NewDetector(
			sigil.WithMagic(s.magic),
			sigil.WithMinSize(s.minSize),
			sigil.WithConnectivity(s.conn),
		),
		matcher: pattern.NewMatcher(lib,
			pattern.WithTarget(s.magic),
			pattern.WithBounds(s.bounds),
		),
		log: s.logger,
	}
	d.log.Debug("amulet deriver ready",
		zap.Int("vocabulary", s.vocab.Len()),
		zap.Ints("mask", s.mask.Slice()),
		zap.Int("hash_hex_len", dd.HexLen()),
		zap.String("magic", string(s.magic)),
		zap.Int("min_sigil_size", s.minSize),
		zap.Stringer("connectivity", s.conn),
		zap.Int("templates", lib.Len()),
		zap.Stringer("bounds", s.bounds),
	)

	return d, nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

var defaultDeriver = sync.OnceValue(func() *Deriver {
	d, err := New()
	if err != nil {
		panic(fmt.Sprintf("amulet: default deriver: %v", err))
	}
	return d
})

// Default returns the deriver built from all default constants.
func Default() *Deriver {
	return defaultDeriver()
}

// Derive runs the default pipeline on poem.
func Derive(poem string) *Amulet {
	return Default().Derive(poem)
}

// Derive normalizes poem, derives its digest and grid, and collects sigils
// and pattern matches. It never fails for any string input.
func (d *Deriver) Derive(poem string) *Amulet {
	normalized := d.vocab.Normalize(poem)
	dg := d.digest.Derive(normalized)
	g := grid.FromDigest(dg)

	a := &Amulet{
		Poem:       poem,
		Normalized: normalized,
		Digest:     dg,
		Grid:       g,
		Sigils:     d.detector.Detect(g),
		Matches:    d.matcher.Match(g),
	}
	if ce := d.log.Check(zap.DebugLevel, "derived amulet"); ce != nil {
		ce.Write(
			zap.Stringer("digest", dg),
			zap.Int("normalized_len", len(normalized)),
			zap.Int("sigils", len(a.Sigils)),
			zap.Int("matches", len(a.Matches)),
		)
	}

	return a
}

// Library returns the pattern library in use.
func (d *Deriver) Library() *pattern.Library {
	return d.matcher.Library()
}

// Logger returns the deriver's logger.
func (d *Deriver) Logger() *zap.Logger {
	return d.log
}
