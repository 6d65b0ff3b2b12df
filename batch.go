package amulet

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DeriveAll derives every poem using at most workers goroutines
// (GOMAXPROCS when workers <= 0). Results keep input order. The only error
// is ctx's, in which case the partial results are discarded.
func (d *Deriver) DeriveAll(ctx context.Context, poems []string, workers int) ([]*Amulet, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	out := make([]*Amulet, len(poems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, poem := range poems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = d.Derive(poem)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		d.log.Warn("batch derivation aborted", zap.Int("poems", len(poems)), zap.Error(err))
		return nil, err
	}

	sum := Summarize(out)
	d.log.Info("batch derived",
		zap.Int("poems", sum.Poems),
		zap.Int("with_sigils", sum.WithSigils),
		zap.Int("with_matches", sum.WithMatches),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// Summary counts results of a batch.
type Summary struct {
	Poems       int
	WithSigils  int
	WithMatches int
	Sigils      int
	Matches     int
}

// Summarize tallies amulets. Nil entries are skipped.
func Summarize(amulets []*Amulet) Summary {
	var s Summary
	for _, a := range amulets {
		if a == nil {
			continue
		}
		s.Poems++
		s.Sigils += len(a.Sigils)
		s.Matches += len(a.Matches)
		if a.HasSigils() {
			s.WithSigils++
		}
		if a.HasMatches() {
			s.WithMatches++
		}
	}

	return s
}

// Amulets returns the results that carry at least one sigil, in order.
func Amulets(results []*Amulet) []*Amulet {
	var out []*Amulet
	for _, a := range results {
		if a != nil && a.HasSigils() {
			out = append(out, a)
		}
	}

	return out
}
