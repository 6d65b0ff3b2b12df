package amulet_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/amulet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// word renders i in bijective base 26 using capital letters.
func word(i int) string {
	s := ""
	for {
		s = string(rune('A'+i%26)) + s
		i /= 26
		if i == 0 {
			return s
		}
	}
}

func poems(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("poem %s", word(i))
	}
	return out
}

// TestDeriveAll_MatchesSequential checks order and content against Derive.
func TestDeriveAll_MatchesSequential(t *testing.T) {
	d := amulet.Default()
	in := poems(500)
	for _, workers := range []int{0, 1, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := d.DeriveAll(context.Background(), in, workers)
			require.NoError(t, err)
			require.Len(t, got, len(in))
			for i, a := range got {
				want := d.Derive(in[i])
				require.Equal(t, want.Digest, a.Digest, "poem %q", in[i])
				require.Equal(t, want.Sigils, a.Sigils)
				require.Equal(t, len(want.Matches), len(a.Matches))
			}
		})
	}
}

// TestDeriveAll_Canceled returns the context error and no results.
func TestDeriveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := amulet.Default().DeriveAll(ctx, poems(50), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

// TestDeriveAll_Empty handles an empty batch.
func TestDeriveAll_Empty(t *testing.T) {
	got, err := amulet.Default().DeriveAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestDeriveAll_Logs emits one info summary.
func TestDeriveAll_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d, err := amulet.New(amulet.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = d.DeriveAll(context.Background(), []string{"poem EFI", "Hello, World!"}, 2)
	require.NoError(t, err)
	entries := logs.FilterMessage("batch derived").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["poems"])
	assert.EqualValues(t, 1, fields["with_sigils"])
}

// TestSummarize tallies a hand-built batch.
func TestSummarize(t *testing.T) {
	d := amulet.Default()
	batch := []*amulet.Amulet{
		d.Derive("poem EFI"),
		d.Derive("poem RSO"),
		d.Derive("Hello, World!"),
		nil,
	}
	assert.Equal(t, amulet.Summary{
		Poems:       3,
		WithSigils:  2,
		WithMatches: 2,
		Sigils:      2,
		Matches:     4,
	}, amulet.Summarize(batch))

	kept := amulet.Amulets(batch)
	require.Len(t, kept, 2)
	assert.Equal(t, "poem EFI", kept[0].Poem)
	assert.Equal(t, "poem RSO", kept[1].Poem)
}
