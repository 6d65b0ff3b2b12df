package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amulet"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Derive every poem of a JSON array and show one amulet",
		Long: `Reads a JSON array of strings, derives all of them, prints the timing
and how many carry at least one sigil, then prints one of those at random.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poems, err := readPoems(args[0])
			if err != nil {
				return err
			}
			d, err := a.deriver()
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := d.DeriveAll(cmd.Context(), poems, workers)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			out := cmd.OutOrStdout()
			perPoem := 0.0
			if len(poems) > 0 {
				perPoem = float64(elapsed.Microseconds()) / 1000 / float64(len(poems))
			}
			fmt.Fprintf(out, "Took %.3f seconds total, ~%.4f ms per poem\n", elapsed.Seconds(), perPoem)

			found := amulet.Amulets(results)
			fmt.Fprintf(out, "From %d poems, found %d amulets.\n", len(poems), len(found))
			if len(found) == 0 {
				return nil
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			pick := found[rng.IntN(len(found))]
			fmt.Fprintln(out, "Here's one:")
			fmt.Fprintf(out, "%q\n%s", pick.Poem, pick)
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for picking the sample (0 = time based)")

	return cmd
}

// readPoems decodes a JSON array of strings.
func readPoems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read poems: %w", err)
	}
	var poems []string
	if err := json.Unmarshal(data, &poems); err != nil {
		return nil, fmt.Errorf("decode poems %s: %w", path, err)
	}

	return poems, nil
}
