package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPatternsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the pattern library",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deriver()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, t := range d.Library().Templates() {
				fmt.Fprintf(out, "%d: %s\n", i, t)
			}
			return nil
		},
	}
}
