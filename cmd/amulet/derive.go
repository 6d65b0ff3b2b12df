package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive [text...]",
		Short: "Derive the amulet of one poem",
		Long: `Derives one amulet. Arguments are joined with single spaces; with no
arguments the poem is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deriver()
			if err != nil {
				return err
			}
			poem := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				poem = string(data)
			}

			am := d.Derive(poem)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, am)
			if !am.HasSigils() {
				fmt.Fprintln(out, "no sigils")
			}
			return nil
		},
	}
}
