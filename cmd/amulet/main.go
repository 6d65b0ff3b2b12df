// Command amulet derives amulets from poems.
//
//	amulet derive "Once upon a midnight dreary"
//	amulet batch poems.json --workers 8
//	amulet patterns --config amulet.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
