package amulet_test

import (
	"fmt"

	"github.com/katalvlaran/amulet"
)

// ExampleDerive derives an amulet with one sigil and one staff.
func ExampleDerive() {
	a := amulet.Derive("poem EFI")
	fmt.Print(a)
	// Output:
	// 88371
	// 588ae
	// 28e47
	// dbd55
	// fed00
	// sigil size=5 [{0 0} {0 1} {1 1} {2 1} {1 2}]
	// pattern staff@(0,0)
}
