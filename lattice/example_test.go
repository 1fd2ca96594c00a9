package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/ternary/lattice"
	"github.com/katalvlaran/ternary/words"
)

// ExampleQuasiParallelogram classifies the diasem scale LmLsLmLsL.
func ExampleQuasiParallelogram() {
	diasem := words.Word{0, 1, 0, 2, 0, 1, 0, 2, 0}
	d, ok := lattice.QuasiParallelogram(diasem)
	fmt.Println(ok, d.Rows, d.FullRow, d.FirstRow, d.LastRow)
	// Output:
	// true 2 5 5 4
}
