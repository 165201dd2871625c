package initializer_test

import (
	"fmt"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/initializer"
)

// ExampleLookup builds histogram weights for a 2×3 map and checks that each
// unit holds a probability distribution.
func ExampleLookup() {
	dims, _ := grid.NewDims(2, 3, 4)
	ini, err := initializer.Lookup("hist", initializer.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, err := ini.Init(dims, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for u := 0; u < w.Rows(); u++ {
		var s float64
		for _, v := range w.RawRowView(u) {
			s += v
		}
		fmt.Printf("%.6f ", s)
	}
	fmt.Println()
	// Output: 1.000000 1.000000 1.000000 1.000000 1.000000 1.000000
}
