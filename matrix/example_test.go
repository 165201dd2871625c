package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/somkit/matrix"
)

// ExampleCenterColumns subtracts column means from a small data set.
func ExampleCenterColumns() {
	x, _ := matrix.NewDenseFrom([][]float64{{1, 10}, {3, 20}})
	xc, means, _ := matrix.CenterColumns(x)
	fmt.Println(means)
	fmt.Print(xc)
	// Output:
	// [2 15]
	// [-1, -5]
	// [1, 5]
}

// ExampleArray_AtLeast2D promotes a single sample to a one-row batch.
func ExampleArray_AtLeast2D() {
	v, _ := matrix.NewArray([]float64{0.5, 1.5})
	fmt.Println(v.Shape(), v.AtLeast2D().Shape())
	// Output: [2] [1 2]
}
