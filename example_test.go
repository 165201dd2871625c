package somkit_test

import (
	"fmt"

	"github.com/katalvlaran/somkit/bmu"
	"github.com/katalvlaran/somkit/distance"
	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/initializer"
	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/rescale"
	"github.com/katalvlaran/somkit/schedule"
)

// Example wires the primitives together: rescale the data, seed a 2×2 map
// from its principal components, find best-matching units, group samples per
// unit and read the learning rate for each epoch.
func Example() {
	raw, _ := matrix.NewArray([]float64{
		0, 130,
		1, 100,
		9, 170,
		10, 200,
		5, 120,
		4, 160,
	}, 6, 2)
	scaled, err := rescale.MinMax(raw, rescale.DefaultMin, rescale.DefaultMax, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	data, _ := scaled.Dense()

	dims, _ := grid.NewDims(2, 2, 2)
	weights, err := initializer.Weights(initializer.NamePCA, dims, data, initializer.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(weights.Rows(), weights.Cols())

	res, err := bmu.BestMatchDense(weights, data, distance.MustLookup("euclidean"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	hits, _ := bmu.Distribute(res.Indices, dims.Units())
	total := 0
	for _, n := range hits.Counts() {
		total += n
	}
	fmt.Println(len(hits), total)

	lr, _ := schedule.Linear(0.5, 3, 0.1)
	for epoch, rate := range lr.Values() {
		fmt.Printf("epoch %d: lr=%.1f\n", epoch, rate)
	}
	// Output:
	// 4 2
	// 4 6
	// epoch 0: lr=0.5
	// epoch 1: lr=0.3
	// epoch 2: lr=0.1
}
