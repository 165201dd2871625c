package grid

import (
	"fmt"
	"iter"
)

// Dims describes a SOM: Rows×Cols units, each holding a weight vector of
// Features values.
type Dims struct {
	Rows     int // number of grid rows
	Cols     int // number of grid columns
	Features int // weight vector length
}

// NewDims returns a validated Dims.
func NewDims(rows, cols, features int) (Dims, error) {
	d := Dims{Rows: rows, Cols: cols, Features: features}
	if err := d.Validate(); err != nil {
		return Dims{}, err
	}

	return d, nil
}

// Validate reports ErrBadDims when any extent is not positive.
func (d Dims) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 || d.Features <= 0 {
		return fmt.Errorf("%v: %w", d, ErrBadDims)
	}

	return nil
}

// Units returns Rows*Cols.
func (d Dims) Units() int { return d.Rows * d.Cols }

// Iter enumerates the unit cells of d in row-major order.
func (d Dims) Iter() iter.Seq2[int, int] { return Iter(d.Rows, d.Cols) }

// String implements fmt.Stringer.
func (d Dims) String() string {
	return fmt.Sprintf("Dims(%dx%d, %d features)", d.Rows, d.Cols, d.Features)
}
