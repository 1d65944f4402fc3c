package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field is a rectangular 2D array of cell heights, row-major: f[y][x].
// Treat a Field as read-only once constructed; every operation in this
// module allocates fresh output rather than mutating its input.
type Field [][]float64

// NewField constructs a Field from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewField(values [][]float64) (Field, error) {
	if err := checkRect(values); err != nil {
		return nil, err
	}
	f := make(Field, len(values))
	for y, row := range values {
		f[y] = make([]float64, len(row))
		copy(f[y], row)
	}

	return f, nil
}

// FromDense constructs a Field from a gonum *mat.Dense, copying its rows.
// Complexity: O(R×C) time and memory.
func FromDense(d *mat.Dense) Field {
	r, c := d.Dims()
	f := make(Field, r)
	for y := 0; y < r; y++ {
		f[y] = make([]float64, c)
		mat.Row(f[y], y, d)
	}

	return f
}

// Dense exports the Field as a gonum *mat.Dense, copying its rows.
// The Field must be valid (see Check).
// Complexity: O(R×C) time and memory.
func (f Field) Dense() *mat.Dense {
	rows, cols := f.Dims()
	d := mat.NewDense(rows, cols, nil)
	for y, row := range f {
		d.SetRow(y, row)
	}

	return d
}

// Dims reports the field dimensions as (rows, cols).
// A nil or empty field reports (0, 0).
// Complexity: O(1).
func (f Field) Dims() (rows, cols int) {
	if len(f) == 0 {
		return 0, 0
	}

	return len(f), len(f[0])
}

// Check validates that the field is non-empty and rectangular.
// Returns ErrEmptyGrid or ErrNonRectangular on violation.
// Complexity: O(R).
func (f Field) Check() error {
	return checkRect(f)
}

// MinMax reports the minimum and maximum cell height.
// The Field must be valid (see Check).
// Complexity: O(R×C).
func (f Field) MinMax() (lo, hi float64) {
	lo, hi = floats.Min(f[0]), floats.Max(f[0])
	for _, row := range f[1:] {
		if v := floats.Min(row); v < lo {
			lo = v
		}
		if v := floats.Max(row); v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Below builds the Mask of cells with height ≤ threshold.
// Complexity: O(R×C) time and memory.
func (f Field) Below(threshold float64) Mask {
	m := make(Mask, len(f))
	for y, row := range f {
		m[y] = make([]bool, len(row))
		for x, v := range row {
			m[y][x] = v <= threshold
		}
	}

	return m
}
