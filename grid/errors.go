package grid

import "errors"

// Sentinel errors for grid shape validation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// checkRect validates that g is non-empty and rectangular.
// Complexity: O(R).
func checkRect[T any](g [][]T) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for _, row := range g[1:] {
		if len(row) != w {
			return ErrNonRectangular
		}
	}
	return nil
}
