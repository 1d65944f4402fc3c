package percolation

import "github.com/katalvlaran/perc2d/grid"

// IsPercolating reports whether the on cells of mask span the grid along
// axis. The mask is expected to hold a single connected cluster (as
// produced by label.ClusterMask); for such a cluster, touching every line
// perpendicular to the axis is equivalent to reaching both opposite edges.
//
// With periodic=true the cluster must additionally touch itself across the
// wrap boundary: some position where both boundary slices of the tested
// axis are on (first and last columns for AxisX, first and last rows for
// AxisY).
//
// The axis is validated unconditionally and ErrBadAxis returned for any
// value outside {AxisX, AxisY}, whether or not periodic is set. A bad mask
// shape yields grid.ErrEmptyGrid or grid.ErrNonRectangular.
//
// Pure function of its inputs; the mask is never mutated.
// Complexity: O(R×C) time, O(1) memory.
func IsPercolating(mask grid.Mask, axis Axis, periodic bool) (bool, error) {
	if err := mask.Check(); err != nil {
		return false, err
	}
	if axis != AxisX && axis != AxisY {
		return false, ErrBadAxis
	}

	rows, cols := mask.Dims()
	if axis == AxisX {
		// Spanning: every column holds at least one on cell.
		for x := 0; x < cols; x++ {
			if !columnAny(mask, x, rows) {
				return false, nil
			}
		}
		if periodic && !columnsTouch(mask, 0, cols-1, rows) {
			return false, nil
		}

		return true, nil
	}

	// AxisY. Spanning: every row holds at least one on cell.
	for y := 0; y < rows; y++ {
		if !rowAny(mask[y]) {
			return false, nil
		}
	}
	if periodic && !rowsTouch(mask[0], mask[rows-1]) {
		return false, nil
	}

	return true, nil
}

// columnAny reports whether column x holds at least one on cell.
func columnAny(mask grid.Mask, x, rows int) bool {
	for y := 0; y < rows; y++ {
		if mask[y][x] {
			return true
		}
	}

	return false
}

// rowAny reports whether the row holds at least one on cell.
func rowAny(row []bool) bool {
	for _, on := range row {
		if on {
			return true
		}
	}

	return false
}

// columnsTouch reports whether columns a and b are both on at some row.
func columnsTouch(mask grid.Mask, a, b, rows int) bool {
	for y := 0; y < rows; y++ {
		if mask[y][a] && mask[y][b] {
			return true
		}
	}

	return false
}

// rowsTouch reports whether rows a and b are both on at some column.
func rowsTouch(a, b []bool) bool {
	for x := range a {
		if a[x] && b[x] {
			return true
		}
	}

	return false
}
