package grid

// Mask is a rectangular 2D boolean array, row-major: m[y][x].
// "On" cells mark membership in a set of interest, e.g. cells below a
// cutoff height or cells of one labeled cluster.
type Mask [][]bool

// Dims reports the mask dimensions as (rows, cols).
// A nil or empty mask reports (0, 0).
// Complexity: O(1).
func (m Mask) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// Check validates that the mask is non-empty and rectangular.
// Returns ErrEmptyGrid or ErrNonRectangular on violation.
// Complexity: O(R).
func (m Mask) Check() error {
	return checkRect(m)
}

// Count reports the number of "on" cells.
// Complexity: O(R×C).
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, on := range row {
			if on {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep copy of the mask.
// Complexity: O(R×C) time and memory.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	for y, row := range m {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}

	return out
}
