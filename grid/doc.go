// Package grid holds the shared data model for 2D percolation analysis:
// real-valued height fields and boolean masks over a rectangular grid.
//
// What:
//
//   - Field: an R×C [][]float64 of cell heights, row-major f[y][x].
//   - Mask: an R×C [][]bool marking cells that belong to a set of interest
//     (below a cutoff, inside a cluster, ...).
//   - Validation: both types reject empty and ragged inputs with
//     ErrEmptyGrid / ErrNonRectangular.
//   - gonum bridge: FromDense / Field.Dense convert to and from *mat.Dense.
//
// Why:
//
//   - label and percolation both consume the same shapes; keeping them in
//     one package keeps the two algorithm packages free of conversions.
//   - Callers already working in gonum can feed a matrix straight in.
//
// Complexity:
//
//   - NewField, Below, FromDense, Dense: O(R×C) time and memory.
//   - MinMax, Check, Count: O(R×C) time, O(1) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
