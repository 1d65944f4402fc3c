// Package percolation decides whether clusters of cells span a 2D grid and
// finds the lowest height cutoff at which a spanning cluster appears.
//
// What:
//
//   - IsPercolating: does a single cluster's mask reach both opposite edges
//     of the grid along an axis, optionally touching itself across the
//     periodic wrap boundary?
//   - Threshold: bisection over the cutoff height of a grid.Field; at each
//     step it labels the below-cutoff cells (package label) and probes each
//     cluster with IsPercolating, narrowing the bracket until it is no
//     wider than the requested tolerance.
//
// Axis convention:
//
//   - AxisX (0): left↔right spanning. Every column must hold an on cell;
//     the periodic check compares the first and last columns.
//   - AxisY (1): top↔bottom spanning. Every row must hold an on cell;
//     the periodic check compares the first and last rows.
//
// Why bisection works:
//
//	The below-cutoff cell set {f ≤ h} only grows as h grows, so "some
//	cluster spans at cutoff h" is monotonically non-decreasing in h and
//	binary search on the boolean outcome is well-defined.
//
// Complexity:
//
//   - IsPercolating: O(R×C) time, O(1) memory.
//   - Threshold: ≈ log₂((max−min)/conv) iterations, each one labeling pass
//     plus at most N predicate probes; O(R×C) transient memory per step.
//
// Errors:
//
//   - ErrBadAxis: axis outside {AxisX, AxisY}. Validated unconditionally,
//     periodic or not (see the IsPercolating doc comment).
//   - grid.ErrEmptyGrid / grid.ErrNonRectangular: bad mask or field shape.
package percolation
