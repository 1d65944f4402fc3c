// Package label assigns connected-component labels to the "on" cells of a
// 2D boolean mask.
//
// What:
//
//   - Label scans the mask in row-major order and flood-fills each
//     unvisited "on" cell with BFS, producing an integer label map:
//     0 = background, 1..N = distinct clusters.
//   - Connectivity selects Conn4 (orthogonal neighbors, the default) or
//     Conn8 (orthogonal plus diagonal).
//   - ClusterMask extracts a single cluster's boolean mask from a label map.
//
// Why:
//
//   - Percolation analysis tests clusters one at a time; the threshold
//     search in package percolation re-labels the below-cutoff mask at
//     every bisection step and probes each cluster for spanning.
//
// Guarantees:
//
//   - Each label 1..N covers exactly one maximal connected region.
//   - Enumeration order is deterministic (row-major discovery order) but
//     carries no spatial or size meaning; callers must not infer any.
//
// Complexity:
//
//   - Label:       O(R×C×d) time (d = 4 or 8), O(R×C) memory.
//   - ClusterMask: O(R×C) time and memory.
//
// Errors:
//
//   - grid.ErrEmptyGrid / grid.ErrNonRectangular: bad mask shape.
//   - ErrBadConnectivity: Connectivity outside {Conn4, Conn8}.
package label
