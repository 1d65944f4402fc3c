// Package perc2d estimates percolation thresholds of 2D scalar “height”
// fields — the lowest cutoff at which the cells below that cutoff form a
// contiguous path spanning the grid from one edge to the opposite one.
//
// 🚀 What is perc2d?
//
//	A small, pure-Go numeric library built from three packages:
//		• grid/        — Field and Mask types, validation, gonum adapters
//		• label/       — connected-component labeling (Conn4 / Conn8)
//		• percolation/ — spanning predicate + bisection threshold search
//
// ✨ Why choose perc2d?
//
//   - Minimal API — two exported operations do all the work:
//     percolation.IsPercolating and percolation.Threshold
//   - Deterministic — pure functions of their inputs, no global state
//   - gonum-friendly — feed a *mat.Dense straight in via grid.FromDense
//
// Quick ASCII example (0 = low ground, 9 = ridge):
//
//	9 9 9 9 9
//	0 0 0 0 0   ← this valley percolates left↔right at any cutoff ≥ 0
//	9 9 9 9 9
//
// Typical use: landscape connectivity, porous-media breakthrough estimates,
// noise-field analysis — anywhere “at what level does a path open up?” is
// the question.
//
//	go get github.com/katalvlaran/perc2d
package perc2d
