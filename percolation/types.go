// Package percolation defines the axis convention, options, and sentinel
// errors for the percolation predicate and threshold search.
package percolation

import (
	"errors"

	"github.com/katalvlaran/perc2d/label"
)

// ErrBadAxis indicates an Axis outside {AxisX, AxisY}.
var ErrBadAxis = errors.New("percolation: axis should be 0 (x) or 1 (y)")

// Axis selects which pair of opposite grid edges a cluster must connect.
type Axis int

const (
	// AxisX tests left↔right spanning: every column must hold an on cell.
	AxisX Axis = iota
	// AxisY tests top↔bottom spanning: every row must hold an on cell.
	AxisY
)

// Options configures the threshold search.
//
// Fields:
//   - Periodic — only accept clusters that also touch themselves across the
//     wrap-around boundary of the tested axis.
//   - Conn     — cluster connectivity used by the labeling pass,
//     label.Conn4 (default) or label.Conn8.
//
// Example:
//
//	opts := percolation.DefaultOptions()
//	opts.Periodic = true
//
//	h, cluster, err := percolation.Threshold(field, percolation.AxisX, 0.01, &opts)
type Options struct {
	Periodic bool
	Conn     label.Connectivity
}

// DefaultOptions returns the default search configuration:
// non-periodic spanning, 4-directional connectivity.
func DefaultOptions() Options {
	return Options{
		Periodic: false,
		Conn:     label.Conn4,
	}
}
