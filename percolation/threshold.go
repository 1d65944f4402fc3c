package percolation

import (
	"github.com/katalvlaran/perc2d/grid"
	"github.com/katalvlaran/perc2d/label"
)

// Threshold — minimal percolation cutoff of a height field
//
// Description:
//
//	Threshold finds the lowest cutoff height at which some connected
//	cluster of below-cutoff cells spans the field along axis, within a
//	bracket window of width conv.
//
// Algorithm Outline (bisection):
//  1. upper = max(field), lower = min(field), best = nil.
//  2. While upper − lower > conv:
//     mid   = (upper + lower) / 2
//     image = mask of cells with field ≤ mid
//     label image (opts.Conn connectivity), clusters numbered 1..n
//     probe clusters in ascending id order with IsPercolating;
//     first spanning cluster: upper = mid, best = its mask, next iteration
//     no spanning cluster:    lower = mid
//  3. Return (upper, best).
//
// The returned cluster mask is nil when no cluster ever spanned — for
// example a constant field, or one whose only spanning cluster is the full
// grid at cutoff = max, which bisection midpoints never reach.
//
// Preconditions:
//   - conv > 0. A non-positive conv is not defended against and can keep
//     the loop from terminating.
//   - field constructed via grid.NewField or grid.FromDense (shape is
//     re-checked here; the heights themselves are never mutated).
//
// A nil opts means DefaultOptions: non-periodic, label.Conn4.
//
// Complexity:
//
//	Time   ≈ log₂((max−min)/conv) iterations × (one labeling pass + at
//	         most n predicate probes), each O(R×C).
//	Memory = O(R×C) transient per iteration, plus the retained best mask.
func Threshold(field grid.Field, axis Axis, conv float64, opts *Options) (float64, grid.Mask, error) {
	if err := field.Check(); err != nil {
		return 0, nil, err
	}
	if axis != AxisX && axis != AxisY {
		return 0, nil, ErrBadAxis
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	lower, upper := field.MinMax()
	var best grid.Mask

	for upper-lower > conv {
		mid := (upper + lower) / 2
		image := field.Below(mid)

		labels, n, err := label.Label(image, o.Conn)
		if err != nil {
			return 0, nil, err
		}

		found := false
		for id := 1; id <= n; id++ {
			cluster := label.ClusterMask(labels, id)
			ok, err := IsPercolating(cluster, axis, o.Periodic)
			if err != nil {
				return 0, nil, err
			}
			if ok {
				upper = mid
				best = cluster
				found = true
				break
			}
		}
		if !found {
			lower = mid
		}
	}

	return upper, best, nil
}
