package percolation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/perc2d/grid"
	"github.com/katalvlaran/perc2d/percolation"
)

// TestIsPercolating_AllOff verifies that an all-off mask never spans,
// regardless of axis and periodicity.
func TestIsPercolating_AllOff(t *testing.T) {
	mask := grid.Mask{
		{false, false, false},
		{false, false, false},
	}

	for _, axis := range []percolation.Axis{percolation.AxisX, percolation.AxisY} {
		for _, periodic := range []bool{false, true} {
			ok, err := percolation.IsPercolating(mask, axis, periodic)
			assert.NoError(t, err)
			assert.False(t, ok, "all-off mask must not span (axis=%d periodic=%v)", axis, periodic)
		}
	}
}

// TestIsPercolating_AllOn verifies that an all-on mask spans on both axes,
// periodic included (the boundary slices are fully on).
func TestIsPercolating_AllOn(t *testing.T) {
	mask := grid.Mask{
		{true, true, true},
		{true, true, true},
	}

	for _, axis := range []percolation.Axis{percolation.AxisX, percolation.AxisY} {
		for _, periodic := range []bool{false, true} {
			ok, err := percolation.IsPercolating(mask, axis, periodic)
			assert.NoError(t, err)
			assert.True(t, ok, "all-on mask must span (axis=%d periodic=%v)", axis, periodic)
		}
	}
}

// TestIsPercolating_SingleRow checks a mask with one full horizontal row:
// it spans left↔right (AxisX) but not top↔bottom (AxisY), and it satisfies
// the periodic AxisX check since it occupies both boundary columns.
//
// Mask:
//
//	0 0 0
//	1 1 1
//	0 0 0
func TestIsPercolating_SingleRow(t *testing.T) {
	mask := grid.Mask{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}

	ok, err := percolation.IsPercolating(mask, percolation.AxisX, false)
	assert.NoError(t, err)
	assert.True(t, ok, "full row spans AxisX")

	ok, err = percolation.IsPercolating(mask, percolation.AxisX, true)
	assert.NoError(t, err)
	assert.True(t, ok, "full row touches both boundary columns")

	ok, err = percolation.IsPercolating(mask, percolation.AxisY, false)
	assert.NoError(t, err)
	assert.False(t, ok, "single row must not span AxisY")
}

// TestIsPercolating_SingleColumn is the transposed case: one full column
// spans AxisY only.
func TestIsPercolating_SingleColumn(t *testing.T) {
	mask := grid.Mask{
		{false, true, false},
		{false, true, false},
		{false, true, false},
	}

	ok, err := percolation.IsPercolating(mask, percolation.AxisY, false)
	assert.NoError(t, err)
	assert.True(t, ok, "full column spans AxisY")

	ok, err = percolation.IsPercolating(mask, percolation.AxisY, true)
	assert.NoError(t, err)
	assert.True(t, ok, "full column touches both boundary rows")

	ok, err = percolation.IsPercolating(mask, percolation.AxisX, false)
	assert.NoError(t, err)
	assert.False(t, ok, "single column must not span AxisX")
}

// TestIsPercolating_PeriodicBoundary uses an S-shaped cluster that spans
// both axes but whose boundary slices never overlap on AxisY, so the
// periodic AxisY check fails while the periodic AxisX check passes
// (the middle row occupies both boundary columns).
//
// Mask:
//
//	1 0 0
//	1 1 1
//	0 0 1
func TestIsPercolating_PeriodicBoundary(t *testing.T) {
	mask := grid.Mask{
		{true, false, false},
		{true, true, true},
		{false, false, true},
	}

	ok, err := percolation.IsPercolating(mask, percolation.AxisY, false)
	assert.NoError(t, err)
	assert.True(t, ok, "S-shape spans AxisY")

	ok, err = percolation.IsPercolating(mask, percolation.AxisY, true)
	assert.NoError(t, err)
	assert.False(t, ok, "first and last rows never overlap, periodic AxisY must fail")

	ok, err = percolation.IsPercolating(mask, percolation.AxisX, true)
	assert.NoError(t, err)
	assert.True(t, ok, "middle row joins both boundary columns, periodic AxisX holds")
}

// TestIsPercolating_BadAxis ensures ErrBadAxis for any axis outside
// {AxisX, AxisY}, with and without periodicity.
func TestIsPercolating_BadAxis(t *testing.T) {
	mask := grid.Mask{{true}}

	for _, periodic := range []bool{false, true} {
		_, err := percolation.IsPercolating(mask, percolation.Axis(2), periodic)
		assert.ErrorIs(t, err, percolation.ErrBadAxis, "periodic=%v", periodic)
	}
}

// TestIsPercolating_BadShape ensures shape violations surface as the grid
// sentinels.
func TestIsPercolating_BadShape(t *testing.T) {
	_, err := percolation.IsPercolating(grid.Mask{}, percolation.AxisX, false)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = percolation.IsPercolating(grid.Mask{{true, false}, {true}}, percolation.AxisX, false)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestIsPercolating_Pure verifies the predicate neither mutates its mask
// nor changes its answer on repeat calls.
func TestIsPercolating_Pure(t *testing.T) {
	mask := grid.Mask{
		{false, true, false},
		{true, true, true},
	}
	snapshot := mask.Clone()

	first, err := percolation.IsPercolating(mask, percolation.AxisX, false)
	assert.NoError(t, err)
	second, err := percolation.IsPercolating(mask, percolation.AxisX, false)
	assert.NoError(t, err)

	assert.Equal(t, first, second, "repeat call must agree")
	if diff := cmp.Diff(snapshot, mask); diff != "" {
		t.Errorf("mask mutated (-want +got):\n%s", diff)
	}
}
