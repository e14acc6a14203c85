package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirko54/SegToolCirko/grid"
	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/selection"
)

// TestNew_Errors verifies that New rejects empty or mis-sized inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		pixels []int16
		err    error
	}{
		{"ZeroWidth", 0, 2, nil, grid.ErrEmptyGrid},
		{"NegativeHeight", 2, -1, nil, grid.ErrEmptyGrid},
		{"Short", 2, 2, []int16{1, 2, 3}, grid.ErrDimensionMismatch},
		{"Long", 1, 1, []int16{1, 2}, grid.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, tc.pixels)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesBuffer ensures later caller mutation does not leak in.
func TestNew_CopiesBuffer(t *testing.T) {
	buf := []int16{1, 2, 3, 4}
	g, err := grid.New(2, 2, buf)
	require.NoError(t, err)
	buf[0] = 99
	assert.Equal(t, 1, g.Intensity(0))
	assert.Equal(t, 4, g.Len())
}

// TestIntensity_Masked checks the unsigned 16-bit view of negative samples.
func TestIntensity_Masked(t *testing.T) {
	g, err := grid.New(3, 1, []int16{-1, -32768, 32767})
	require.NoError(t, err)
	assert.Equal(t, 65535, g.Intensity(0))
	assert.Equal(t, 32768, g.Intensity(1))
	assert.Equal(t, 32767, g.Intensity(2))

	g2, err := grid.FromUint16(3, 1, []uint16{65535, 32768, 7})
	require.NoError(t, err)
	assert.Equal(t, 65535, g2.Intensity(0))
	assert.Equal(t, 32768, g2.Intensity(1))
	assert.Equal(t, 7, g2.Intensity(2))
}

func TestAt(t *testing.T) {
	g, _ := grid.New(2, 2, []int16{10, 20, 30, 40})
	v, ok := g.At(pixel.FromXY(1, 1, 2))
	assert.True(t, ok)
	assert.Equal(t, 40, v)
	_, ok = g.At(pixel.FromXY(2, 0, 2))
	assert.False(t, ok)
	assert.Equal(t, pixel.Coordinate{X: 1, Y: 1, Idx: 3}, g.Coordinate(3))
}

func TestMinMax(t *testing.T) {
	g, _ := grid.New(2, 2, []int16{500, 7, -1, 300})
	lo, hi := g.MinMax()
	assert.Equal(t, 7, lo)
	assert.Equal(t, 65535, hi)
}

// TestStats covers the empty, single and multi-pixel selections.
func TestStats(t *testing.T) {
	g, _ := grid.New(2, 2, []int16{2, 4, 4, 6})

	st, err := g.Stats(selection.New(4))
	require.NoError(t, err)
	assert.Equal(t, grid.Stats{}, st)

	st, err = g.Stats(selection.Mask{false, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, grid.Stats{Count: 1, Min: 4, Max: 4, Mean: 4}, st)

	st, err = g.Stats(selection.Mask{true, true, true, true})
	require.NoError(t, err)
	assert.Equal(t, 4, st.Count)
	assert.Equal(t, 2, st.Min)
	assert.Equal(t, 6, st.Max)
	assert.InDelta(t, 4.0, st.Mean, 1e-12)
	// sample variance of {2,4,4,6} is 8/3
	assert.InDelta(t, 1.632993161855452, st.StdDev, 1e-12)

	_, err = g.Stats(selection.New(3))
	require.ErrorIs(t, err, selection.ErrDimensionMismatch)
}
