package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/selection"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrDimensionMismatch indicates a pixel buffer of the wrong length.
	ErrDimensionMismatch = errors.New("grid: pixel buffer length does not match dimensions")
)

// MaxIntensity is the largest masked intensity value.
const MaxIntensity = math.MaxUint16

// Grid is an immutable width×height raster of 16-bit samples.
type Grid struct {
	Width, Height int
	pixels        []int16
}

// New builds a Grid from a row-major buffer of signed 16-bit samples.
// The buffer is copied.
func New(width, height int, pixels []int16) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(pixels), width*height)
	}
	cp := make([]int16, len(pixels))
	copy(cp, pixels)
	return &Grid{Width: width, Height: height, pixels: cp}, nil
}

// FromUint16 builds a Grid from unsigned 16-bit samples.
func FromUint16(width, height int, pixels []uint16) (*Grid, error) {
	raw := make([]int16, len(pixels))
	for i, v := range pixels {
		raw[i] = int16(v)
	}
	return New(width, height, raw)
}

// Len returns Width*Height.
func (g *Grid) Len() int {
	return len(g.pixels)
}

// Intensity returns the masked unsigned intensity at flat index idx.
// idx must be a valid index.
// Complexity: O(1).
func (g *Grid) Intensity(idx int) int {
	return int(uint16(g.pixels[idx]))
}

// At returns the intensity at c, or false if c lies outside the grid.
func (g *Grid) At(c pixel.Coordinate) (int, bool) {
	if !c.Valid(g.Width, g.Height) {
		return 0, false
	}
	return g.Intensity(c.Idx), true
}

// Coordinate converts a flat index to a pixel.Coordinate on this grid.
func (g *Grid) Coordinate(idx int) pixel.Coordinate {
	return pixel.FromIndex(idx, g.Width)
}

// MinMax returns the smallest and largest masked intensities.
// Complexity: O(W×H).
func (g *Grid) MinMax() (lo, hi int) {
	lo, hi = MaxIntensity, 0
	for i := range g.pixels {
		v := g.Intensity(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Stats summarizes the intensities of the selected pixels.
// Mean and StdDev are zero when fewer than one, respectively two, pixels
// are selected.
type Stats struct {
	Count    int
	Min, Max int
	Mean     float64
	StdDev   float64 // sample standard deviation
}

// Stats computes Stats over the pixels selected in sel.
// Returns selection.ErrDimensionMismatch if sel does not cover the grid.
// Complexity: O(W×H).
func (g *Grid) Stats(sel selection.Mask) (Stats, error) {
	if err := selection.CheckDims(g.Width, g.Height, len(sel)); err != nil {
		return Stats{}, err
	}
	values := make([]float64, 0, sel.Count())
	st := Stats{Min: MaxIntensity}
	for i, on := range sel {
		if !on {
			continue
		}
		v := g.Intensity(i)
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		values = append(values, float64(v))
	}
	st.Count = len(values)
	switch st.Count {
	case 0:
		return Stats{}, nil
	case 1:
		st.Mean = values[0]
	default:
		st.Mean, st.StdDev = stat.MeanStdDev(values, nil)
	}
	return st, nil
}
