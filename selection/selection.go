package selection

import (
	"errors"
	"fmt"

	"github.com/cirko54/SegToolCirko/neighborhood"
	"github.com/cirko54/SegToolCirko/pixel"
)

// ErrDimensionMismatch indicates a mask or buffer whose length is not width×height.
var ErrDimensionMismatch = errors.New("selection: buffer length does not match grid dimensions")

// Mask marks selected pixels by flat index.
type Mask []bool

// New returns an all-false mask of n pixels.
func New(n int) Mask {
	return make(Mask, n)
}

// CheckDims reports ErrDimensionMismatch unless width and height are
// positive and n == width*height.
// Complexity: O(1).
func CheckDims(width, height, n int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrDimensionMismatch, width, height)
	}
	if n != width*height {
		return fmt.Errorf("%w: got %d, want %d (%dx%d)", ErrDimensionMismatch, n, width*height, width, height)
	}
	return nil
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// Count returns the number of selected pixels.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Indices returns the selected flat indices in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Union adds every pixel selected in src to dst.
// Returns ErrDimensionMismatch if the lengths differ.
func Union(dst, src Mask) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: union of %d and %d pixels", ErrDimensionMismatch, len(dst), len(src))
	}
	for i, v := range src {
		if v {
			dst[i] = true
		}
	}
	return nil
}

// Subtract removes every pixel selected in src from dst.
// Returns ErrDimensionMismatch if the lengths differ.
func Subtract(dst, src Mask) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: subtraction of %d from %d pixels", ErrDimensionMismatch, len(src), len(dst))
	}
	for i, v := range src {
		if v {
			dst[i] = false
		}
	}
	return nil
}

// Clear deselects every pixel of dst.
func Clear(dst Mask) {
	for i := range dst {
		dst[i] = false
	}
}

// Components finds the connected islands of selected pixels under nb.
// Islands are discovered in row-major order of their first pixel; each
// island lists its flat indices in BFS visit order.
// Returns ErrDimensionMismatch if m does not match width×height.
//
// Time:   O(N×d), where d = nb.Count().
// Memory: O(N) for visited flags and output.
func Components(m Mask, width, height int, nb neighborhood.Neighborhood) ([][]int, error) {
	if err := CheckDims(width, height, len(m)); err != nil {
		return nil, err
	}
	seen := make([]bool, len(m))
	var comps [][]int
	d := nb.Count()

	for i0, sel := range m {
		if !sel || seen[i0] {
			continue
		}
		// BFS to collect the island
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := pixel.FromIndex(queue[qi], width)
			for k := 0; k < d; k++ {
				v := nb.Neighbor(u, k, width)
				if !v.Valid(width, height) || !m[v.Idx] || seen[v.Idx] {
					continue
				}
				seen[v.Idx] = true
				queue = append(queue, v.Idx)
			}
		}
		comps = append(comps, queue)
	}
	return comps, nil
}
