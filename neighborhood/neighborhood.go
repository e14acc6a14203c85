package neighborhood

import (
	"errors"
	"fmt"

	"github.com/cirko54/SegToolCirko/pixel"
)

// ErrNeighborCount indicates a non-positive neighbor count.
var ErrNeighborCount = errors.New("neighborhood: neighbor count must be positive")

// Kind tags the connectivity policy.
type Kind int

const (
	// Four uses 4-directional connectivity: +x, +y, −x, −y.
	Four Kind = iota
	// Eight adds the four diagonals after the axis steps.
	Eight
	// Ring continues the Eight table into rings at distance 2, 3, ...
	Ring
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Four:
		return "four"
	case Eight:
		return "eight"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// directions is the ring-1 step table shared by every kind.
var directions = [8][2]int{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Neighborhood is a stateless connectivity policy. The zero value is Four.
type Neighborhood struct {
	kind  Kind
	count int
}

// Predefined policies.
var (
	Conn4 = Neighborhood{kind: Four, count: 4}
	Conn8 = Neighborhood{kind: Eight, count: 8}
)

// New returns the policy with count neighbors: 4 → Four, 8 → Eight,
// any other positive count → Ring.
// Returns ErrNeighborCount if count <= 0.
func New(count int) (Neighborhood, error) {
	switch {
	case count <= 0:
		return Neighborhood{}, fmt.Errorf("%w: got %d", ErrNeighborCount, count)
	case count == 4:
		return Conn4, nil
	case count == 8:
		return Conn8, nil
	default:
		return Neighborhood{kind: Ring, count: count}, nil
	}
}

// Kind reports the connectivity tag.
func (nb Neighborhood) Kind() Kind {
	return nb.kind
}

// Count returns the number of neighbors enumerated by Neighbor.
// Complexity: O(1).
func (nb Neighborhood) Count() int {
	if nb.count == 0 {
		return 4
	}
	return nb.count
}

// Step returns the (dx,dy) offset of the i-th neighbor, for 0 <= i < Count().
// Complexity: O(1).
func (nb Neighborhood) Step(i int) (dx, dy int) {
	switch nb.kind {
	case Four, Eight:
		d := directions[i%8]
		return d[0], d[1]
	default:
		n := i/8 + 1
		d := directions[i%8]
		return d[0] * n, d[1] * n
	}
}

// Neighbor returns the i-th neighbor of center on a grid of the given width.
// The result may be invalid; check Valid before indexing.
// Complexity: O(1).
func (nb Neighborhood) Neighbor(center pixel.Coordinate, i, width int) pixel.Coordinate {
	dx, dy := nb.Step(i)
	return center.Relative(dx, dy, width)
}

// Offsets returns the full (dx,dy) table in enumeration order.
// Complexity: O(Count()).
func (nb Neighborhood) Offsets() [][2]int {
	n := nb.Count()
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		dx, dy := nb.Step(i)
		out[i] = [2]int{dx, dy}
	}
	return out
}

// String formats the policy, e.g. "eight(8)".
func (nb Neighborhood) String() string {
	return fmt.Sprintf("%s(%d)", nb.kind, nb.Count())
}
