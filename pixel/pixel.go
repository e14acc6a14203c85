package pixel

import "fmt"

// Coordinate addresses one pixel of a width×height grid.
// Idx is only meaningful as a buffer index when Valid reports true.
type Coordinate struct {
	X, Y int // column and row; may lie outside the grid
	Idx  int // row-major flat index: X + Y*width
}

// FromIndex converts a row-major index back to (x,y).
// No bounds check is performed: an idx past the buffer yields Y ≥ height.
// Complexity: O(1).
func FromIndex(idx, width int) Coordinate {
	return Coordinate{X: idx % width, Y: idx / width, Idx: idx}
}

// FromXY maps (x,y) to a Coordinate with Idx = x + y*width.
// Idx may be negative or exceed the buffer length when (x,y) is out of range.
// Complexity: O(1).
func FromXY(x, y, width int) Coordinate {
	return Coordinate{X: x, Y: y, Idx: x + y*width}
}

// Relative returns the coordinate (c.X+dx, c.Y+dy).
func (c Coordinate) Relative(dx, dy, width int) Coordinate {
	return FromXY(c.X+dx, c.Y+dy, width)
}

// Valid reports whether c lies within a width×height grid.
// Complexity: O(1).
func (c Coordinate) Valid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// String formats the coordinate as "(x,y)#idx".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)#%d", c.X, c.Y, c.Idx)
}
