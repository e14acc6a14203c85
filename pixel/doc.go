// Package pixel converts between flat row-major pixel indices and (x,y)
// coordinates of a fixed-width grid, and reports whether a coordinate lies
// inside the grid.
//
// What:
//
//   - Coordinate carries X, Y and the flat index Idx = X + Y*width.
//   - FromIndex / FromXY build a Coordinate from either representation.
//   - Relative steps a Coordinate by (dx,dy).
//   - Valid reports whether a Coordinate may be used to index a buffer.
//
// Out-of-range coordinates (negative X or Y, X ≥ width, Y ≥ height) are
// representable on purpose: neighbor and kernel computations produce them
// freely, and every call site checks Valid before touching a buffer with Idx.
//
// Complexity: every operation is O(1) and allocation-free.
package pixel
