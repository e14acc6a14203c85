// Package neighborhood enumerates the neighbors of a pixel under a fixed
// connectivity policy.
//
// What:
//
//   - Four: the axis-aligned unit steps, in the order +x, +y, −x, −y.
//   - Eight: the four axis steps followed by the diagonals
//     (+x,−y), (+x,+y), (−x,+y), (−x,−y).
//   - Ring: any other positive count. Neighbor i lies on ring n = i/8 + 1 in
//     direction i%8 of the Eight table, scaled by n. Rings keep the ring-1
//     order, so Ring(16) is Eight followed by the same eight directions at
//     distance 2.
//
// The set of kinds is closed and dispatched by tag; the enumeration order is
// part of the contract because traversal order is observable through hooks.
//
// Neighbor never checks bounds. The returned pixel.Coordinate may be invalid
// and callers must check Valid before using its Idx.
//
// Errors:
//
//   - ErrNeighborCount: New was asked for a non-positive neighbor count.
package neighborhood
