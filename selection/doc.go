// Package selection defines the boolean selection mask shared by the region
// growing and morphology engines, together with the set algebra an editor
// applies when merging a freshly computed mask into its current selection.
//
// What:
//
//   - Mask is a row-major []bool with one entry per pixel.
//   - CheckDims validates a mask (or any parallel buffer) against width×height.
//   - Union, Subtract and Clear mutate a destination mask in place.
//   - Components splits a mask into connected islands under a neighborhood.
//
// Complexity:
//
//   - Union, Subtract, Clear, Count, Clone: O(N), N = width×height.
//   - Components: O(N×d), Memory: O(N)  (d = neighbor count).
//
// Errors:
//
//   - ErrDimensionMismatch: a buffer length differs from width×height, or a
//     dimension is not positive.
package selection
