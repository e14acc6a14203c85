// Package grid holds the immutable intensity raster that region growing reads.
//
// What:
//
//   - Grid stores Width, Height and a flat row-major buffer of signed 16-bit
//     samples. Intensity masks each sample into the unsigned 16-bit domain
//     (0..65535), so a raw -1 reads as 65535.
//   - MinMax scans the masked intensities; editors use it to seed default
//     threshold ranges.
//   - Stats summarizes the intensities under a selection mask.
//
// Complexity:
//
//   - New, FromUint16: O(W×H) time and memory (the buffer is copied).
//   - Intensity: O(1).  MinMax, Stats: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrDimensionMismatch: the pixel buffer length differs from width×height.
package grid
