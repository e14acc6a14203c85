// Package morphology erodes or dilates a binary selection mask with a square
// kernel.
//
// What:
//
//   - Transform returns two masks: final, the transformed selection, and
//     changed, the pixels that were removed (erosion) or added (dilation).
//   - For every selected source pixel p and every offset (dx,dy) in
//     [-r,r]×[-r,r], r = kernelSize/2, the in-bounds candidate p+(dx,dy) is
//     inspected. Erosion clears p when any candidate is unselected; dilation
//     sets every unselected candidate.
//   - Every read goes to the input mask, never to final, so the result does
//     not depend on the order in which source pixels are scanned.
//   - Out-of-bounds candidates are skipped: the grid border never erodes a
//     pixel by itself.
//   - Erode, Dilate, Open and Close return only the final mask.
//
// Complexity:
//
//   - Time:   O(S×k²), S = selected pixels, k = kernel size.
//   - Memory: O(W×H) for the two output masks.
//
// Errors:
//
//   - ErrKernelSize:        kernel size is not a positive odd number.
//   - ErrDirection:         unknown Direction value.
//   - ErrDimensionMismatch: mask length differs from width×height, or a
//     dimension is not positive.
package morphology
