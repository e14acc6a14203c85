// Package segment is the headless editing session of the segmentation tool:
// it owns a grid, the current selection, the label store and the growth
// parameters, and turns editor actions into engine calls.
//
// What:
//
//   - Grow(x, y, mode): flood from (x,y) into a fresh mask, then Replace the
//     current selection, Add to it, or Subtract from it.
//   - Erode(k) / Dilate(k): replace the selection by its transformed mask.
//   - SaveLabel / ClearLabel / SelectLabel: move selections in and out of the
//     label store; labeled pixels stop later growth while
//     Params.StopAtOtherLabels is set.
//   - Stats / Components: summarize the current selection.
//
// Each action is logged through the session logger under component
// "segment". A Session is not safe for concurrent use.
//
// Errors:
//
//   - ErrNilGrid:         NewSession received a nil grid.
//   - ErrOptionViolation: an Option was invalid (e.g. label store size).
//   - ErrMode:            unknown Mode.
//   - Errors from region, morphology, label and selection are returned as is.
package segment
