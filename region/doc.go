// Package region grows a connected region from a seed pixel by breadth-first
// flood fill over a grid.Grid.
//
// What:
//
//   - Grow marks the seed, then repeatedly pops the front of a FIFO frontier
//     and classifies each in-bounds neighbor (in neighborhood order):
//     Include (visited, selected, counted, enqueued), ExcludeVisited (fails
//     the intensity predicate; visited so it is never re-tested) or
//     ExcludeUnvisited (carries a reserved label while StopAtOtherLabels is
//     set; left unvisited).
//   - The inclusion predicate is UseThresholdRange && Min <= I <= Max on the
//     masked unsigned intensity. With UseThresholdRange off nothing grows and
//     only the seed is selected.
//   - The returned count is the number of pixels reached by this call,
//     excluding the seed. Pixels already selected before the call are counted
//     again when reached, so growing twice from the same seed returns the same
//     count.
//
// Classes:
//
//	A labeled neighbor is skipped without being visited, whereas a pixel
//	failing the predicate is marked visited. Grower.Classify exposes the
//	classification of a single pixel.
//
// Complexity:
//
//   - Time:   O(W×H×d), every pixel is enqueued at most once (d = neighbor count).
//   - Memory: O(W×H) for the visited bitset and the frontier.
//
// Options:
//
//   - WithLogger(l):     debug log per call (neighborhood, count, elapsed time).
//   - WithOnInclude(fn): hook called for every included pixel in visit order.
//
// Errors:
//
//   - ErrNilGrid:           grid pointer is nil.
//   - ErrInvalidParams:     Params.Neighbors is not positive.
//   - ErrDimensionMismatch: selection or label view does not cover the grid.
//   - ErrInvalidSeed:       seed lies outside the grid; selection untouched.
package region
