// Package segtool is the core of an interactive binary-mask editor for
// 16-bit grayscale rasters: grow a region from a clicked pixel, then refine
// the selection by erosion and dilation.
//
// Everything is organized under small subpackages, leaves first:
//
//	pixel/         flat index ⇄ (x,y) conversion and bounds checks
//	neighborhood/  4-, 8- and ring-n connectivity with a fixed neighbor order
//	selection/     boolean masks, set algebra, connected components
//	grid/          immutable 16-bit intensity raster, min/max, statistics
//	label/         label store and the read-only view used by growth
//	region/        breadth-first region growing under an intensity predicate
//	morphology/    square-kernel erosion / dilation (final + changed masks)
//	segment/       headless editing session tying the pieces together
//
// Quick ASCII example (Conn4, threshold 50..100, seed at *):
//
//	 10  80  80   0        . # # .
//	 80 *80   0   0   →    # # . .
//	  0  80  10  10        . # . .
//
// Engines are synchronous pure functions of (grid, mask, parameters); they
// keep no state between calls and never retain a caller's mask.
package segtool
