package morphology

import (
	"errors"
	"fmt"

	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/selection"
)

// Sentinel errors for morphological transforms.
var (
	// ErrKernelSize indicates a kernel size that is not positive and odd.
	ErrKernelSize = errors.New("morphology: kernel size must be a positive odd number")
	// ErrDirection indicates an unknown Direction.
	ErrDirection = errors.New("morphology: unknown direction")
	// ErrDimensionMismatch aliases selection.ErrDimensionMismatch.
	ErrDimensionMismatch = selection.ErrDimensionMismatch
)

// Direction selects erosion or dilation.
type Direction int

const (
	// Erosion removes selected pixels that see an unselected pixel in their kernel.
	Erosion Direction = iota
	// Dilation adds unselected pixels inside the kernel of a selected pixel.
	Dilation
)

// String returns "erode" or "dilate".
func (d Direction) String() string {
	switch d {
	case Erosion:
		return "erode"
	case Dilation:
		return "dilate"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func validate(sel selection.Mask, kernelSize, width, height int, dir Direction) error {
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrKernelSize, kernelSize)
	}
	if dir != Erosion && dir != Dilation {
		return fmt.Errorf("%w: %v", ErrDirection, dir)
	}
	return selection.CheckDims(width, height, len(sel))
}

// Transform applies one erosion or dilation with a kernelSize×kernelSize
// square kernel and returns the final and changed masks. sel is not modified.
func Transform(sel selection.Mask, kernelSize, width, height int, dir Direction) (final, changed selection.Mask, err error) {
	if err = validate(sel, kernelSize, width, height, dir); err != nil {
		return nil, nil, err
	}
	final, changed = scan(sel, kernelSize/2, width, height, dir, nil)
	return final, changed, nil
}

// scan visits source pixels in the given order (ascending when order is nil).
func scan(sel selection.Mask, r, width, height int, dir Direction, order []int) (final, changed selection.Mask) {
	final = sel.Clone()
	changed = selection.New(len(sel))

	visit := func(p int) {
		if !sel[p] {
			return
		}
		src := pixel.FromIndex(p, width)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				c := src.Relative(dx, dy, width)
				if !c.Valid(width, height) || sel[c.Idx] {
					continue
				}
				if dir == Erosion {
					final[p] = false
					changed[p] = true
				} else {
					final[c.Idx] = true
					changed[c.Idx] = true
				}
			}
		}
	}

	if order == nil {
		for p := range sel {
			visit(p)
		}
	} else {
		for _, p := range order {
			visit(p)
		}
	}
	return final, changed
}

// Erode returns the eroded selection.
func Erode(sel selection.Mask, kernelSize, width, height int) (selection.Mask, error) {
	final, _, err := Transform(sel, kernelSize, width, height, Erosion)
	return final, err
}

// Dilate returns the dilated selection.
func Dilate(sel selection.Mask, kernelSize, width, height int) (selection.Mask, error) {
	final, _, err := Transform(sel, kernelSize, width, height, Dilation)
	return final, err
}

// Open erodes then dilates, removing specks smaller than the kernel.
func Open(sel selection.Mask, kernelSize, width, height int) (selection.Mask, error) {
	eroded, err := Erode(sel, kernelSize, width, height)
	if err != nil {
		return nil, err
	}
	return Dilate(eroded, kernelSize, width, height)
}

// Close dilates then erodes, filling gaps smaller than the kernel.
func Close(sel selection.Mask, kernelSize, width, height int) (selection.Mask, error) {
	dilated, err := Dilate(sel, kernelSize, width, height)
	if err != nil {
		return nil, err
	}
	return Erode(dilated, kernelSize, width, height)
}
