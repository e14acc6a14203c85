// Package label keeps the per-pixel label buffer of an editing session.
//
// A Store owns the buffer and is the only writer; growth engines borrow a
// View, which exposes reads only. Label 0 means "unlabeled"; values in
// MinReserved..MaxReserved mark pixels that belong to an already segmented
// region.
package label

import (
	"errors"
	"fmt"

	"github.com/cirko54/SegToolCirko/selection"
)

// Reserved label range for segmented regions.
const (
	MinReserved uint8 = 1
	MaxReserved uint8 = 5
)

// ErrLabelRange indicates a label value outside MinReserved..MaxReserved.
var ErrLabelRange = errors.New("label: value outside reserved range")

// Store is a mutable label buffer.
type Store struct {
	labels []uint8
}

// NewStore returns an all-unlabeled store of n pixels.
func NewStore(n int) *Store {
	return &Store{labels: make([]uint8, n)}
}

// FromSlice wraps a copy of labels.
func FromSlice(labels []uint8) *Store {
	cp := make([]uint8, len(labels))
	copy(cp, labels)
	return &Store{labels: cp}
}

// View returns a read-only view backed by the store's buffer.
// Later writes through the store are visible through the view.
func (s *Store) View() View {
	return View{labels: s.labels}
}

// Len returns the number of pixels in the store.
func (s *Store) Len() int {
	return len(s.labels)
}

func checkLabel(l uint8) error {
	if l < MinReserved || l > MaxReserved {
		return fmt.Errorf("%w: %d not in %d..%d", ErrLabelRange, l, MinReserved, MaxReserved)
	}
	return nil
}

// Save replaces label l with the pixels selected in sel: every pixel
// currently carrying l is cleared first, then every selected pixel gets l.
// Complexity: O(N).
func (s *Store) Save(l uint8, sel selection.Mask) error {
	if err := checkLabel(l); err != nil {
		return err
	}
	if len(sel) != len(s.labels) {
		return fmt.Errorf("%w: got %d, want %d", selection.ErrDimensionMismatch, len(sel), len(s.labels))
	}
	s.clear(l)
	for i, on := range sel {
		if on {
			s.labels[i] = l
		}
	}
	return nil
}

// Clear resets every pixel carrying l to unlabeled.
func (s *Store) Clear(l uint8) error {
	if err := checkLabel(l); err != nil {
		return err
	}
	s.clear(l)
	return nil
}

func (s *Store) clear(l uint8) {
	for i, v := range s.labels {
		if v == l {
			s.labels[i] = 0
		}
	}
}

// Select clears dst and marks every pixel carrying l.
func (s *Store) Select(l uint8, dst selection.Mask) error {
	if err := checkLabel(l); err != nil {
		return err
	}
	if len(dst) != len(s.labels) {
		return fmt.Errorf("%w: got %d, want %d", selection.ErrDimensionMismatch, len(dst), len(s.labels))
	}
	for i, v := range s.labels {
		dst[i] = v == l
	}
	return nil
}

// View is a borrowed read-only label buffer. The zero View has length 0.
type View struct {
	labels []uint8
}

// Len returns the number of pixels covered by v.
func (v View) Len() int {
	return len(v.labels)
}

// At returns the label at flat index idx.
func (v View) At(idx int) uint8 {
	return v.labels[idx]
}

// Reserved reports whether the pixel at idx belongs to a segmented region.
func (v View) Reserved(idx int) bool {
	l := v.labels[idx]
	return l >= MinReserved && l <= MaxReserved
}
