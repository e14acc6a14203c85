package segment

import (
	"fmt"

	"github.com/cirko54/SegToolCirko/grid"
	"github.com/cirko54/SegToolCirko/internal/logger"
	"github.com/cirko54/SegToolCirko/label"
	"github.com/cirko54/SegToolCirko/morphology"
	"github.com/cirko54/SegToolCirko/neighborhood"
	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/region"
	"github.com/cirko54/SegToolCirko/selection"
)

const component = "segment"

// Mode selects how a freshly grown mask merges into the current selection.
type Mode int

const (
	// Replace discards the current selection.
	Replace Mode = iota
	// Add unions the grown mask into the current selection.
	Add
	// Subtract removes the grown mask from the current selection.
	Subtract
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Session is one interactive editing session over a single grid.
type Session struct {
	grid   *grid.Grid
	sel    selection.Mask
	labels *label.Store
	params region.Params
	log    logger.Logger
}

// NewSession starts a session with an empty selection. Unless overridden
// with WithParams, growth uses region.DefaultParams with the thresholds set
// to the grid's minimum and maximum intensity.
func NewSession(g *grid.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Session{
		grid:   g,
		sel:    selection.New(g.Len()),
		labels: o.Labels,
		log:    o.Logger,
	}
	if s.labels == nil {
		s.labels = label.NewStore(g.Len())
	} else if s.labels.Len() != g.Len() {
		return nil, fmt.Errorf("%w: label store covers %d pixels, grid has %d", ErrOptionViolation, s.labels.Len(), g.Len())
	}
	if o.Params != nil {
		s.params = *o.Params
	} else {
		s.params = region.DefaultParams()
		s.params.MinThreshold, s.params.MaxThreshold = g.MinMax()
	}

	s.log.Info(component, "session started", map[string]interface{}{
		"width":  g.Width,
		"height": g.Height,
		"min":    s.params.MinThreshold,
		"max":    s.params.MaxThreshold,
	})
	return s, nil
}

// Grid returns the session grid.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Params returns the current growth parameters.
func (s *Session) Params() region.Params {
	return s.params
}

// SetParams replaces the growth parameters.
func (s *Session) SetParams(p region.Params) error {
	if _, err := neighborhood.New(p.Neighbors); err != nil {
		return fmt.Errorf("%w: %w", region.ErrInvalidParams, err)
	}
	s.params = p
	return nil
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() selection.Mask {
	return s.sel.Clone()
}

// SetSelection replaces the current selection with a copy of m.
func (s *Session) SetSelection(m selection.Mask) error {
	if err := selection.CheckDims(s.grid.Width, s.grid.Height, len(m)); err != nil {
		return err
	}
	s.sel = m.Clone()
	return nil
}

// ClearSelection deselects every pixel.
func (s *Session) ClearSelection() {
	selection.Clear(s.sel)
}

// Labels returns a read-only view of the label store.
func (s *Session) Labels() label.View {
	return s.labels.View()
}

// Grow floods from (x,y) with the current parameters and merges the result
// according to mode. It returns the grown pixel count (seed excluded).
// On error the current selection is unchanged.
func (s *Session) Grow(x, y int, mode Mode) (int, error) {
	if mode != Replace && mode != Add && mode != Subtract {
		return 0, fmt.Errorf("%w: %v", ErrMode, mode)
	}
	fresh := selection.New(s.grid.Len())
	seed := pixel.FromXY(x, y, s.grid.Width)
	n, err := region.Grow(s.grid, s.labels.View(), seed, s.params, fresh, region.WithLogger(s.log))
	if err != nil {
		s.log.Error(component, err, map[string]interface{}{"action": "grow", "x": x, "y": y})
		return 0, err
	}

	switch mode {
	case Replace:
		s.sel = fresh
	case Add:
		err = selection.Union(s.sel, fresh)
	case Subtract:
		err = selection.Subtract(s.sel, fresh)
	}
	if err != nil {
		return 0, err
	}

	s.log.Info(component, "grow", map[string]interface{}{
		"x":        x,
		"y":        y,
		"mode":     mode.String(),
		"grown":    n,
		"selected": s.sel.Count(),
	})
	return n, nil
}

// Erode replaces the selection by its erosion with a k×k kernel.
func (s *Session) Erode(k int) error {
	return s.transform(k, morphology.Erosion)
}

// Dilate replaces the selection by its dilation with a k×k kernel.
func (s *Session) Dilate(k int) error {
	return s.transform(k, morphology.Dilation)
}

func (s *Session) transform(k int, dir morphology.Direction) error {
	final, changed, err := morphology.Transform(s.sel, k, s.grid.Width, s.grid.Height, dir)
	if err != nil {
		s.log.Error(component, err, map[string]interface{}{"action": dir.String(), "kernel": k})
		return err
	}
	s.sel = final
	s.log.Info(component, dir.String(), map[string]interface{}{
		"kernel":   k,
		"changed":  changed.Count(),
		"selected": final.Count(),
	})
	return nil
}

// SaveLabel stores the current selection as label l, replacing whatever
// pixels carried l before.
func (s *Session) SaveLabel(l uint8) error {
	if err := s.labels.Save(l, s.sel); err != nil {
		return err
	}
	s.log.Info(component, "label saved", map[string]interface{}{"label": l, "pixels": s.sel.Count()})
	return nil
}

// ClearLabel removes label l from every pixel.
func (s *Session) ClearLabel(l uint8) error {
	if err := s.labels.Clear(l); err != nil {
		return err
	}
	s.log.Info(component, "label cleared", map[string]interface{}{"label": l})
	return nil
}

// SelectLabel makes the pixels carrying label l the current selection.
func (s *Session) SelectLabel(l uint8) error {
	if err := s.labels.Select(l, s.sel); err != nil {
		return err
	}
	s.log.Info(component, "label selected", map[string]interface{}{"label": l, "pixels": s.sel.Count()})
	return nil
}

// Stats summarizes the intensities under the current selection.
func (s *Session) Stats() (grid.Stats, error) {
	return s.grid.Stats(s.sel)
}

// Components splits the current selection into islands using the growth
// neighborhood.
func (s *Session) Components() ([][]int, error) {
	nb, err := neighborhood.New(s.params.Neighbors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", region.ErrInvalidParams, err)
	}
	return selection.Components(s.sel, s.grid.Width, s.grid.Height, nb)
}
