package region

import (
	"fmt"
	"time"

	"github.com/cirko54/SegToolCirko/grid"
	"github.com/cirko54/SegToolCirko/label"
	"github.com/cirko54/SegToolCirko/neighborhood"
	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/selection"
)

const component = "region"

// Grower binds a grid, a label view and Params for repeated growth calls.
// It holds no per-call state and may be reused.
type Grower struct {
	grid   *grid.Grid
	labels label.View
	params Params
	nb     neighborhood.Neighborhood
}

// NewGrower validates its inputs and returns a Grower.
// A zero-length label view is treated as "no pixel is labeled"; any other
// view must cover the grid.
func NewGrower(g *grid.Grid, labels label.View, p Params) (*Grower, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	nb, err := neighborhood.New(p.Neighbors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if labels.Len() != 0 {
		if err := selection.CheckDims(g.Width, g.Height, labels.Len()); err != nil {
			return nil, fmt.Errorf("labels: %w", err)
		}
	}
	return &Grower{grid: g, labels: labels, params: p, nb: nb}, nil
}

// Neighborhood reports the connectivity policy in use.
func (gr *Grower) Neighborhood() neighborhood.Neighborhood {
	return gr.nb
}

// Included reports whether the intensity at idx passes the range predicate.
func (gr *Grower) Included(idx int) bool {
	v := gr.grid.Intensity(idx)
	return gr.params.UseThresholdRange && v >= gr.params.MinThreshold && v <= gr.params.MaxThreshold
}

// Classify decides how growth treats the valid pixel c when reached from the
// frontier. The label rule takes precedence over the intensity predicate.
// Complexity: O(1).
func (gr *Grower) Classify(c pixel.Coordinate) Class {
	if gr.params.StopAtOtherLabels && gr.labels.Len() != 0 && gr.labels.Reserved(c.Idx) {
		return ExcludeUnvisited
	}
	if !gr.Included(c.Idx) {
		return ExcludeVisited
	}
	return Include
}

// Grow floods from seed into sel and returns the number of pixels reached,
// excluding the seed. See the package documentation for the traversal rules.
// sel is validated before any mutation; on error it is left untouched.
//
// Time:   O(W×H×d).
// Memory: O(W×H).
func (gr *Grower) Grow(seed pixel.Coordinate, sel selection.Mask, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := gr.grid.Width, gr.grid.Height
	if err := selection.CheckDims(w, h, len(sel)); err != nil {
		return 0, err
	}
	if !seed.Valid(w, h) {
		return 0, fmt.Errorf("%w: %v on %dx%d grid", ErrInvalidSeed, seed, w, h)
	}
	// recompute Idx so a caller-built Coordinate cannot disagree with (X,Y)
	seed = pixel.FromXY(seed.X, seed.Y, w)

	start := time.Now()
	visited := make([]bool, w*h)
	queue := make([]pixel.Coordinate, 1, 64)
	queue[0] = seed
	sel[seed.Idx] = true

	count := 0
	d := gr.nb.Count()
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for i := 0; i < d; i++ {
			n := gr.nb.Neighbor(u, i, w)
			if !n.Valid(w, h) || n.Idx == seed.Idx || visited[n.Idx] {
				continue
			}
			switch gr.Classify(n) {
			case ExcludeUnvisited:
				continue
			case ExcludeVisited:
				visited[n.Idx] = true
			case Include:
				visited[n.Idx] = true
				sel[n.Idx] = true
				count++
				o.OnInclude(n)
				queue = append(queue, n)
			}
		}
	}

	o.Logger.Debug(component, "region grown", map[string]interface{}{
		"neighborhood": gr.nb.String(),
		"seed":         seed.String(),
		"count":        count,
		"elapsed_ms":   time.Since(start).Milliseconds(),
	})
	return count, nil
}

// Grow is a convenience wrapper: NewGrower(g, labels, p).Grow(seed, sel, opts...).
func Grow(g *grid.Grid, labels label.View, seed pixel.Coordinate, p Params, sel selection.Mask, opts ...Option) (int, error) {
	gr, err := NewGrower(g, labels, p)
	if err != nil {
		return 0, err
	}
	return gr.Grow(seed, sel, opts...)
}
