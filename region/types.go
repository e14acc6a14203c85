package region

import (
	"errors"

	"github.com/cirko54/SegToolCirko/internal/logger"
	"github.com/cirko54/SegToolCirko/pixel"
	"github.com/cirko54/SegToolCirko/selection"
)

// Sentinel errors for region growing.
var (
	// ErrNilGrid is returned when a nil grid is supplied.
	ErrNilGrid = errors.New("region: grid is nil")

	// ErrInvalidSeed is returned when the seed lies outside the grid.
	ErrInvalidSeed = errors.New("region: seed coordinate out of grid bounds")

	// ErrInvalidParams is returned when Params cannot be used.
	ErrInvalidParams = errors.New("region: invalid parameters")

	// ErrDimensionMismatch aliases selection.ErrDimensionMismatch.
	ErrDimensionMismatch = selection.ErrDimensionMismatch
)

// DefaultMaxThreshold is the upper threshold used by DefaultParams.
const DefaultMaxThreshold = 255 * 255

// Params holds the inclusion criteria and connectivity of a growth call.
type Params struct {
	// MinThreshold and MaxThreshold bound the masked intensity, inclusive.
	MinThreshold, MaxThreshold int

	// UseThresholdRange enables the range predicate. When false the
	// predicate rejects every pixel and growth selects only the seed.
	UseThresholdRange bool

	// StopAtOtherLabels skips neighbors that carry a reserved label.
	StopAtOtherLabels bool

	// Neighbors is the neighbor count: 4, 8, or any positive ring count.
	Neighbors int
}

// DefaultParams returns Params with the full 0..255*255 range enabled,
// StopAtOtherLabels set and 4-connectivity.
func DefaultParams() Params {
	return Params{
		MinThreshold:      0,
		MaxThreshold:      DefaultMaxThreshold,
		UseThresholdRange: true,
		StopAtOtherLabels: true,
		Neighbors:         4,
	}
}

// Class is the outcome of classifying one neighbor during growth.
type Class int

const (
	// Include: visited, selected, counted and enqueued.
	Include Class = iota
	// ExcludeVisited: fails the predicate; visited but not selected.
	ExcludeVisited
	// ExcludeUnvisited: reserved label with StopAtOtherLabels; left unvisited.
	ExcludeUnvisited
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Include:
		return "include"
	case ExcludeVisited:
		return "exclude-visited"
	case ExcludeUnvisited:
		return "exclude-unvisited"
	default:
		return "unknown"
	}
}

// Option configures a growth call via functional arguments.
type Option func(*Options)

// Options holds logging and hooks for a growth call.
type Options struct {
	// Logger receives one debug record per call.
	Logger logger.Logger

	// OnInclude is called for every included pixel, in visit order.
	OnInclude func(c pixel.Coordinate)
}

// DefaultOptions returns Options with a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:    logger.Nop(),
		OnInclude: func(pixel.Coordinate) {},
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnInclude registers a hook run for each included pixel. A nil fn is ignored.
func WithOnInclude(fn func(c pixel.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInclude = fn
		}
	}
}
