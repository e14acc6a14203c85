package segment

import (
	"errors"
	"fmt"

	"github.com/cirko54/SegToolCirko/internal/logger"
	"github.com/cirko54/SegToolCirko/label"
	"github.com/cirko54/SegToolCirko/region"
)

// Sentinel errors for session construction and actions.
var (
	// ErrNilGrid is returned when NewSession receives a nil grid.
	ErrNilGrid = errors.New("segment: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("segment: invalid option supplied")

	// ErrMode is returned for an unknown Mode.
	ErrMode = errors.New("segment: unknown selection mode")
)

// Option configures a Session. Invalid options are recorded and surfaced as
// ErrOptionViolation by NewSession.
type Option func(*Options)

// Options holds the session configuration.
type Options struct {
	// Logger receives one record per action.
	Logger logger.Logger

	// Params overrides the default growth parameters when non-nil.
	Params *region.Params

	// Labels seeds the session with an existing label store when non-nil.
	Labels *label.Store

	err error
}

// DefaultOptions returns Options with a discarding logger, default growth
// parameters (thresholds derived from the grid) and an empty label store.
func DefaultOptions() Options {
	return Options{Logger: logger.Nop()}
}

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParams replaces the default growth parameters.
// A non-positive neighbor count is an option violation.
func WithParams(p region.Params) Option {
	return func(o *Options) {
		if p.Neighbors <= 0 {
			o.err = fmt.Errorf("%w: neighbor count %d", ErrOptionViolation, p.Neighbors)
			return
		}
		o.Params = &p
	}
}

// WithLabels starts the session from an existing label store.
// The store size is checked against the grid by NewSession.
func WithLabels(s *label.Store) Option {
	return func(o *Options) {
		if s != nil {
			o.Labels = s
		}
	}
}
