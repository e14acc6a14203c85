package segment_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cirko54/SegToolCirko/grid"
	"github.com/cirko54/SegToolCirko/internal/logger"
	"github.com/cirko54/SegToolCirko/label"
	"github.com/cirko54/SegToolCirko/morphology"
	"github.com/cirko54/SegToolCirko/region"
	"github.com/cirko54/SegToolCirko/segment"
	"github.com/cirko54/SegToolCirko/selection"
)

// SessionSuite drives a session over a 6×4 grid with two bright blobs:
//
//	900 900   0   0   0   0
//	900 900   0   0 700 700
//	  0   0   0   0 700 700
//	  0   0   0   0   0   0
type SessionSuite struct {
	suite.Suite
	g   *grid.Grid
	buf bytes.Buffer
	s   *segment.Session
}

const width, height = 6, 4

func (ss *SessionSuite) SetupTest() {
	px := []int16{
		900, 900, 0, 0, 0, 0,
		900, 900, 0, 0, 700, 700,
		0, 0, 0, 0, 700, 700,
		0, 0, 0, 0, 0, 0,
	}
	g, err := grid.New(width, height, px)
	ss.Require().NoError(err)
	ss.g = g
	ss.buf.Reset()

	p := region.DefaultParams()
	p.MinThreshold, p.MaxThreshold = 500, 1000
	ss.s, err = segment.NewSession(g,
		segment.WithParams(p),
		segment.WithLogger(logger.NewZerolog(&ss.buf, zerolog.InfoLevel)),
	)
	ss.Require().NoError(err)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// TestGrowModes replaces, adds and subtracts grown regions.
func (ss *SessionSuite) TestGrowModes() {
	n, err := ss.s.Grow(0, 0, segment.Replace)
	ss.Require().NoError(err)
	ss.Equal(3, n)
	ss.Equal([]int{0, 1, 6, 7}, ss.s.Selection().Indices())

	n, err = ss.s.Grow(4, 1, segment.Add)
	ss.Require().NoError(err)
	ss.Equal(3, n)
	ss.Equal(8, ss.s.Selection().Count())

	_, err = ss.s.Grow(1, 1, segment.Subtract)
	ss.Require().NoError(err)
	ss.Equal([]int{10, 11, 16, 17}, ss.s.Selection().Indices())

	_, err = ss.s.Grow(5, 2, segment.Replace)
	ss.Require().NoError(err)
	ss.Equal([]int{10, 11, 16, 17}, ss.s.Selection().Indices())

	ss.Contains(ss.buf.String(), `"mode":"subtract"`)
}

// TestGrowErrors leaves the selection untouched on failure.
func (ss *SessionSuite) TestGrowErrors() {
	_, err := ss.s.Grow(0, 0, segment.Replace)
	ss.Require().NoError(err)
	before := ss.s.Selection()

	_, err = ss.s.Grow(width, 0, segment.Add)
	ss.ErrorIs(err, region.ErrInvalidSeed)
	_, err = ss.s.Grow(0, 0, segment.Mode(9))
	ss.ErrorIs(err, segment.ErrMode)
	ss.Equal(before, ss.s.Selection())
	ss.Contains(ss.buf.String(), `"level":"error"`)
}

// TestLabelsStopGrowth saves a blob as a label and checks that later growth
// through it stops only while StopAtOtherLabels is set.
func (ss *SessionSuite) TestLabelsStopGrowth() {
	_, err := ss.s.Grow(0, 0, segment.Replace)
	ss.Require().NoError(err)
	ss.Require().NoError(ss.s.SaveLabel(1))
	ss.True(ss.s.Labels().Reserved(0))

	// Grow over the whole dark background from (3,3).
	p := ss.s.Params()
	p.MinThreshold, p.MaxThreshold = 0, 1000
	ss.Require().NoError(ss.s.SetParams(p))

	_, err = ss.s.Grow(3, 3, segment.Replace)
	ss.Require().NoError(err)
	sel := ss.s.Selection()
	ss.False(sel[0], "labeled blob must stop growth")
	ss.True(sel[10], "unlabeled blob is reachable")

	p.StopAtOtherLabels = false
	ss.Require().NoError(ss.s.SetParams(p))
	_, err = ss.s.Grow(3, 3, segment.Replace)
	ss.Require().NoError(err)
	ss.Equal(width*height, ss.s.Selection().Count())

	ss.Require().NoError(ss.s.SelectLabel(1))
	ss.Equal([]int{0, 1, 6, 7}, ss.s.Selection().Indices())

	ss.Require().NoError(ss.s.ClearLabel(1))
	ss.False(ss.s.Labels().Reserved(0))
	ss.ErrorIs(ss.s.SaveLabel(9), label.ErrLabelRange)
}

// TestMorphology erodes and dilates the current selection in place.
func (ss *SessionSuite) TestMorphology() {
	_, err := ss.s.Grow(4, 1, segment.Replace)
	ss.Require().NoError(err)

	ss.Require().NoError(ss.s.Dilate(3))
	ss.Equal(12, ss.s.Selection().Count()) // x 3..5, y 0..3

	ss.Require().NoError(ss.s.Erode(3))
	// column x=3 sees the unselected x=2; the grid edge erodes nothing
	ss.Equal([]int{4, 5, 10, 11, 16, 17, 22, 23}, ss.s.Selection().Indices())
	ss.ErrorIs(ss.s.Erode(2), morphology.ErrKernelSize)
	ss.True(strings.Contains(ss.buf.String(), `"message":"dilate"`))
}

// TestStatsAndComponents summarizes a two-blob selection.
func (ss *SessionSuite) TestStatsAndComponents() {
	_, err := ss.s.Grow(0, 0, segment.Replace)
	ss.Require().NoError(err)
	_, err = ss.s.Grow(5, 2, segment.Add)
	ss.Require().NoError(err)

	st, err := ss.s.Stats()
	ss.Require().NoError(err)
	ss.Equal(8, st.Count)
	ss.Equal(700, st.Min)
	ss.Equal(900, st.Max)
	ss.InDelta(800.0, st.Mean, 1e-9)

	comps, err := ss.s.Components()
	ss.Require().NoError(err)
	ss.Len(comps, 2)

	ss.s.ClearSelection()
	ss.Zero(ss.s.Selection().Count())
}

func (ss *SessionSuite) TestSetSelection() {
	m := selection.New(width * height)
	m[3] = true
	ss.Require().NoError(ss.s.SetSelection(m))
	m[4] = true
	ss.Equal([]int{3}, ss.s.Selection().Indices(), "session keeps its own copy")
	ss.ErrorIs(ss.s.SetSelection(selection.New(3)), selection.ErrDimensionMismatch)
	ss.ErrorIs(ss.s.SetParams(region.Params{}), region.ErrInvalidParams)
}

// TestNewSession_Defaults derives thresholds from the grid.
func TestNewSession_Defaults(t *testing.T) {
	g, err := grid.New(2, 1, []int16{40, 300})
	require.NoError(t, err)
	s, err := segment.NewSession(g)
	require.NoError(t, err)

	p := s.Params()
	assert.Equal(t, 40, p.MinThreshold)
	assert.Equal(t, 300, p.MaxThreshold)
	assert.Equal(t, 4, p.Neighbors)
	assert.True(t, p.UseThresholdRange)
	assert.True(t, p.StopAtOtherLabels)
	assert.Same(t, g, s.Grid())
}

func TestNewSession_Errors(t *testing.T) {
	_, err := segment.NewSession(nil)
	require.ErrorIs(t, err, segment.ErrNilGrid)

	g, _ := grid.New(2, 2, make([]int16, 4))
	_, err = segment.NewSession(g, segment.WithParams(region.Params{Neighbors: -1}))
	require.ErrorIs(t, err, segment.ErrOptionViolation)

	_, err = segment.NewSession(g, segment.WithLabels(label.NewStore(3)))
	require.ErrorIs(t, err, segment.ErrOptionViolation)

	s, err := segment.NewSession(g, segment.WithLabels(label.FromSlice([]uint8{2, 0, 0, 0})))
	require.NoError(t, err)
	assert.True(t, s.Labels().Reserved(0))
}
