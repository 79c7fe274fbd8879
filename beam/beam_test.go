package beam_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridsearch/beam"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

const smallField = ".\\.\n...\n.-/"

const contraption = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

var topLeftEast = beam.Ray{Pos: gridgraph.Coord{}, Heading: gridgraph.East}

// BeamSuite exercises ray propagation over the contraption fixtures.
type BeamSuite struct {
	suite.Suite
}

// TestSmallField energizes 8 of 9 cells: every cell except the middle-left one.
func (s *BeamSuite) TestSmallField() {
	f, err := beam.Parse(smallField)
	require.NoError(s.T(), err)
	n, err := f.Energized(topLeftEast)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, n)
}

// TestContraption checks the 10×10 fixture from the top-left corner.
func (s *BeamSuite) TestContraption() {
	f, err := beam.Parse(contraption)
	require.NoError(s.T(), err)
	n, err := f.Energized(topLeftEast)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 46, n)
}

// TestMaxEnergized sweeps all edge entries in parallel.
func (s *BeamSuite) TestMaxEnergized() {
	f, err := beam.Parse(contraption)
	require.NoError(s.T(), err)
	require.Len(s.T(), f.Entries(), 40)

	for _, workers := range []int{0, 1, 4} {
		best, at, err := f.MaxEnergized(context.Background(), workers)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 51, best)
		require.Equal(s.T(), beam.Ray{Pos: gridgraph.Coord{Row: 0, Col: 3}, Heading: gridgraph.South}, at)
	}
}

// TestMaxEnergized_Cancelled surfaces the context error.
func (s *BeamSuite) TestMaxEnergized_Cancelled() {
	f, err := beam.Parse(contraption)
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = f.MaxEnergized(ctx, 2)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestSplitters checks fan-out against the axis of each splitter.
func (s *BeamSuite) TestSplitters() {
	f, err := beam.Parse("...\n.|.\n.-.")
	require.NoError(s.T(), err)

	mid := gridgraph.Coord{Row: 1, Col: 1}
	// perpendicular: split into two
	succ := f.Successors(beam.Ray{Pos: mid, Heading: gridgraph.East})
	require.ElementsMatch(s.T(), []search.Edge[beam.Ray]{
		{To: beam.Ray{Pos: gridgraph.Coord{Row: 0, Col: 1}, Heading: gridgraph.North}, Cost: 1},
		{To: beam.Ray{Pos: gridgraph.Coord{Row: 2, Col: 1}, Heading: gridgraph.South}, Cost: 1},
	}, succ)
	// parallel: pass through
	succ = f.Successors(beam.Ray{Pos: mid, Heading: gridgraph.South})
	require.Equal(s.T(), []search.Edge[beam.Ray]{
		{To: beam.Ray{Pos: gridgraph.Coord{Row: 2, Col: 1}, Heading: gridgraph.South}, Cost: 1},
	}, succ)

	// '-' at the bottom edge hit heading South: East and West only.
	bottom := gridgraph.Coord{Row: 2, Col: 1}
	succ = f.Successors(beam.Ray{Pos: bottom, Heading: gridgraph.South})
	require.Len(s.T(), succ, 2)
	// heading out of the grid: nothing
	succ = f.Successors(beam.Ray{Pos: gridgraph.Coord{Row: 2, Col: 2}, Heading: gridgraph.East})
	require.Empty(s.T(), succ)
}

// TestMirrorLoop makes sure a ray trapped in a mirror cycle terminates.
func (s *BeamSuite) TestMirrorLoop() {
	f, err := beam.Parse("/.\\\n...\n\\./")
	require.NoError(s.T(), err)
	n, err := f.Energized(beam.Ray{Pos: gridgraph.Coord{Row: 0, Col: 1}, Heading: gridgraph.East})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, n)
}

// TestParseErrors rejects unknown tiles and out-of-grid entries.
func (s *BeamSuite) TestParseErrors() {
	_, err := beam.Parse(".x.")
	require.True(s.T(), errors.Is(err, gridgraph.ErrMalformedInput))

	f, err := beam.Parse(smallField)
	require.NoError(s.T(), err)
	_, err = f.Energized(beam.Ray{Pos: gridgraph.Coord{Row: 5, Col: 0}})
	require.ErrorIs(s.T(), err, search.ErrSourceNotFound)
	require.Equal(s.T(), smallField, f.String())
}

func TestBeamSuite(t *testing.T) {
	suite.Run(t, new(BeamSuite))
}

// BenchmarkMaxEnergized measures the parallel sweep on the 10×10 fixture.
func BenchmarkMaxEnergized(b *testing.B) {
	f, err := beam.Parse(contraption)
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := f.MaxEnergized(context.Background(), 0); err != nil {
			b.Fatal(err)
		}
	}
}
