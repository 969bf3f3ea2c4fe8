package maze_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazetree/grid"
	"github.com/katalvlaran/mazetree/maze"
)

// MazeSuite exercises construction and structural properties of generated mazes.
type MazeSuite struct {
	suite.Suite
}

// TestInvalidDimensions verifies that non-positive sizes are rejected
// before generation and that no maze is returned.
func (s *MazeSuite) TestInvalidDimensions() {
	// The last two overflow W·H even though both sides are positive.
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}, {math.MaxInt/2 + 1, 2}, {math.MaxInt, math.MaxInt}} {
		m, err := maze.New(wh[0], wh[1], maze.WithSeed(1))
		require.Nil(s.T(), m)
		require.True(s.T(), errors.Is(err, maze.ErrInvalidDimension), "New(%d,%d): %v", wh[0], wh[1], err)
		require.True(s.T(), errors.Is(err, grid.ErrInvalidDimension), "must wrap grid error")
	}
}

// TestNilRandOption ensures WithRand(nil) is surfaced as ErrOptionViolation.
func (s *MazeSuite) TestNilRandOption() {
	m, err := maze.New(3, 3, maze.WithRand(nil))
	require.Nil(s.T(), m)
	require.True(s.T(), errors.Is(err, maze.ErrOptionViolation))
}

// TestOptionErrorIsSticky checks that a recorded option error survives
// later valid options in the same list.
func (s *MazeSuite) TestOptionErrorIsSticky() {
	m, err := maze.New(3, 3, maze.WithRand(nil), maze.WithRand(rand.New(rand.NewSource(1))), maze.WithSeed(2))
	require.Nil(s.T(), m)
	require.True(s.T(), errors.Is(err, maze.ErrOptionViolation))
}

// TestEdgeCountAndSpanningTree checks W·H-1 edges and the spanning-tree
// property across a spread of shapes and seeds.
func (s *MazeSuite) TestEdgeCountAndSpanningTree() {
	shapes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {3, 3}, {5, 2}, {1, 17}, {8, 13}, {20, 20}}
	for _, wh := range shapes {
		for seed := int64(1); seed <= 10; seed++ {
			m, err := maze.New(wh[0], wh[1], maze.WithSeed(seed))
			require.NoError(s.T(), err)
			edges := m.Edges()
			require.Len(s.T(), edges, wh[0]*wh[1]-1, "%dx%d seed %d", wh[0], wh[1], seed)
			require.NoError(s.T(), maze.ValidateSpanningTree(wh[0], wh[1], edges), "%dx%d seed %d", wh[0], wh[1], seed)
		}
	}
}

// TestSingleCell covers the 1×1 scenario: no edges, trivial paths.
func (s *MazeSuite) TestSingleCell() {
	m, err := maze.New(1, 1, maze.WithSeed(7))
	require.NoError(s.T(), err)
	require.Empty(s.T(), m.Edges())

	p, err := m.ShortestPath(0, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0}, p)
	require.Equal(s.T(), []int{0}, m.Solution())
	require.Equal(s.T(), []int{0}, m.DiameterPath())

	lp, err := m.LongestPathFrom(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0}, lp)
}

// TestTwoCells covers the 2×1 scenario: one edge in either orientation.
func (s *MazeSuite) TestTwoCells() {
	sawForward, sawBackward := false, false
	for seed := int64(1); seed <= 20; seed++ {
		m, err := maze.New(2, 1, maze.WithSeed(seed))
		require.NoError(s.T(), err)
		edges := m.Edges()
		require.Len(s.T(), edges, 1)
		switch edges[0] {
		case maze.Edge{Parent: 0, Child: 1}:
			sawForward = true
		case maze.Edge{Parent: 1, Child: 0}:
			sawBackward = true
		default:
			s.T().Fatalf("unexpected edge %+v", edges[0])
		}

		p, err := m.ShortestPath(0, 1)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{0, 1}, p)
	}
	require.True(s.T(), sawForward && sawBackward, "20 seeds should pick both seed cells")
}

// TestSeedDeterminism verifies that the same seed reproduces the same maze
// and that Seed reports it.
func (s *MazeSuite) TestSeedDeterminism() {
	a, err := maze.New(15, 9, maze.WithSeed(2024))
	require.NoError(s.T(), err)
	b, err := maze.New(15, 9, maze.WithSeed(2024))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Edges(), b.Edges())
	require.Equal(s.T(), int64(2024), a.Seed())

	c, err := maze.New(15, 9, maze.WithSeed(2025))
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), a.Edges(), c.Edges(), "different seeds should differ on 135 cells")
}

// TestUnseededReportsSeed checks that an unseeded maze can be regenerated
// from the seed it reports.
func (s *MazeSuite) TestUnseededReportsSeed() {
	a, err := maze.New(10, 10)
	require.NoError(s.T(), err)
	b, err := maze.New(10, 10, maze.WithSeed(a.Seed()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Edges(), b.Edges())
}

// TestWithRand uses an injected source; Seed is then unknown and reported as 0.
func (s *MazeSuite) TestWithRand() {
	m, err := maze.New(4, 4, maze.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), m.Seed())

	want, err := maze.New(4, 4, maze.WithSeed(9))
	require.NoError(s.T(), err)
	require.Equal(s.T(), want.Edges(), m.Edges(), "WithRand(NewSource(9)) ≡ WithSeed(9)")
}

// TestEdgesIsACopy ensures callers cannot mutate the maze through Edges.
func (s *MazeSuite) TestEdgesIsACopy() {
	m, err := maze.New(3, 3, maze.WithSeed(4))
	require.NoError(s.T(), err)
	e := m.Edges()
	e[0] = maze.Edge{Parent: -1, Child: -1}
	require.NotEqual(s.T(), e[0], m.Edges()[0])
}

// TestAccessors checks Width, Height and Grid.
func (s *MazeSuite) TestAccessors() {
	m, err := maze.New(6, 4, maze.WithSeed(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, m.Width())
	require.Equal(s.T(), 4, m.Height())
	require.Equal(s.T(), 24, m.Grid().Cells())
}

// TestLargeMaze is the stress scenario: 100×100 within a second.
func (s *MazeSuite) TestLargeMaze() {
	start := time.Now()
	m, err := maze.New(100, 100, maze.WithSeed(31))
	require.NoError(s.T(), err)
	require.Less(s.T(), time.Since(start), time.Second)
	require.NoError(s.T(), maze.ValidateSpanningTree(100, 100, m.Edges()))
}

// TestMazeSuite runs the MazeSuite.
func TestMazeSuite(t *testing.T) {
	suite.Run(t, new(MazeSuite))
}
