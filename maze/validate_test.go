package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazetree/maze"
)

// TestValidateSpanningTree_Rejects covers each violation on a 2×2 grid:
//
//	0 1
//	2 3
func TestValidateSpanningTree_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		edges []maze.Edge
		want  error
	}{
		{"TooFew", []maze.Edge{{0, 1}, {1, 3}}, maze.ErrEdgeCount},
		{"TooMany", []maze.Edge{{0, 1}, {1, 3}, {3, 2}, {2, 0}}, maze.ErrEdgeCount},
		{"Diagonal", []maze.Edge{{0, 1}, {0, 3}, {3, 2}}, maze.ErrNotAdjacent},
		{"OutOfRange", []maze.Edge{{0, 1}, {1, 3}, {3, 7}}, maze.ErrNotAdjacent},
		{"Duplicate", []maze.Edge{{0, 1}, {1, 0}, {3, 2}}, maze.ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := maze.ValidateSpanningTree(2, 2, tc.edges)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}

	err := maze.ValidateSpanningTree(0, 2, nil)
	assert.True(t, errors.Is(err, maze.ErrInvalidDimension))
}

// TestValidateSpanningTree_Accepts checks a hand-built comb on a 3×2 grid
// and the empty edge set of a single cell.
func TestValidateSpanningTree_Accepts(t *testing.T) {
	comb := []maze.Edge{{0, 1}, {1, 2}, {0, 3}, {1, 4}, {2, 5}}
	require.NoError(t, maze.ValidateSpanningTree(3, 2, comb))
	require.NoError(t, maze.ValidateSpanningTree(1, 1, nil))
}

// TestValidatePath_Rejects covers broken, repeated, empty and out-of-range paths.
func TestValidatePath_Rejects(t *testing.T) {
	m := mustMaze(t, 1, 4, 1) // corridor 0-1-2-3

	assert.NoError(t, maze.ValidatePath(m, []int{1, 2, 3}))
	assert.True(t, errors.Is(maze.ValidatePath(m, nil), maze.ErrBrokenPath))
	assert.True(t, errors.Is(maze.ValidatePath(m, []int{0, 2}), maze.ErrBrokenPath))
	assert.True(t, errors.Is(maze.ValidatePath(m, []int{0, 1, 0}), maze.ErrRepeatedCell))
	assert.True(t, errors.Is(maze.ValidatePath(m, []int{0, 4}), maze.ErrInvalidCellIndex))
}
