package maze

import (
	"fmt"

	"github.com/katalvlaran/mazetree/grid"
)

// Maze is a perfect maze: a spanning tree over the cells of a grid.
// It is immutable once New returns and safe for concurrent queries.
type Maze struct {
	grid  grid.Grid
	edges []Edge
	seed  int64
}

// New generates a maze of width×height cells.
// Generation runs to completion before New returns; there is no partially
// built maze.
//
// Returns ErrInvalidDimension if width ≤ 0 or height ≤ 0, and
// ErrOptionViolation if an Option was invalid. Both are checked before any
// generation work starts.
//
// Complexity: O(W·H) expected time and memory.
func New(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimension)
	}

	rng, seed := rngFromOptions(o)
	edges, err := generate(g, rng)
	if err != nil {
		return nil, fmt.Errorf("maze: generate %dx%d: %w", width, height, err)
	}

	return &Maze{grid: g, edges: edges, seed: seed}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.Width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height }

// Grid returns the underlying grid topology.
func (m *Maze) Grid() grid.Grid { return m.grid }

// Seed returns the seed the generator was initialised with, or 0 when the
// randomness source was injected with WithRand.
func (m *Maze) Seed() int64 { return m.seed }

// Edges returns a copy of the spanning tree edges in commit order.
func (m *Maze) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// checkCell returns ErrInvalidCellIndex (wrapped with n) if n is outside
// the grid. ErrInvalidCellIndex itself wraps grid.ErrCellOutOfRange.
func (m *Maze) checkCell(n int) error {
	if err := m.grid.CheckCell(n); err != nil {
		return fmt.Errorf("cell %d: %w", n, ErrInvalidCellIndex)
	}
	return nil
}
