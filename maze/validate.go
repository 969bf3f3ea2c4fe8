// Package maze - structural validators for edge sets and paths.
//
// These helpers are deterministic and side-effect free. They report the
// first violation found as a sentinel error from types.go, wrapped with
// the offending edge or step.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazetree/grid"
)

// ValidateSpanningTree reports whether edges form a spanning tree of the
// width×height grid graph:
//  1. exactly W·H-1 edges (ErrEdgeCount);
//  2. every edge joins two in-range, grid-adjacent cells (ErrNotAdjacent);
//  3. no edge closes a cycle (ErrCycle).
//
// W·H-1 acyclic edges over W·H cells are necessarily connected, so
// connectivity needs no separate pass.
//
// Complexity: O(E·α(W·H)) time, O(W·H) memory.
func ValidateSpanningTree(width, height int, edges []Edge) error {
	g, err := grid.New(width, height)
	if err != nil {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimension)
	}
	if len(edges) != g.Cells()-1 {
		return fmt.Errorf("got %d edges for %d cells: %w", len(edges), g.Cells(), ErrEdgeCount)
	}

	// Disjoint-set forest with path halving and union by rank.
	parent := make([]int, g.Cells())
	rank := make([]int, g.Cells())
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	for i, e := range edges {
		if _, ok := g.Direction(e.Parent, e.Child); !ok {
			return fmt.Errorf("edge %d (%d,%d): %w", i, e.Parent, e.Child, ErrNotAdjacent)
		}
		ru, rv := find(e.Parent), find(e.Child)
		if ru == rv {
			return fmt.Errorf("edge %d (%d,%d): %w", i, e.Parent, e.Child, ErrCycle)
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}
	return nil
}

// ValidatePath reports whether path is a simple path through m: every cell
// is in range (ErrInvalidCellIndex), consecutive cells share a passage
// (ErrBrokenPath), and no cell appears twice (ErrRepeatedCell).
// An empty path is rejected with ErrBrokenPath.
//
// Complexity: O(W·H + len(path)).
func ValidatePath(m *Maze, path []int) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path: %w", ErrBrokenPath)
	}
	seen := make([]bool, m.grid.Cells())
	open := m.passageSet()
	for i, n := range path {
		if err := m.checkCell(n); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if seen[n] {
			return fmt.Errorf("step %d cell %d: %w", i, n, ErrRepeatedCell)
		}
		seen[n] = true
		if i > 0 && !open.has(path[i-1], n) {
			return fmt.Errorf("step %d (%d→%d): %w", i, path[i-1], n, ErrBrokenPath)
		}
	}
	return nil
}
