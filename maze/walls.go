package maze

import "github.com/katalvlaran/mazetree/grid"

// passages records, per cell, which of its four sides are open. Bit d is
// set when the wall in grid.Direction d has been removed.
type passages struct {
	grid grid.Grid
	open []uint8
}

// passageSet derives the open-side bitmap from the edge set.
// Complexity: O(W·H) memory, O(E) time.
func (m *Maze) passageSet() passages {
	p := passages{grid: m.grid, open: make([]uint8, m.grid.Cells())}
	for _, e := range m.edges {
		d, ok := m.grid.Direction(e.Parent, e.Child)
		if !ok {
			continue
		}
		p.open[e.Parent] |= 1 << d
		p.open[e.Child] |= 1 << d.Opposite()
	}
	return p
}

// has reports whether a and b are grid neighbours joined by a passage.
func (p passages) has(a, b int) bool {
	d, ok := p.grid.Direction(a, b)
	return ok && p.open[a]&(1<<d) != 0
}

// Open reports whether a passage joins cells a and b. Cells that are not
// grid neighbours, or are out of range, are never open.
//
// Complexity: O(E).
func (m *Maze) Open(a, b int) bool {
	if _, ok := m.grid.Direction(a, b); !ok {
		return false
	}
	for _, e := range m.edges {
		if (e.Parent == a && e.Child == b) || (e.Parent == b && e.Child == a) {
			return true
		}
	}
	return false
}

// Passages returns the open sides of cell n in the order up, left, right,
// down. A renderer removes the wall on each returned side.
//
// Returns ErrInvalidCellIndex if n is outside the grid.
//
// Complexity: O(E).
func (m *Maze) Passages(n int) ([]grid.Direction, error) {
	if err := m.checkCell(n); err != nil {
		return nil, err
	}
	var mask uint8
	for _, e := range m.edges {
		switch n {
		case e.Parent:
			if d, ok := m.grid.Direction(n, e.Child); ok {
				mask |= 1 << d
			}
		case e.Child:
			if d, ok := m.grid.Direction(n, e.Parent); ok {
				mask |= 1 << d
			}
		}
	}
	out := make([]grid.Direction, 0, 4)
	for d := grid.Up; d <= grid.Down; d++ {
		if mask&(1<<d) != 0 {
			out = append(out, d)
		}
	}
	return out, nil
}
