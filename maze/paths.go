package maze

// unset marks a cell not yet discovered in parent and length slices.
const unset = -1

// Adjacency returns, for every cell, its tree neighbours. Each edge
// contributes an entry in both directions; entries follow edge commit
// order. The view is rebuilt on every call and owned by the caller.
//
// Complexity: O(W·H) time and memory.
func (m *Maze) Adjacency() [][]int {
	cells := m.grid.Cells()

	// Size every row up front so all rows share one backing array.
	degree := make([]int, cells)
	for _, e := range m.edges {
		degree[e.Parent]++
		degree[e.Child]++
	}
	backing := make([]int, 0, 2*len(m.edges))
	adj := make([][]int, cells)
	for n, d := range degree {
		adj[n] = backing[len(backing) : len(backing) : len(backing)+d]
		backing = backing[:len(backing)+d]
	}
	for _, e := range m.edges {
		adj[e.Parent] = append(adj[e.Parent], e.Child)
		adj[e.Child] = append(adj[e.Child], e.Parent)
	}
	return adj
}

// walk is the result of one depth-first traversal from a start cell.
type walk struct {
	start  int
	parent []int // parent[start] == start; unset if not reached
	length []int // tree edges from start; unset if not reached
	far    int   // first discovered cell at maximal length
}

// traverse runs an iterative DFS from start over the tree. If stop is a
// valid cell the traversal returns as soon as stop is discovered; pass
// unset to visit every cell.
//
// On a tree every cell is discovered exactly once, through the only path
// from start, so parent links and lengths are final when first assigned.
//
// Complexity: O(W·H) time and memory.
func (m *Maze) traverse(start, stop int) *walk {
	adj := m.Adjacency()
	cells := len(adj)

	w := &walk{
		start:  start,
		parent: make([]int, cells),
		length: make([]int, cells),
		far:    start,
	}
	for i := range w.parent {
		w.parent[i] = unset
		w.length[i] = unset
	}
	w.parent[start] = start
	w.length[start] = 0
	if start == stop {
		return w
	}

	todo := newRandomPool[int](cells)
	todo.insert(start)
	for todo.size() > 0 {
		node, _ := todo.pop()
		for _, child := range adj[node] {
			if w.parent[child] != unset {
				continue
			}
			w.parent[child] = node
			w.length[child] = w.length[node] + 1
			if w.length[child] > w.length[w.far] {
				w.far = child
			}
			if child == stop {
				return w
			}
			todo.insert(child)
		}
	}
	return w
}

// pathTo reconstructs the path start → end by following parent links.
// end must have been reached by the traversal.
func (w *walk) pathTo(end int) []int {
	path := make([]int, w.length[end]+1)
	node := end
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = node
		node = w.parent[node]
	}
	return path
}

// ShortestPath returns the cells from start to end inclusive. In a tree
// the path between two cells is unique, so it is both the only and the
// shortest one. ShortestPath(s, s) is [s].
//
// Returns ErrInvalidCellIndex if either argument is outside the grid.
//
// Complexity: O(W·H) time and memory.
func (m *Maze) ShortestPath(start, end int) ([]int, error) {
	if err := m.checkCell(start); err != nil {
		return nil, err
	}
	if err := m.checkCell(end); err != nil {
		return nil, err
	}
	return m.traverse(start, end).pathTo(end), nil
}

// Solution returns the path from the top-left cell (0) to the bottom-right
// cell (W·H-1).
func (m *Maze) Solution() []int {
	return m.traverse(0, m.grid.Cells()-1).pathTo(m.grid.Cells() - 1)
}

// LongestPathFrom returns the longest simple path beginning at start.
// It ends at a leaf of the tree, or is [start] for a single-cell maze.
// Ties are broken in favour of the cell discovered first.
//
// Returns ErrInvalidCellIndex if start is outside the grid.
//
// Complexity: O(W·H) time and memory.
func (m *Maze) LongestPathFrom(start int) ([]int, error) {
	if err := m.checkCell(start); err != nil {
		return nil, err
	}
	w := m.traverse(start, unset)
	return w.pathTo(w.far), nil
}

// Distances returns the number of tree edges between start and every cell.
//
// Returns ErrInvalidCellIndex if start is outside the grid.
func (m *Maze) Distances(start int) ([]int, error) {
	if err := m.checkCell(start); err != nil {
		return nil, err
	}
	return m.traverse(start, unset).length, nil
}

// DiameterFrom computes the longest path in the maze using two passes:
// the farthest cell u from any cell is an endpoint of some longest path
// of a tree, and the farthest cell from u is the other endpoint. The
// length of the result does not depend on from; only the choice between
// several equally long paths does.
//
// Returns ErrInvalidCellIndex if from is outside the grid.
//
// Complexity: O(W·H) time and memory.
func (m *Maze) DiameterFrom(from int) ([]int, error) {
	first, err := m.LongestPathFrom(from)
	if err != nil {
		return nil, err
	}
	return m.LongestPathFrom(first[len(first)-1])
}

// DiameterPath returns a longest simple path of the maze, starting the
// two-pass search from cell 0.
func (m *Maze) DiameterPath() []int {
	w := m.traverse(0, unset)
	w = m.traverse(w.far, unset)
	return w.pathTo(w.far)
}
