// Package maze generates perfect mazes on a rectangular grid and answers
// path queries over them.
//
// A perfect maze is a spanning tree of the grid graph: every cell is
// reachable from every other cell by exactly one simple path. New grows the
// tree with a randomised frontier algorithm (a Prim variant with uniform
// edge selection); the result is stored as the ordered list of committed
// edges (parent, child), parent being the cell explored first.
//
// Key features:
//   - New(w, h, opts...):       build a maze; WithSeed makes it reproducible.
//   - Edges():                  the spanning tree in commit order.
//   - ShortestPath(s, e):       the unique tree path between two cells.
//   - Solution():               ShortestPath from top-left to bottom-right.
//   - LongestPathFrom(s):       the longest simple path starting at s.
//   - DiameterPath():           the longest path in the whole maze.
//   - Distances(s):             tree distance from s to every cell.
//   - Open(a, b), Passages(n):  wall view of the edge set for renderers.
//   - ValidateSpanningTree, ValidatePath: structural checks.
//
// Traversals use an explicit LIFO stack, so host stack usage does not grow
// with maze size.
//
// Complexity:
//
//   - New:                    O(W·H) expected time, O(W·H) memory.
//   - Every path query:       O(W·H) time and memory (adjacency is rebuilt).
//   - ValidateSpanningTree:   O(E·α(W·H)).
//
// Errors:
//
//   - ErrInvalidDimension     width or height ≤ 0.
//   - ErrInvalidCellIndex     a query argument outside [0, W·H).
//   - ErrOptionViolation      an invalid Option (nil *rand.Rand).
//   - ErrEmptyPool            internal: frontier exhausted before all cells
//     were explored; unreachable on a connected grid.
//   - ErrEdgeCount, ErrNotAdjacent, ErrCycle, ErrBrokenPath, ErrRepeatedCell
//     from the validators.
package maze
