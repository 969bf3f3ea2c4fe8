// Package grid maps the cells of a rectangular W×H grid to linear indices
// and back, and enumerates orthogonal neighbours of a cell.
//
// What:
//
//   - Grid is a value type holding Width and Height.
//   - Cells are identified by a row-major index: index = y*Width + x.
//   - Adjacent lists the up-to-4 in-bounds neighbours in the fixed order
//     up, left, right, down.
//   - Direction names the side of a cell a neighbour lies on, which is what
//     a renderer needs to turn a maze edge into a removed wall.
//
// Why:
//
//   - Index-based topology keeps the maze graph free of cell objects and
//     back-references; neighbours are computed on demand.
//
// Complexity:
//
//   - Coordinate, Index, InBounds, Contains, Direction: O(1).
//   - Adjacent, AppendAdjacent:                        O(1), at most 4 results.
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive, or W·H overflows int.
//   - ErrCellOutOfRange:   a cell index lies outside [0, Width*Height).
package grid
