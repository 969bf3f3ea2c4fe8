package grid

import (
	"fmt"
	"math"
)

// New returns a Grid of the given dimensions.
// Returns ErrInvalidDimension if width ≤ 0, height ≤ 0, or width*height
// does not fit in an int.
// Complexity: O(1).
func New(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return Grid{}, ErrInvalidDimension
	}
	return Grid{Width: width, Height: height}, nil
}

// Cells returns the number of cells, Width*Height.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether n is a valid cell index.
func (g Grid) Contains(n int) bool {
	return n >= 0 && n < g.Cells()
}

// CheckCell returns ErrCellOutOfRange, wrapped with n, if !Contains(n).
func (g Grid) CheckCell(n int) error {
	if !g.Contains(n) {
		return fmt.Errorf("cell %d not in [0,%d): %w", n, g.Cells(), ErrCellOutOfRange)
	}
	return nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The result is meaningless when !InBounds(x, y).
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g Grid) Coordinate(n int) (x, y int) {
	return n % g.Width, n / g.Width
}

// Adjacent returns the in-bounds neighbours of cell n in the order
// up, left, right, down. n must satisfy Contains(n).
// Complexity: O(1).
func (g Grid) Adjacent(n int) []int {
	return g.AppendAdjacent(make([]int, 0, len(offsets)), n)
}

// AppendAdjacent appends the neighbours of n to dst and returns the extended
// slice. It lets hot loops reuse one buffer instead of allocating per cell.
func (g Grid) AppendAdjacent(dst []int, n int) []int {
	x, y := g.Coordinate(n)
	for _, d := range offsets {
		ax, ay := x+d[0], y+d[1]
		if g.InBounds(ax, ay) {
			dst = append(dst, g.Index(ax, ay))
		}
	}
	return dst
}

// Direction reports on which side of cell from the cell to lies.
// ok is false when the two cells are not orthogonal neighbours.
// Complexity: O(1).
func (g Grid) Direction(from, to int) (d Direction, ok bool) {
	if !g.Contains(from) || !g.Contains(to) {
		return 0, false
	}
	fx, fy := g.Coordinate(from)
	tx, ty := g.Coordinate(to)
	for i, o := range offsets {
		if fx+o[0] == tx && fy+o[1] == ty {
			return Direction(i), true
		}
	}
	return 0, false
}
