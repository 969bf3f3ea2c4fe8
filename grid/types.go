// Package grid defines the Grid type, neighbour directions, and sentinel
// errors for the grid subpackage of github.com/katalvlaran/mazetree.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a width or height ≤ 0, or a cell count
	// that overflows int.
	ErrInvalidDimension = errors.New("grid: width and height must be positive and width*height must fit in an int")
	// ErrCellOutOfRange indicates a cell index outside [0, Width*Height).
	ErrCellOutOfRange = errors.New("grid: cell index out of range")
)

// Direction identifies one of the four orthogonal sides of a cell.
type Direction int

const (
	// Up is the neighbour at (x, y-1).
	Up Direction = iota
	// Left is the neighbour at (x-1, y).
	Left
	// Right is the neighbour at (x+1, y).
	Right
	// Down is the neighbour at (x, y+1).
	Down
)

// offsets holds unit steps in Direction order. The order fixes the order of
// Adjacent results and therefore the bias of any generator consuming them.
var offsets = [4][2]int{
	Up:    {0, -1},
	Left:  {-1, 0},
	Right: {1, 0},
	Down:  {0, 1},
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return Down - d
}

// Grid is an immutable W×H rectangle of cells addressed by row-major index.
// The zero value is not usable; construct with New.
type Grid struct {
	Width, Height int
}
