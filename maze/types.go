// Package maze defines the Edge type, generation options, and sentinel
// errors for the maze subpackage of github.com/katalvlaran/mazetree.
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazetree/grid"
)

// Sentinel errors for maze construction and queries.
var (
	// ErrInvalidDimension is returned by New when width or height ≤ 0.
	// It wraps grid.ErrInvalidDimension.
	ErrInvalidDimension = fmt.Errorf("maze: invalid dimension: %w", grid.ErrInvalidDimension)

	// ErrInvalidCellIndex is returned when a query argument is outside [0, W·H).
	// It wraps grid.ErrCellOutOfRange.
	ErrInvalidCellIndex = fmt.Errorf("maze: invalid cell index: %w", grid.ErrCellOutOfRange)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrEmptyPool signals that the candidate frontier ran dry while cells
	// were still unexplored. It indicates a broken generator invariant.
	ErrEmptyPool = errors.New("maze: internal error: candidate pool is empty")
)

// Sentinel errors reported by ValidateSpanningTree and ValidatePath.
var (
	// ErrEdgeCount indicates an edge set whose size is not W·H-1.
	ErrEdgeCount = errors.New("maze: edge count is not cells-1")
	// ErrNotAdjacent indicates an edge joining cells that are not grid neighbours.
	ErrNotAdjacent = errors.New("maze: edge joins non-adjacent cells")
	// ErrCycle indicates an edge closing a cycle.
	ErrCycle = errors.New("maze: edge set contains a cycle")
	// ErrBrokenPath indicates consecutive path cells without a passage between them.
	ErrBrokenPath = errors.New("maze: path steps through a wall")
	// ErrRepeatedCell indicates a path visiting the same cell twice.
	ErrRepeatedCell = errors.New("maze: path repeats a cell")
)

// Edge is a passage discovered during generation. Parent was explored
// before Child. Traversal treats the edge as undirected.
type Edge struct {
	Parent int `json:"parent" yaml:"parent"`
	Child  int `json:"child" yaml:"child"`
}

// Option configures maze generation via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when New is invoked. A recorded error is sticky:
// later valid options in the same list (WithRand(r), WithSeed(s)) do not
// clear it, and New fails.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed initialises the generator's PRNG when Rand is nil and seeded is set.
	Seed int64

	// Rand, if non-nil, is used as the randomness source verbatim.
	// It must not be shared with other goroutines while New runs.
	Rand *rand.Rand

	seeded bool
	err    error
}

// DefaultOptions returns Options that draw a fresh time-based seed.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed returns an Option that makes generation reproducible:
// the same (width, height, seed) always yields the same edge list.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithRand returns an Option that uses r as the randomness source.
// Passing nil records ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}
