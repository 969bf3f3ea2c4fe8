package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazetree/grid"
)

// generator holds the state of one generation run. Only edges is kept
// once the run ends.
type generator struct {
	grid     grid.Grid
	rng      *rand.Rand
	explored []bool
	frontier *randomPool[Edge]
	edges    []Edge
	nbuf     []int // neighbour scratch buffer
}

// generate grows a random spanning tree over g and returns its edges in
// commit order.
//
// Steps:
//  1. Explore a uniformly random seed cell; queue an edge to each neighbour.
//  2. Repeatedly remove a random candidate (parent, child):
//     • child already explored → stale candidate, discard.
//     • otherwise commit it, explore child, queue child's unexplored neighbours.
//  3. Stop once every cell is explored.
//
// Only edges into unexplored cells are committed, so each non-seed cell
// gains exactly one edge and no cycle can form: the result has W·H-1 edges.
//
// Complexity: O(W·H) expected time; the frontier holds O(W·H) candidates.
func generate(g grid.Grid, rng *rand.Rand) ([]Edge, error) {
	total := g.Cells()
	gen := &generator{
		grid:     g,
		rng:      rng,
		explored: make([]bool, total),
		frontier: newRandomPool[Edge](total),
		edges:    make([]Edge, 0, total-1),
		nbuf:     make([]int, 0, 4),
	}
	if err := gen.grow(rng.Intn(total)); err != nil {
		return nil, err
	}
	return gen.edges, nil
}

// grow explores seed and then commits frontier edges until every cell of
// the grid is explored. The loop ends on the explored count, never on pool
// exhaustion; an empty pool with cells left is reported as ErrEmptyPool.
func (gen *generator) grow(seed int) error {
	total := gen.grid.Cells()
	gen.explore(seed)
	explored := 1

	for explored < total {
		e, ok := gen.frontier.removeRandom(gen.rng)
		if !ok {
			return fmt.Errorf("%d of %d cells explored: %w", explored, total, ErrEmptyPool)
		}
		if gen.explored[e.Child] {
			continue
		}
		gen.edges = append(gen.edges, e)
		gen.explore(e.Child)
		explored++
	}
	return nil
}

// explore marks n explored and queues an edge from n to every unexplored
// grid neighbour.
func (gen *generator) explore(n int) {
	gen.explored[n] = true
	gen.nbuf = gen.grid.AppendAdjacent(gen.nbuf[:0], n)
	for _, child := range gen.nbuf {
		if !gen.explored[child] {
			gen.frontier.insert(Edge{Parent: n, Child: child})
		}
	}
}
