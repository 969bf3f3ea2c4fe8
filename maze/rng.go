// Package maze - randomness source selection for the generator.
//
// Policy:
//   - WithRand(r): r is used verbatim; Maze.Seed reports 0.
//   - WithSeed(s): a fresh math/rand source seeded with s.
//   - neither:     a fresh source seeded from the wall clock; Maze.Seed
//     reports the value drawn so a maze can be regenerated.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every New call builds its own
//     source unless the caller injects one.
package maze

import (
	"math/rand"
	"time"
)

// rngFromOptions returns the PRNG for one generation run and the seed that
// initialised it.
//
// Complexity: O(1).
func rngFromOptions(o Options) (*rand.Rand, int64) {
	if o.Rand != nil {
		return o.Rand, 0
	}
	seed := o.Seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
