package maze

import "math/rand"

// randomPool is an unordered arena supporting O(1) insertion, O(1) removal
// of a uniformly random element, and O(1) LIFO pop.
//
// items may be longer than n; slots at index ≥ n are stale and never read.
// Removal moves the last occupied slot into the vacated one, so element
// order is not preserved.
type randomPool[T any] struct {
	items []T
	n     int
}

// newRandomPool returns an empty pool with room for capHint items.
func newRandomPool[T any](capHint int) *randomPool[T] {
	return &randomPool[T]{items: make([]T, 0, capHint)}
}

// size reports the number of live items.
func (p *randomPool[T]) size() int {
	return p.n
}

// insert adds item, reusing a stale slot when one is available.
func (p *randomPool[T]) insert(item T) {
	if p.n < len(p.items) {
		p.items[p.n] = item
	} else {
		p.items = append(p.items, item)
	}
	p.n++
}

// removeRandom removes and returns a uniformly random live item.
// ok is false when the pool is empty.
func (p *randomPool[T]) removeRandom(rng *rand.Rand) (item T, ok bool) {
	if p.n == 0 {
		return item, false
	}
	i := rng.Intn(p.n)
	item = p.items[i]
	p.n--
	p.items[i] = p.items[p.n]
	return item, true
}

// pop removes and returns the item in the last occupied slot. With insert
// only, that is the most recent insertion, so the pool works as a stack.
// ok is false when the pool is empty.
func (p *randomPool[T]) pop() (item T, ok bool) {
	if p.n == 0 {
		return item, false
	}
	p.n--
	return p.items[p.n], true
}
