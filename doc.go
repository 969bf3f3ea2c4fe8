// Package mazetree generates perfect mazes and finds paths through them.
//
// What is mazetree?
//
//	A small, dependency-light library that brings together:
//		• grid/  — row-major cell indexing and 4-neighbour topology
//		• maze/  — randomised spanning-tree generation plus path queries
//		           (solution, longest path from a cell, tree diameter)
//		• cmd/mazegen — a CLI printing edges and paths as text, JSON or YAML
//
// A maze is the edge list of a random spanning tree over a W×H grid, so
// between any two cells there is exactly one path. Rendering is left to the
// caller: map each cell index to (x,y) with grid.Grid.Coordinate and remove
// the wall on each side reported by maze.Maze.Passages.
//
// Quick ASCII example (3×2, one possible maze):
//
//	+--+--+--+
//	|0  1  2 |
//	+  +--+  +
//	|3 |4  5 |
//	+--+--+--+
//
//	edges: (0,1) (1,2) (0,3) (2,5) (5,4)
//
//	go get github.com/katalvlaran/mazetree
package mazetree
