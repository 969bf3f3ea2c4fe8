package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazetree/internal/config"
	"github.com/katalvlaran/mazetree/maze"
)

// point is a cell position in grid coordinates.
type point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// report is what every subcommand prints.
type report struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Seed   int64       `json:"seed" yaml:"seed"`
	Edges  []maze.Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
	Path   []int       `json:"path,omitempty" yaml:"path,omitempty"`
	Steps  []point     `json:"steps,omitempty" yaml:"steps,omitempty"`
	Length int         `json:"length" yaml:"length"` // tree edges along Path
}

func newReport(m *maze.Maze, kind string) report {
	return report{Kind: kind, Width: m.Width(), Height: m.Height(), Seed: m.Seed()}
}

// setPath stores path both as cell indices and as coordinates.
func (r *report) setPath(m *maze.Maze, path []int) {
	g := m.Grid()
	r.Path = path
	r.Steps = make([]point, len(path))
	for i, n := range path {
		x, y := g.Coordinate(n)
		r.Steps[i] = point{X: x, Y: y}
	}
	r.Length = len(path) - 1
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		return writeText(w, r)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// writeText prints a header line, then one line per edge ("x,y x,y") or
// per path step ("x,y").
func writeText(w io.Writer, r report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %dx%d seed=%d", r.Kind, r.Width, r.Height, r.Seed)
	if r.Steps != nil {
		fmt.Fprintf(&b, " length=%d", r.Length)
	}
	b.WriteByte('\n')

	for _, e := range r.Edges {
		px, py := e.Parent%r.Width, e.Parent/r.Width
		cx, cy := e.Child%r.Width, e.Child/r.Width
		fmt.Fprintf(&b, "%d,%d %d,%d\n", px, py, cx, cy)
	}
	for _, p := range r.Steps {
		fmt.Fprintf(&b, "%d,%d\n", p.X, p.Y)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
