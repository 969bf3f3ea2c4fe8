package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazetree/internal/config"
	"github.com/katalvlaran/mazetree/maze"
)

var version = "dev"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger

	// flag overrides, applied only when set on the command line
	width, height int
	seed          int64
	format        string
	logFormat     string
	logLevel      string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		out:    out,
		errOut: errOut,
		logger: slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}

	root := &cobra.Command{
		Use:               "mazegen",
		Short:             "mazegen — perfect maze generator",
		Long:              "Generate random spanning-tree mazes on a grid and compute solution and longest paths.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./mazegen.yaml)")
	pf.IntVar(&a.width, "width", 0, "maze width in cells (overrides config)")
	pf.IntVar(&a.height, "height", 0, "maze height in cells (overrides config)")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (overrides config); 0 draws a fresh seed each run and is never reproducible, use the printed seed to regenerate")
	pf.StringVar(&a.format, "format", "", "output format (text, json, yaml)")
	pf.StringVar(&a.logFormat, "log-format", "", "log output format (text, json)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.generateCmd(),
		a.solveCmd(),
		a.longestCmd(),
		versionCmd(out),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return a.fail("loading config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Maze.Width = a.width
	}
	if flags.Changed("height") {
		cfg.Maze.Height = a.height
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = a.seed
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	level, err := parseLogLevel(cfg.Log.Level)
	if err != nil {
		return a.fail("parsing log level", err)
	}
	if err := cfg.Validate(); err != nil {
		return a.fail("validating config", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Log.Format {
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, opts))
	default:
		a.logger = slog.New(slog.NewTextHandler(a.errOut, opts))
	}

	a.cfg = cfg
	return nil
}

// fail logs err and returns it wrapped with msg.
func (a *app) fail(msg string, err error) error {
	a.logger.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}

// build generates the configured maze.
func (a *app) build() (*maze.Maze, error) {
	var opts []maze.Option
	if a.cfg.Maze.Seed != 0 {
		opts = append(opts, maze.WithSeed(a.cfg.Maze.Seed))
	}

	start := time.Now()
	m, err := maze.New(a.cfg.Maze.Width, a.cfg.Maze.Height, opts...)
	if err != nil {
		return nil, a.fail("generating maze", err)
	}
	a.logger.Debug("maze generated",
		"width", m.Width(),
		"height", m.Height(),
		"seed", m.Seed(),
		"edges", len(m.Edges()),
		"elapsed", time.Since(start),
	)
	return m, nil
}

func (a *app) emit(r report) error {
	if err := writeReport(a.out, a.cfg.Output.Format, r); err != nil {
		return a.fail("writing output", err)
	}
	return nil
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print its edges",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, err := a.build()
			if err != nil {
				return err
			}
			r := newReport(m, "edges")
			r.Edges = m.Edges()
			return a.emit(r)
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var start, end int
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the path between two cells (default: top-left to bottom-right)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.build()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("end") {
				end = m.Grid().Cells() - 1
			}
			path, err := m.ShortestPath(start, end)
			if err != nil {
				return a.fail("solving maze", err)
			}
			r := newReport(m, "solution")
			r.setPath(m, path)
			return a.emit(r)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "start cell index")
	cmd.Flags().IntVar(&end, "end", 0, "end cell index (default: last cell)")
	return cmd
}

func (a *app) longestCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "longest",
		Short: "Print the longest path from a cell, or the maze diameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.build()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("from") {
				r := newReport(m, "diameter")
				r.setPath(m, m.DiameterPath())
				return a.emit(r)
			}
			path, err := m.LongestPathFrom(from)
			if err != nil {
				return a.fail("computing longest path", err)
			}
			r := newReport(m, "longest")
			r.setPath(m, path)
			return a.emit(r)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start cell index (default: whole-maze diameter)")
	return cmd
}

func versionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(out, "mazegen %s\n", version)
		},
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (use: debug, info, warn, error)", s)
	}
}
