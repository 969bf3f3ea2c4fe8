package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Maze   MazeConfig   `mapstructure:"maze"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type MazeConfig struct {
	Width  int   `mapstructure:"width"`
	Height int   `mapstructure:"height"`
	Seed   int64 `mapstructure:"seed"` // 0 draws a fresh seed
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type LogConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

// Load reads the configuration from file and environment variables.
// A missing default config file is not an error; an explicitly named one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".mazegen"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("mazegen")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MAZEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // maze.width -> MAZEGEN_MAZE_WIDTH
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Maze:   MazeConfig{Width: 20, Height: 20},
		Output: OutputConfig{Format: FormatText},
		Log:    LogConfig{Format: "text", Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("maze.width", d.Maze.Width)
	v.SetDefault("maze.height", d.Maze.Height)
	v.SetDefault("maze.seed", d.Maze.Seed)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate rejects non-positive dimensions and unknown formats.
func (c *Config) Validate() error {
	if c.Maze.Width <= 0 || c.Maze.Height <= 0 {
		return fmt.Errorf("maze size %dx%d: %w", c.Maze.Width, c.Maze.Height, ErrInvalid)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format %q (use: text, json, yaml): %w", c.Output.Format, ErrInvalid)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q (use: text, json): %w", c.Log.Format, ErrInvalid)
	}
	return nil
}
