// Package config holds the settings of an rmatrix run: defaults, the
// optional TOML file, and validation. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/rmatrix/dijkstra"
	"github.com/katalvlaran/rmatrix/render"
)

// Defaults for a run without flags or config file.
const (
	DefaultInput   = "rmatrix_input.txt"
	DefaultOutput  = "rmatrix_output.txt"
	DefaultFormat  = "text"
	DefaultEngine  = "scan"
	DefaultWorkers = 1
	DefaultLevel   = "info"
)

// ErrInvalidConfig marks every configuration problem: unreadable file,
// unknown key, or a value out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of run settings.
type Config struct {
	Input       string    `toml:"input"`
	Output      string    `toml:"output"`
	Format      string    `toml:"format"`
	Workers     int       `toml:"workers"`
	Engine      string    `toml:"engine"`
	Verify      bool      `toml:"verify"`
	Quiet       bool      `toml:"quiet"`
	ColumnWidth int       `toml:"column_width"`
	Log         LogConfig `toml:"log"`
}

// LogConfig configures logging. File enables a rotated log file next to
// stderr output.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:       DefaultInput,
		Output:      DefaultOutput,
		Format:      DefaultFormat,
		Workers:     DefaultWorkers,
		Engine:      DefaultEngine,
		ColumnWidth: render.MinColumnWidth,
		Log: LogConfig{
			Level:      DefaultLevel,
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Load decodes the TOML file at path over the defaults. Keys the Config does
// not know are rejected. The result is not validated; call Validate after
// flags have been applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "config file %s: %v", path, err)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "failed to decode %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	log.Debugf("config: loaded %s", path)

	return cfg, nil
}

// Validate checks every field and returns the first problem wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.Wrap(ErrInvalidConfig, "input path is empty")
	case c.Output == "":
		return errors.Wrap(ErrInvalidConfig, "output path is empty")
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be >= 1, got %d", c.Workers)
	case c.ColumnWidth < 1:
		return errors.Wrapf(ErrInvalidConfig, "column_width must be >= 1, got %d", c.ColumnWidth)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "format %q: want text or yaml", c.Format)
	}
	if _, ok := dijkstra.ParseStrategy(c.Engine); !ok {
		return errors.Wrapf(ErrInvalidConfig, "engine %q: want scan or heap", c.Engine)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q", c.Log.Level)
	}

	return nil
}

// Strategy returns the engine strategy named by Engine (scan if invalid).
func (c *Config) Strategy() dijkstra.Strategy {
	s, _ := dijkstra.ParseStrategy(c.Engine)
	return s
}

// OutputFormat returns the render format named by Format (text if invalid).
func (c *Config) OutputFormat() render.Format {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatText
	}
	return f
}
