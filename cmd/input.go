package cmd

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/rmatrix/config"
)

// Input contains the flag values of the root command.
type Input struct {
	configPath  string
	input       string
	output      string
	format      string
	workers     int
	engine      string
	columnWidth int
	verify      bool
	quiet       bool
	verbose     bool
	logFile     string
}

// resolve builds the run configuration: defaults, then the config file if
// one was given, then every flag the user actually set.
func (i *Input) resolve(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if i.configPath != "" {
		var err error
		if cfg, err = config.Load(i.configPath); err != nil {
			return nil, err
		}
	}

	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.Input = i.input })
	set("output", func() { cfg.Output = i.output })
	set("format", func() { cfg.Format = i.format })
	set("workers", func() { cfg.Workers = i.workers })
	set("engine", func() { cfg.Engine = i.engine })
	set("width", func() { cfg.ColumnWidth = i.columnWidth })
	set("verify", func() { cfg.Verify = i.verify })
	set("quiet", func() { cfg.Quiet = i.quiet })
	set("log-file", func() { cfg.Log.File = i.logFile })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
