// Package logging configures the process-wide logrus logger: text format
// with full timestamps on stderr, plus an optional lumberjack-rotated file.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/rmatrix/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points logrus at w (usually os.Stderr) and, when cfg.File is set,
// at a rotated log file as well. verbose forces debug level. The returned
// Closer releases the log file.
func Setup(w io.Writer, cfg config.LogConfig, verbose bool) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log level %q", cfg.Level)
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   !IsTerminal(w),
	})

	if cfg.File == "" {
		log.SetOutput(w)
		return nopCloser{}, nil
	}

	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(w, fileLogger))
	log.Debugf("logging: file=%s", cfg.File)

	return fileLogger, nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}
