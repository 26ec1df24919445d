// Package logging builds the charm loggers used by the pong commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Options configures New.
type Options struct {
	Level  string
	Prefix string

	// File switches output to a rotating JSON log.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Writer receives text output when File is empty. Defaults to os.Stderr.
	Writer io.Writer
}

// OptionsFrom maps the logging section of the config file.
func OptionsFrom(c config.LoggingConfig, prefix string) Options {
	return Options{
		Level:      c.Level,
		Prefix:     prefix,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and the closer for its output.
func New(o Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if o.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(o.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", o.Level, err)
		}
		level = l
	}

	if o.File != "" {
		sink := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSizeMB,
			MaxBackups: o.MaxBackups,
			MaxAge:     o.MaxAgeDays,
			Compress:   o.Compress,
		}
		logger := log.NewWithOptions(sink, log.Options{
			ReportTimestamp: true,
			Prefix:          o.Prefix,
			Level:           level,
			Formatter:       log.JSONFormatter,
		})
		return logger, sink, nil
	}

	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          o.Prefix,
		Level:           level,
	})
	return logger, nopCloser{}, nil
}
