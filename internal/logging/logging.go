// Package logging builds the logrus logger used by reedit.
//
// The terminal belongs to the UI, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects the log destination and verbosity.
type Options struct {
	// File receives log lines. Empty discards them.
	File string
	// Level is a logrus level name. Empty means info.
	Level string
	// Debug forces the debug level.
	Debug bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and the closer for its destination.
func New(opt Options) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level := logrus.InfoLevel
	if opt.Level != "" {
		lv, err := logrus.ParseLevel(opt.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lv
	}
	if opt.Debug {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	if opt.File == "" {
		l.SetOutput(io.Discard)
		return l, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log directory: %w", err)
	}
	f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l.SetOutput(f)
	return l, f, nil
}
