// Package journal records game events to a size-rotated JSON log file.
package journal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

// New returns a logger that writes every entry, at debug level and above,
// to the journal file only. A disabled journal yields a logger that
// discards everything.
func New(cfg config.Journal) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if !cfg.Enabled() {
		return log, nil
	}

	if err := Attach(log, cfg); err != nil {
		return nil, err
	}
	return log, nil
}

// Attach makes log also write its entries to the journal file.
func Attach(log *logrus.Logger, cfg config.Journal) error {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open journal %s: %w", cfg.Filename, err)
	}
	log.SetLevel(logrus.DebugLevel)
	log.AddHook(hook)
	return nil
}
