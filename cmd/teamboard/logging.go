package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/nhle/teamboard/internal/model"
)

// setupLogging points the standard logger at the configured file, since
// the terminal belongs to the UI. DEBUG=true forces debug level.
func setupLogging(cfg model.LogConfig) (func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
