package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// overrides are command-line values that win over the config file.
// Zero values mean "not set".
type overrides struct {
	width      int
	height     int
	fps        int
	difficulty string
	mute       bool
}

// loadGameConfig loads the YAML config and applies command-line overrides.
func loadGameConfig(path string, o overrides) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	if o.width > 0 {
		cfg.Grid.Width = o.width
	}
	if o.height > 0 {
		cfg.Grid.Height = o.height
	}
	if o.fps > 0 {
		cfg.Pace.TickRate = o.fps
	}
	if o.difficulty != "" {
		preset, err := config.ParseDifficultyPreset(o.difficulty)
		if err != nil {
			return config.SnakeConfig{}, err
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the application logger writing to path, or to w when
// path is empty. The returned closer releases the log file.
func newLogger(w io.Writer, path, level, prefix string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		path, err = storage.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closer, nil
}
