// Package config provides YAML-based configuration loading and pace
// management for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/session"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Food       FoodConfig       `yaml:"food"`
	Pace       PaceConfig       `yaml:"pace"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Highscore  HighscoreConfig  `yaml:"highscore"`
	Audio      AudioConfig      `yaml:"audio"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Slack int `yaml:"slack"` // Free-cell margin below which placement enumerates
}

// PaceConfig defines the driver clock.
type PaceConfig struct {
	TickRate         int `yaml:"tick_rate"`           // Frames per second
	FramesPerStep    int `yaml:"frames_per_step"`     // Frames per snake step at level 0
	MinFramesPerStep int `yaml:"min_frames_per_step"` // Frames per snake step at level 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// HighscoreConfig selects where the highscore lives.
type HighscoreConfig struct {
	Backend string `yaml:"backend"` // "file", "sqlite" or "memory"
	Path    string `yaml:"path"`    // Used by the file backend
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Session returns the session settings for this config.
func (c SnakeConfig) Session() session.Config {
	return session.Config{
		Width:     c.Grid.Width,
		Height:    c.Grid.Height,
		FoodSlack: c.Food.Slack,
	}
}

// Validate checks every section and reports the first problem found.
func (c SnakeConfig) Validate() error {
	if err := c.Session().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Pace.TickRate <= 0 {
		return fmt.Errorf("%w: pace.tick_rate must be positive, got %d", ErrInvalidConfig, c.Pace.TickRate)
	}
	if c.Pace.FramesPerStep < 1 {
		return fmt.Errorf("%w: pace.frames_per_step must be at least 1, got %d", ErrInvalidConfig, c.Pace.FramesPerStep)
	}
	if c.Pace.MinFramesPerStep < 1 || c.Pace.MinFramesPerStep > c.Pace.FramesPerStep {
		return fmt.Errorf("%w: pace.min_frames_per_step must be in [1, %d], got %d",
			ErrInvalidConfig, c.Pace.FramesPerStep, c.Pace.MinFramesPerStep)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %v", ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	switch c.Highscore.Backend {
	case "", "file", "sqlite", "memory":
	default:
		return fmt.Errorf("%w: unknown highscore backend %q", ErrInvalidConfig, c.Highscore.Backend)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from the command line.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
