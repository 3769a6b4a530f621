package config

import "math"

// PaceManager turns the difficulty level into the driver's step cadence.
// The session itself has no notion of speed; only the number of frames
// between two ticks changes.
type PaceManager struct {
	pace         PaceConfig
	cfg          DifficultyConfig
	initialLevel float64
}

// NewPaceManager creates a pace manager.
func NewPaceManager(pace PaceConfig, cfg DifficultyConfig) *PaceManager {
	return &PaceManager{
		pace:         pace,
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (p *PaceManager) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (p *PaceManager) Level(score int, ticks uint64) float64 {
	if !p.IsEnabled() {
		return p.initialLevel
	}

	maxAt := float64(p.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch p.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return p.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return p.initialLevel + progress*(1.0-p.initialLevel)
}

// FramesPerStep returns how many frames pass between two session ticks.
// It shrinks from FramesPerStep at level 0 to MinFramesPerStep at level 1.
func (p *PaceManager) FramesPerStep(score int, ticks uint64) int {
	hi, lo := p.pace.FramesPerStep, p.pace.MinFramesPerStep
	if hi < 1 {
		hi = 1
	}
	if lo < 1 || lo > hi {
		lo = hi
	}

	level := p.Level(score, ticks)
	frames := int(math.Round(float64(hi) - level*float64(hi-lo)))
	if frames < lo {
		frames = lo
	}
	return frames
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
