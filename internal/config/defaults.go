package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/session"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic setup: a 20x15 board stepping every
// fifth frame at 30 frames per second, with the highscore in a text file.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 15,
		},
		Food: FoodConfig{
			Slack: session.DefaultFoodSlack,
		},
		Pace: PaceConfig{
			TickRate:         30,
			FramesPerStep:    5,
			MinFramesPerStep: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
		},
		Highscore: HighscoreConfig{
			Backend: "file",
			Path:    "~/.snake/highscore.txt",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
