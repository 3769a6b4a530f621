package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/cue"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagWidth      int
	flagHeight     int
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of snake",
	Long: `Start a game in the terminal. The game opens paused; press space to start.

Controls:
  Arrows / WASD / HJKL  Turn
  Space                 Pause, resume, or reset after game over
  Tab                   Score history
  ?                     Help
  Q / Ctrl+C            Quit

Examples:
  snake play
  snake play --width 30 --height 20
  snake play --difficulty hard --mute
  snake play --seed 42`,
	Run: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = use config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = use config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig(flagConfig, overrides{
		width:      flagWidth,
		height:     flagHeight,
		fps:        flagFPS,
		difficulty: flagDifficulty,
		mute:       flagMute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger(os.Stderr, flagLogFile, flagLogLevel, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Score history is optional; the game runs without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("score history disabled", "db", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cell, err := storage.OpenHighscore(cfg.Highscore.Backend, cfg.Highscore.Path, store)
	if err != nil {
		logger.Warn("highscore not persisted", "backend", cfg.Highscore.Backend, "error", err)
		cell = &storage.MemoryHighscore{}
	}
	if _, err := cell.LoadHighscore(); err != nil && !errors.Is(err, storage.ErrNoHighscore) {
		logger.Warn("highscore unreadable, starting without one", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := session.New(cfg.Session(), session.WithStore(cell), session.WithSeed(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	player := openPlayer(cfg.Audio, logger)
	defer player.Close()

	screenW, screenH := terminalSize()

	logger.Info("starting game",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"seed", seed,
		"highscore", cfg.Highscore.Backend,
	)

	err = tui.Run(tui.Options{
		Session: sess,
		Pace:    config.NewPaceManager(cfg.Pace, cfg.Difficulty),
		Player:  player,
		Store:   store,
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW:       screenW,
			ScreenH:       screenH,
			TickRate:      cfg.Pace.TickRate,
			FramesPerStep: cfg.Pace.FramesPerStep,
			Seed:          seed,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openPlayer returns the speaker, or a silent player when audio is off or
// the device cannot be opened.
func openPlayer(cfg config.AudioConfig, logger *log.Logger) cue.Player {
	if !cfg.Enabled {
		return cue.Nop{}
	}
	sp, err := cue.NewSpeaker(cfg.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return cue.Nop{}
	}
	return sp
}

func terminalSize() (int, int) {
	def := core.DefaultConfig()
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return def.ScreenW, def.ScreenH
	}
	return w, h
}
