// Package session implements the snake game session: a deterministic state
// machine that owns the snake, the food, the score and the highscore, and is
// advanced one step at a time by Tick.
//
// The session never renders, plays sound or reads devices. Drivers call Tick on
// their own cadence, deliver commands between ticks and read state through the
// observer methods or Snapshot.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultFoodSlack is the margin below which food placement switches from
// rejection sampling to drawing from the enumerated free cells.
const DefaultFoodSlack = 20

// ErrInvalidConfig is returned by New for grids the session cannot play on.
var ErrInvalidConfig = errors.New("session: invalid config")

// noFood marks a board with no free cell left.
var noFood = core.Point{X: -1, Y: -1}

// State is the lifecycle tag of a session.
type State int

const (
	Paused State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config holds the grid dimensions and the food placement margin.
type Config struct {
	Width     int
	Height    int
	FoodSlack int
}

// DefaultConfig returns the classic 20x15 board.
func DefaultConfig() Config {
	return Config{
		Width:     20,
		Height:    15,
		FoodSlack: DefaultFoodSlack,
	}
}

// Validate reports whether the config describes a playable board.
// The initial snake spans three cells on the top row, so the grid must be at
// least three cells wide.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d, need at least 3x1", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FoodSlack < 0 {
		return fmt.Errorf("%w: negative food slack %d", ErrInvalidConfig, c.FoodSlack)
	}
	return nil
}

// Rand is the random source used for food placement.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// HighscoreStore is the persistence cell for the single highscore value.
// Any error from LoadHighscore is treated as "no highscore known".
type HighscoreStore interface {
	LoadHighscore() (int, error)
	SaveHighscore(score int) error
}

// Option customises a Session at construction.
type Option func(*Session)

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed seeds a private math/rand source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStore sets the highscore persistence cell.
func WithStore(store HighscoreStore) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// Session is a single game of snake.
type Session struct {
	cfg   Config
	grid  core.Grid
	rng   Rand
	store HighscoreStore

	state     State
	snake     []core.Point // Head at index 0
	direction core.Direction
	food      core.Point
	score     int
	ticks     uint64

	highscore    int
	hasHighscore bool
}

// New creates a session in the Paused state with a three-segment snake on the
// top row heading right, food placed off the snake and the highscore loaded
// from the store. A failing store never prevents construction.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		grid:  core.Grid{W: cfg.Width, H: cfg.Height},
		store: &memoryCell{},
	}
	WithSeed(0)(s)
	for _, opt := range opts {
		opt(s)
	}

	s.reset()
	return s, nil
}

// reset puts the session back into its initial configuration.
func (s *Session) reset() {
	s.state = Paused
	s.snake = []core.Point{
		{X: 2, Y: 0}, // Head
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}
	s.direction = core.Right
	s.score = 0
	s.ticks = 0
	s.loadHighscore()
	s.placeFood()
}

// loadHighscore reads the store, degrading any failure to "absent".
func (s *Session) loadHighscore() {
	s.highscore, s.hasHighscore = 0, false

	v, err := s.store.LoadHighscore()
	if err != nil || v < 0 {
		return
	}
	s.highscore, s.hasHighscore = v, true
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Snake returns a copy of the snake segments, head first.
func (s *Session) Snake() []core.Point {
	out := make([]core.Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// Head returns the head position.
func (s *Session) Head() core.Point {
	return s.snake[0]
}

// Len returns the number of snake segments.
func (s *Session) Len() int {
	return len(s.snake)
}

// Food returns the food position. It is off-grid when HasFood is false.
func (s *Session) Food() core.Point {
	return s.food
}

// HasFood reports whether food is on the board. It is only false once the
// snake fills every cell.
func (s *Session) HasFood() bool {
	return s.food != noFood
}

// Score returns the number of food items eaten this game.
func (s *Session) Score() int {
	return s.score
}

// Highscore returns the best known score; ok is false when none is known.
func (s *Session) Highscore() (score int, ok bool) {
	return s.highscore, s.hasHighscore
}

// Direction returns the active heading.
func (s *Session) Direction() core.Direction {
	return s.direction
}

// Grid returns the board dimensions.
func (s *Session) Grid() core.Grid {
	return s.grid
}

// Ticks returns the number of Running ticks since the last reset.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// occupies reports whether any snake segment sits on p.
func (s *Session) occupies(p core.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// memoryCell is the default store: the highscore survives resets but not the
// process.
type memoryCell struct {
	score int
	set   bool
}

func (m *memoryCell) LoadHighscore() (int, error) {
	if !m.set {
		return 0, errors.New("session: no highscore recorded")
	}
	return m.score, nil
}

func (m *memoryCell) SaveHighscore(score int) error {
	m.score, m.set = score, true
	return nil
}
