package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete observable state of a session. Drivers take
// one per frame to draw, and compare two around a tick to detect transitions.
type Snapshot struct {
	State        State
	Grid         core.Grid
	Snake        []core.Point // Head first
	Direction    core.Direction
	Food         core.Point
	HasFood      bool
	Score        int
	Highscore    int
	HasHighscore bool
	Ticks        uint64
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Grid:         s.grid,
		Snake:        s.Snake(),
		Direction:    s.direction,
		Food:         s.food,
		HasFood:      s.HasFood(),
		Score:        s.score,
		Highscore:    s.highscore,
		HasHighscore: s.hasHighscore,
		Ticks:        s.ticks,
	}
}

// Head returns the head position of the snapshot's snake.
func (snap Snapshot) Head() core.Point {
	if len(snap.Snake) == 0 {
		return core.Point{}
	}
	return snap.Snake[0]
}

// DebugState returns a string representation of the session.
func (s *Session) DebugState() string {
	var b strings.Builder
	hs := "-"
	if s.hasHighscore {
		hs = fmt.Sprint(s.highscore)
	}
	fmt.Fprintf(&b, "State: %s, Ticks: %d, Score: %d, Highscore: %s\n", s.state, s.ticks, s.score, hs)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(s.snake), s.direction)
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", s.snake[0], s.food)
	return b.String()
}
