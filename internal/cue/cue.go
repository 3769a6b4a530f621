// Package cue derives sound cues from session transitions and plays them.
package cue

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/session"
)

// Cue is an audible game event.
type Cue int

const (
	FoodEaten Cue = iota
	GameOver
)

func (c Cue) String() string {
	switch c {
	case FoodEaten:
		return "food_eaten"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Detect compares the snapshots taken around one tick. The snake growing
// means food was eaten; entering GameOver ends the game.
func Detect(before, after session.Snapshot) []Cue {
	var cues []Cue
	if len(after.Snake) > len(before.Snake) {
		cues = append(cues, FoodEaten)
	}
	if before.State != session.GameOver && after.State == session.GameOver {
		cues = append(cues, GameOver)
	}
	return cues
}

// Player plays cues. Play must not block the caller for the sound's length.
type Player interface {
	Play(c Cue)
	Close() error
}

// Emit plays every cue detected between before and after and returns them.
func Emit(p Player, before, after session.Snapshot) []Cue {
	cues := Detect(before, after)
	for _, c := range cues {
		p.Play(c)
	}
	return cues
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// Recorder keeps the cues it is asked to play.
type Recorder struct {
	mu     sync.Mutex
	played []Cue
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, c)
}

func (r *Recorder) Close() error { return nil }

// Played returns a copy of the recorded cues.
func (r *Recorder) Played() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.played))
	copy(out, r.played)
	return out
}
