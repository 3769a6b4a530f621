package session

import "github.com/vovakirdan/tui-snake/internal/core"

// CanTurn reports whether a snake heading current may switch to requested.
//
// A turn is refused when it reverses the heading, or when it would put the
// head straight onto the neck (the second segment). Turning to the current
// heading is allowed and changes nothing.
func CanTurn(snake []core.Point, current, requested core.Direction) bool {
	if requested == current.Opposite() {
		return false
	}
	if len(snake) > 1 && snake[0].Add(requested.Unit()) == snake[1] {
		return false
	}
	return true
}

// Turn sets the heading, silently ignoring turns CanTurn refuses.
// Turns are accepted in every state so a heading can be primed while paused.
func (s *Session) Turn(d core.Direction) {
	if CanTurn(s.snake, s.direction, d) {
		s.direction = d
	}
}

// TogglePause swaps Running and Paused. From GameOver it starts a fresh game
// in the Paused state with the highscore reloaded from the store.
func (s *Session) TogglePause() {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	case GameOver:
		s.reset()
	}
}

// Apply dispatches a player command. Commands that do not concern the
// session (quit, scoreboard) are ignored.
func (s *Session) Apply(cmd core.Command) {
	if d, ok := cmd.Direction(); ok {
		s.Turn(d)
		return
	}
	if cmd == core.CommandTogglePause {
		s.TogglePause()
	}
}
