package session

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Tick advances the game by one step when Running and does nothing otherwise.
//
// The only error it returns is a failed highscore write. By the time it is
// returned the session has already entered GameOver; callers should log it
// and carry on.
func (s *Session) Tick() error {
	if s.state != Running {
		return nil
	}
	s.ticks++

	next := s.snake[0].Add(s.direction.Unit())

	// The whole current body counts, tail included: the tail has not moved yet.
	if !s.grid.Contains(next) || s.occupies(next) {
		return s.enterGameOver()
	}

	s.snake = append(s.snake, core.Point{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = next

	if next == s.food {
		s.score++
		s.placeFood()
		return nil
	}

	s.snake = s.snake[:len(s.snake)-1]
	return nil
}

// enterGameOver records a new highscore if one was reached and ends the game.
func (s *Session) enterGameOver() error {
	s.state = GameOver

	best := 0
	if s.hasHighscore {
		best = s.highscore
	}
	if s.score <= best {
		return nil
	}

	s.highscore, s.hasHighscore = s.score, true
	if err := s.store.SaveHighscore(s.score); err != nil {
		return fmt.Errorf("session: save highscore %d: %w", s.score, err)
	}
	return nil
}

// placeFood picks a new food cell off the snake.
//
// While the board is sparse it redraws uniform candidates until one is free,
// which takes few draws and never scans the grid. Once the snake covers all
// but FoodSlack cells it draws from the enumerated free cells instead, so
// placement always terminates.
func (s *Session) placeFood() {
	if s.grid.Cells() <= len(s.snake)+s.cfg.FoodSlack {
		free := s.freeCells()
		if len(free) == 0 {
			s.food = noFood
			return
		}
		s.food = free[s.rng.Intn(len(free))]
		return
	}

	for {
		p := core.Point{X: s.rng.Intn(s.grid.W), Y: s.rng.Intn(s.grid.H)}
		if !s.occupies(p) {
			s.food = p
			return
		}
	}
}

// freeCells lists every cell not covered by the snake, row by row.
func (s *Session) freeCells() []core.Point {
	taken := make(map[core.Point]struct{}, len(s.snake))
	for _, seg := range s.snake {
		taken[seg] = struct{}{}
	}

	free := make([]core.Point, 0, s.grid.Cells()-len(s.snake))
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			p := core.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
