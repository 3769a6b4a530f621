package session

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodPlacement(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		draws   []int
		want    core.Point
		hasFood bool
	}{
		{
			name:    "sparse board skips occupied candidates",
			cfg:     Config{Width: 20, Height: 15, FoodSlack: 0},
			draws:   []int{1, 0, 2, 0, 7, 9},
			want:    core.Pt(7, 9),
			hasFood: true,
		},
		{
			name:    "crowded board draws from free cells",
			cfg:     Config{Width: 3, Height: 2, FoodSlack: DefaultFoodSlack},
			draws:   []int{1},
			want:    core.Pt(1, 1),
			hasFood: true,
		},
		{
			name:    "free cell draw is exclusive",
			cfg:     Config{Width: 3, Height: 2, FoodSlack: DefaultFoodSlack},
			draws:   []int{2, 0},
			want:    core.Pt(2, 1),
			hasFood: true,
		},
		{
			name:    "full board has no food",
			cfg:     Config{Width: 3, Height: 1, FoodSlack: DefaultFoodSlack},
			draws:   []int{0},
			want:    noFood,
			hasFood: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{vals: tt.draws}
			s, err := New(tt.cfg, WithRand(rng))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if s.Food() != tt.want {
				t.Errorf("Food() = %v, expected %v", s.Food(), tt.want)
			}
			if s.HasFood() != tt.hasFood {
				t.Errorf("HasFood() = %v, expected %v", s.HasFood(), tt.hasFood)
			}
		})
	}
}

func TestFreeCellDrawUsesOneDraw(t *testing.T) {
	rng := &scriptedRand{vals: []int{0, 5, 5}}
	if _, err := New(Config{Width: 3, Height: 2, FoodSlack: DefaultFoodSlack}, WithRand(rng)); err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if rng.i != 1 {
		t.Errorf("draws = %d, expected exactly 1", rng.i)
	}
}

func TestFreeCells(t *testing.T) {
	s := newTestSession(t, 4, 2)
	got := s.freeCells()
	want := []core.Point{core.Pt(3, 0), core.Pt(0, 1), core.Pt(1, 1), core.Pt(2, 1), core.Pt(3, 1)}

	if len(got) != len(want) {
		t.Fatalf("freeCells() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("freeCells()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestFoodAfterLastFreeCellEaten(t *testing.T) {
	s := newTestSession(t, 4, 1, WithRand(&scriptedRand{vals: []int{0}}))
	if s.Food() != core.Pt(3, 0) {
		t.Fatalf("Food() = %v, expected (3,0)", s.Food())
	}
	s.TogglePause()

	//nolint:errcheck // default store never fails
	s.Tick()

	if s.Len() != 4 || s.Score() != 1 {
		t.Errorf("len %d score %d, expected 4 and 1", s.Len(), s.Score())
	}
	if s.HasFood() {
		t.Errorf("board is full, HasFood() should be false, food at %v", s.Food())
	}

	//nolint:errcheck // default store never fails
	s.Tick()
	if s.State() != GameOver {
		t.Errorf("state = %v, expected game_over", s.State())
	}
}
