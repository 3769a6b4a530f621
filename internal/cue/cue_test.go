package cue

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

func snap(state session.State, length int) session.Snapshot {
	snake := make([]core.Point, length)
	for i := range snake {
		snake[i] = core.Pt(length-i, 0)
	}
	return session.Snapshot{State: state, Snake: snake}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		before session.Snapshot
		after  session.Snapshot
		want   []Cue
	}{
		{"plain move", snap(session.Running, 3), snap(session.Running, 3), nil},
		{"ate food", snap(session.Running, 3), snap(session.Running, 4), []Cue{FoodEaten}},
		{"hit wall", snap(session.Running, 5), snap(session.GameOver, 5), []Cue{GameOver}},
		{"still over", snap(session.GameOver, 5), snap(session.GameOver, 5), nil},
		{"paused", snap(session.Paused, 3), snap(session.Paused, 3), nil},
		{"reset shrinks", snap(session.GameOver, 9), snap(session.Paused, 3), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestEmitWithSession(t *testing.T) {
	s, err := session.New(session.Config{Width: 4, Height: 1}, session.WithSeed(3))
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	rec := &Recorder{}
	s.TogglePause()

	// 4x1: the only free cell holds the food, then the wall ends the game.
	for i := 0; i < 2; i++ {
		before := s.Snapshot()
		//nolint:errcheck // default store never fails
		s.Tick()
		Emit(rec, before, s.Snapshot())
	}

	want := []Cue{FoodEaten, GameOver}
	if got := rec.Played(); !reflect.DeepEqual(got, want) {
		t.Errorf("played %v, expected %v", got, want)
	}
}

func TestStreamerLength(t *testing.T) {
	tests := []struct {
		cue   Cue
		notes int
	}{
		{FoodEaten, 2},
		{GameOver, 3},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			st, err := Streamer(tt.cue, 0.5)
			if err != nil {
				t.Fatalf("Streamer() failed: %v", err)
			}

			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := st.Stream(buf)
				total += n
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 {
						t.Fatalf("sample %f out of range", buf[i][0])
					}
				}
				if !ok {
					break
				}
			}

			if len(melodies[tt.cue]) != tt.notes {
				t.Fatalf("%s has %d notes, expected %d", tt.cue, len(melodies[tt.cue]), tt.notes)
			}
			want := 0
			for _, n := range melodies[tt.cue] {
				want += sampleRate.N(n.dur)
			}
			if total != want {
				t.Errorf("streamed %d samples, expected %d", total, want)
			}
		})
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	st, err := Streamer(Cue(42), 1)
	if err != nil || st != nil {
		t.Errorf("Streamer(unknown) = %v, %v, expected nil, nil", st, err)
	}
}

func TestNopAndRecorder(t *testing.T) {
	var p Player = Nop{}
	p.Play(GameOver)
	if err := p.Close(); err != nil {
		t.Errorf("Nop.Close() = %v", err)
	}

	rec := &Recorder{}
	rec.Play(FoodEaten)
	got := rec.Played()
	got[0] = GameOver
	if rec.Played()[0] != FoodEaten {
		t.Error("Played() should return a copy")
	}
}
