package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

func freshSnapshot(t *testing.T) session.Snapshot {
	t.Helper()
	s, err := session.New(session.DefaultConfig(), session.WithSeed(5))
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	return s.Snapshot()
}

func TestDrawGameBoard(t *testing.T) {
	snap := freshSnapshot(t)
	screen := core.NewScreen(40, 20)
	DrawGame(screen, snap)

	board := boardRect(screen, snap.Grid)
	if board.X != 9 || board.Y != hudRows {
		t.Fatalf("board at (%d,%d), expected (9,%d)", board.X, board.Y, hudRows)
	}

	if got := screen.Get(board.X, board.Y); got != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", got)
	}
	if got := screen.Get(board.Right()-1, board.Bottom()-1); got != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", got)
	}

	head := snap.Head()
	if got := screen.GetCell(board.X+1+head.X, board.Y+1+head.Y); got.Rune != glyphHead || got.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected green %q", got, glyphHead)
	}
	for _, seg := range snap.Snake[1:] {
		if got := screen.Get(board.X+1+seg.X, board.Y+1+seg.Y); got != glyphBody {
			t.Errorf("body cell at %v = %q, expected %q", seg, got, glyphBody)
		}
	}

	text := screen.String()
	if !strings.Contains(text, "PAUSED") || !strings.Contains(text, "space to start") {
		t.Error("paused session should show the start overlay")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Best: -") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
}

func TestDrawGameFood(t *testing.T) {
	snap := freshSnapshot(t)
	snap.State = session.Running
	snap.Food = core.Pt(19, 14)
	snap.HasFood = true

	screen := core.NewScreen(40, 20)
	DrawGame(screen, snap)
	board := boardRect(screen, snap.Grid)

	if got := screen.GetCell(board.X+20, board.Y+15); got.Rune != glyphFood {
		t.Errorf("food cell = %+v, expected %q", got, glyphFood)
	}
	if strings.Contains(screen.String(), "PAUSED") {
		t.Error("running session should not show an overlay")
	}

	snap.HasFood = false
	DrawGame(screen, snap)
	if strings.ContainsRune(screen.String(), glyphFood) {
		t.Error("food drawn while HasFood is false")
	}
}

func TestDrawGameOver(t *testing.T) {
	snap := freshSnapshot(t)
	snap.State = session.GameOver
	snap.Score, snap.Highscore, snap.HasHighscore = 4, 9, true

	screen := core.NewScreen(40, 20)
	DrawGame(screen, snap)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(screen.Row(0), "Best: 9") {
		t.Errorf("HUD row = %q, expected Best: 9", screen.Row(0))
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	snap := freshSnapshot(t)
	screen := core.NewScreen(30, 10)
	DrawGame(screen, snap)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
	if strings.ContainsRune(screen.String(), glyphHead) {
		t.Error("board should not be drawn when it does not fit")
	}
}

func TestHUDText(t *testing.T) {
	snap := session.Snapshot{State: session.Running, Score: 3, Snake: make([]core.Point, 6)}
	want := " Snake  Score: 3  Best: -  Length: 6  [running]"
	if got := HUDText(snap); got != want {
		t.Errorf("HUDText() = %q, expected %q", got, want)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "ab", core.ColorGreen)
	screen.DrawText(2, 0, "cd", core.ColorRed)
	screen.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q: %q", want, out)
		}
	}
}
