package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/session"
)

func TestFileHighscore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	cell := &FileHighscore{Path: path}

	if _, err := cell.LoadHighscore(); !errors.Is(err, ErrNoHighscore) {
		t.Errorf("LoadHighscore() on missing file error = %v, expected ErrNoHighscore", err)
	}

	if err := cell.SaveHighscore(42); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("file content = %q, expected %q", data, "42")
	}

	got, err := cell.LoadHighscore()
	if err != nil || got != 42 {
		t.Errorf("LoadHighscore() = %d, %v, expected 42", got, err)
	}

	if err := cell.SaveHighscore(7); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}
	if got, _ := cell.LoadHighscore(); got != 7 {
		t.Errorf("LoadHighscore() after overwrite = %d, expected 7", got)
	}
}

func TestFileHighscoreParsing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain", "15", 15, false},
		{"trailing newline", "15\n", 15, false},
		{"padded", "  \t23 \r\n", 23, false},
		{"zero", "0", 0, false},
		{"garbage", "lots", 0, true},
		{"empty", "", 0, true},
		{"float", "3.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			got, err := (&FileHighscore{Path: path}).LoadHighscore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadHighscore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("LoadHighscore() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestHighscoreCell(t *testing.T) {
	store := openTestStore(t)
	cell := store.Highscore(GameID)

	if _, err := cell.LoadHighscore(); !errors.Is(err, ErrNoHighscore) {
		t.Errorf("LoadHighscore() on empty table error = %v, expected ErrNoHighscore", err)
	}

	tests := []struct {
		save int
		want int
	}{
		{5, 5},
		{12, 12},
		{3, 12},
		{12, 12},
	}
	for _, tt := range tests {
		if err := cell.SaveHighscore(tt.save); err != nil {
			t.Fatalf("SaveHighscore(%d) failed: %v", tt.save, err)
		}
		got, err := cell.LoadHighscore()
		if err != nil || got != tt.want {
			t.Errorf("LoadHighscore() after saving %d = %d, %v, expected %d", tt.save, got, err, tt.want)
		}
	}

	if _, err := store.Highscore("other").LoadHighscore(); !errors.Is(err, ErrNoHighscore) {
		t.Error("cells for different games should be independent")
	}
}

func TestMemoryHighscore(t *testing.T) {
	m := &MemoryHighscore{}
	if _, err := m.LoadHighscore(); !errors.Is(err, ErrNoHighscore) {
		t.Errorf("LoadHighscore() on empty cell error = %v, expected ErrNoHighscore", err)
	}

	m = NewMemoryHighscore(8)
	if got, err := m.LoadHighscore(); err != nil || got != 8 {
		t.Errorf("LoadHighscore() = %d, %v, expected 8", got, err)
	}

	errFull := errors.New("disk full")
	m.SaveErr = errFull
	if err := m.SaveHighscore(20); !errors.Is(err, errFull) {
		t.Errorf("SaveHighscore() error = %v, expected disk full", err)
	}
	if got, _ := m.LoadHighscore(); got != 8 {
		t.Errorf("failed save changed the value to %d", got)
	}
}

func TestOpenHighscore(t *testing.T) {
	store := openTestStore(t)
	path := filepath.Join(t.TempDir(), "hs.txt")

	tests := []struct {
		backend string
		store   *Store
		wantErr bool
	}{
		{"", nil, false},
		{BackendFile, nil, false},
		{BackendSQLite, store, false},
		{BackendSQLite, nil, true},
		{BackendMemory, nil, false},
		{"redis", nil, true},
	}

	for _, tt := range tests {
		cell, err := OpenHighscore(tt.backend, path, tt.store)
		if (err != nil) != tt.wantErr {
			t.Errorf("OpenHighscore(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			continue
		}
		if err == nil && cell == nil {
			t.Errorf("OpenHighscore(%q) returned nil cell", tt.backend)
		}
	}
}

// A session wired to the SQLite cell persists a new best score and picks it
// up again after reset.
func TestSessionWithSQLiteHighscore(t *testing.T) {
	store := openTestStore(t)
	cell := store.Highscore(GameID)
	if err := cell.SaveHighscore(1); err != nil {
		t.Fatalf("SaveHighscore() failed: %v", err)
	}

	s, err := session.New(session.Config{Width: 3, Height: 1}, session.WithStore(cell), session.WithSeed(1))
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	if hs, ok := s.Highscore(); !ok || hs != 1 {
		t.Fatalf("Highscore() = %d, %v, expected 1, true", hs, ok)
	}

	// The 3x1 board is already full, so the first tick runs into the wall.
	s.TogglePause()
	if err := s.Tick(); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	if s.State() != session.GameOver {
		t.Fatalf("State() = %v, expected game_over", s.State())
	}

	got, err := cell.LoadHighscore()
	if err != nil || got != 1 {
		t.Errorf("score 0 must not overwrite the stored highscore, got %d, %v", got, err)
	}
}

// Two sessions share one cell; the one holding a stale best score must not
// lower the value the other one stored.
func TestSharedSQLiteHighscoreNeverRegresses(t *testing.T) {
	store := openTestStore(t)
	cell := store.Highscore(GameID)

	// 4x1: one food on the last free cell, then the wall.
	alice, err := session.New(session.Config{Width: 4, Height: 1}, session.WithStore(cell), session.WithSeed(1))
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	if _, ok := alice.Highscore(); ok {
		t.Fatal("empty table should give no highscore")
	}

	// Another player sets a best score while alice is still playing.
	if err := cell.SaveHighscore(10); err != nil {
		t.Fatalf("SaveHighscore(10) failed: %v", err)
	}

	alice.TogglePause()
	for alice.State() == session.Running {
		if err := alice.Tick(); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
	}
	if alice.Score() != 1 {
		t.Fatalf("Score() = %d, expected 1", alice.Score())
	}

	got, err := cell.LoadHighscore()
	if err != nil || got != 10 {
		t.Errorf("shared highscore = %d, %v, expected 10", got, err)
	}
}
