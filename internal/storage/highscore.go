package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/session"
)

// ErrNoHighscore is returned when no highscore has been recorded yet.
var ErrNoHighscore = errors.New("storage: no highscore recorded")

// Highscore backends accepted by OpenHighscore.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultHighscorePath is where the file backend keeps its value.
const DefaultHighscorePath = "~/.snake/highscore.txt"

var (
	_ session.HighscoreStore = (*FileHighscore)(nil)
	_ session.HighscoreStore = (*HighscoreCell)(nil)
	_ session.HighscoreStore = (*MemoryHighscore)(nil)
)

// FileHighscore stores the highscore as a single decimal integer in a text
// file.
type FileHighscore struct {
	Path string
}

// LoadHighscore reads and parses the file. Surrounding whitespace is ignored.
func (f *FileHighscore) LoadHighscore() (int, error) {
	path, err := ExpandHome(f.Path)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoHighscore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read highscore: %w", err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed highscore file %s: %w", path, err)
	}
	return v, nil
}

// SaveHighscore overwrites the file with score, creating parent directories.
func (f *FileHighscore) SaveHighscore(score int) error {
	path, err := ExpandHome(f.Path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	return nil
}

// HighscoreCell is a highscore kept in the highscores table, one row per game.
type HighscoreCell struct {
	db     *sql.DB
	gameID string
}

// LoadHighscore returns the stored value or ErrNoHighscore.
func (c *HighscoreCell) LoadHighscore() (int, error) {
	var score int
	err := c.db.QueryRow(
		"SELECT score FROM highscores WHERE game_id = ?",
		c.gameID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoHighscore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query highscore: %w", err)
	}
	return score, nil
}

// SaveHighscore upserts the value. A stored value is only ever raised.
func (c *HighscoreCell) SaveHighscore(score int) error {
	_, err := c.db.Exec(
		`INSERT INTO highscores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > highscores.score`,
		c.gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save highscore: %w", err)
	}
	return nil
}

// MemoryHighscore keeps the highscore in process memory. LoadErr and SaveErr,
// when set, are returned instead of touching the value.
type MemoryHighscore struct {
	mu      sync.Mutex
	score   int
	set     bool
	LoadErr error
	SaveErr error
}

// NewMemoryHighscore returns a cell preloaded with score.
func NewMemoryHighscore(score int) *MemoryHighscore {
	return &MemoryHighscore{score: score, set: true}
}

func (m *MemoryHighscore) LoadHighscore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	if !m.set {
		return 0, ErrNoHighscore
	}
	return m.score, nil
}

func (m *MemoryHighscore) SaveHighscore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.score, m.set = score, true
	return nil
}

// OpenHighscore picks the highscore cell for backend. The sqlite backend needs
// an open store; the file backend falls back to DefaultHighscorePath.
func OpenHighscore(backend, path string, store *Store) (session.HighscoreStore, error) {
	switch backend {
	case "", BackendFile:
		if path == "" {
			path = DefaultHighscorePath
		}
		return &FileHighscore{Path: path}, nil
	case BackendSQLite:
		if store == nil {
			return nil, errors.New("storage: sqlite highscore backend needs an open database")
		}
		return store.Highscore(GameID), nil
	case BackendMemory:
		return &MemoryHighscore{}, nil
	default:
		return nil, fmt.Errorf("storage: unknown highscore backend %q", backend)
	}
}
