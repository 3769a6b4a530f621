package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/cue"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options wires a Model to its session and collaborators.
// Only Session is required.
type Options struct {
	Session *session.Session
	Pace    *config.PaceManager // nil steps every RuntimeConfig.FramesPerStep frames
	Player  cue.Player          // nil plays nothing
	Store   *storage.Store      // score history; nil disables it
	Logger  *log.Logger         // nil discards
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	sess   *session.Session
	pace   *config.PaceManager
	player cue.Player
	store  *storage.Store
	logger *log.Logger

	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	frame      int // Frames since the last session tick
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.FramesPerStep <= 0 {
		cfg.FramesPerStep = core.DefaultConfig().FramesPerStep
	}

	player := opts.Player
	if player == nil {
		player = cue.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		sess:   opts.Session,
		pace:   opts.Pace,
		player: player,
		store:  opts.Store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight(m.config.ScreenH))
		return m, nil
	}

	switch cmd := m.keys.Command(msg); cmd {
	case core.CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case core.CommandScoreboard:
		if m.sess.State() == session.Running {
			m.sess.TogglePause()
		}
		sb := newEmbeddedScoreboard(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
	case core.CommandNone:
	default:
		m.sess.Apply(cmd)
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The session is untouched;
// the board is redrawn centered in the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
	if m.scoreboard != nil {
		m.scoreboard.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleFrame advances the frame counter and ticks the session every
// FramesPerStep frames.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.sess.State() != session.Running {
		m.frame = 0
		return m, frameCmd(m.config.TickRate)
	}

	m.frame++
	if m.frame >= m.framesPerStep() {
		m.frame = 0
		m.step()
	}
	return m, frameCmd(m.config.TickRate)
}

func (m Model) framesPerStep() int {
	if m.pace == nil {
		return m.config.FramesPerStep
	}
	return m.pace.FramesPerStep(m.sess.Score(), m.sess.Ticks())
}

// step runs one session tick and reacts to what changed.
func (m Model) step() {
	before := m.sess.Snapshot()
	if err := m.sess.Tick(); err != nil {
		m.logger.Warn("highscore not saved", "err", err)
	}
	after := m.sess.Snapshot()

	for _, c := range cue.Emit(m.player, before, after) {
		if c == cue.GameOver {
			m.recordGame(before, after)
		}
	}
}

// recordGame logs a finished game and appends it to the history.
func (m Model) recordGame(before, after session.Snapshot) {
	m.logger.Info("game over", "score", after.Score, "length", len(after.Snake), "ticks", after.Ticks)
	if after.Score > 0 && (!before.HasHighscore || after.Score > before.Highscore) {
		m.logger.Info("new highscore", "score", after.Score)
	}

	if m.store == nil || after.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(storage.GameID, after.Score); err != nil {
		m.logger.Warn("score history not saved", "err", err)
	}
}

// boardHeight is the screen height left after the help bar.
func (m Model) boardHeight(total int) int {
	return max(total-lipgloss.Height(m.help.View(m.keys)), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	DrawGame(m.screen, m.sess.Snapshot())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the driven session.
func (m Model) Session() *session.Session {
	return m.sess
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
