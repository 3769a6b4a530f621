package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CommandTurnUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CommandTurnDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandTurnLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CommandTurnRight},
		{"w", runeKey('w'), core.CommandTurnUp},
		{"a", runeKey('a'), core.CommandTurnLeft},
		{"s", runeKey('s'), core.CommandTurnDown},
		{"d", runeKey('d'), core.CommandTurnRight},
		{"k", runeKey('k'), core.CommandTurnUp},
		{"h", runeKey('h'), core.CommandTurnLeft},
		{"j", runeKey('j'), core.CommandTurnDown},
		{"l", runeKey('l'), core.CommandTurnRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandTogglePause},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.CommandScoreboard},
		{"q", runeKey('q'), core.CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuit},
		{"help", runeKey('?'), core.CommandNone},
		{"unbound", runeKey('x'), core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", total)
	}
}
