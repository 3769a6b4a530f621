// Package tui drives a snake session in the terminal with Bubble Tea.
// It owns the frame clock, maps keys to commands, plays cues and draws the
// board, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one pulse of the driver clock.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
