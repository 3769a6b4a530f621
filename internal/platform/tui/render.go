package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// Board glyphs.
const (
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphFood  = '*'
	glyphEmpty = '·'
)

// Screen rows above the board: HUD and separator.
const hudRows = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardRect returns the bordered board area centered below the HUD.
func boardRect(dst *core.Screen, g core.Grid) core.Rect {
	w, h := g.W+2, g.H+2
	return core.NewRect((dst.Width()-w)/2, hudRows, w, h)
}

// fits reports whether the whole board and HUD fit on dst.
func fits(dst *core.Screen, g core.Grid) bool {
	return g.W+2 <= dst.Width() && g.H+2+hudRows <= dst.Height()
}

// DrawGame draws the HUD, board, snake, food and state overlay.
func DrawGame(dst *core.Screen, snap session.Snapshot) {
	dst.Clear()
	drawHUD(dst, snap)

	if !fits(dst, snap.Grid) {
		drawOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("need %dx%d", snap.Grid.W+2, snap.Grid.H+2+hudRows), core.ColorYellow)
		return
	}

	board := boardRect(dst, snap.Grid)
	dst.DrawBox(board, core.ColorGray)
	for y := 0; y < snap.Grid.H; y++ {
		for x := 0; x < snap.Grid.W; x++ {
			dst.SetColor(board.X+1+x, board.Y+1+y, glyphEmpty, core.ColorGray)
		}
	}

	if snap.HasFood {
		dst.SetColor(board.X+1+snap.Food.X, board.Y+1+snap.Food.Y, glyphFood, core.ColorBrightRed)
	}

	bodyColor := core.ColorGreen
	headColor := core.ColorBrightGreen
	if snap.State == session.GameOver {
		bodyColor, headColor = core.ColorRed, core.ColorBrightRed
	}
	// Tail first so the head wins if anything overlaps.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if i == 0 {
			dst.SetColor(board.X+1+seg.X, board.Y+1+seg.Y, glyphHead, headColor)
		} else {
			dst.SetColor(board.X+1+seg.X, board.Y+1+seg.Y, glyphBody, bodyColor)
		}
	}

	switch snap.State {
	case session.Paused:
		drawOverlay(dst, board, "PAUSED", "space to start", core.ColorYellow)
	case session.GameOver:
		drawOverlay(dst, board, "GAME OVER", "space to reset", core.ColorBrightRed)
	}
}

// HUDText returns the status line for a snapshot.
func HUDText(snap session.Snapshot) string {
	best := "-"
	if snap.HasHighscore {
		best = fmt.Sprint(snap.Highscore)
	}
	return fmt.Sprintf(" Snake  Score: %d  Best: %s  Length: %d  [%s]", snap.Score, best, len(snap.Snake), snap.State)
}

func drawHUD(dst *core.Screen, snap session.Snapshot) {
	dst.DrawText(0, 0, HUDText(snap), core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a boxed two-line message centered inside area.
func drawOverlay(dst *core.Screen, area core.Rect, line1, line2 string, c core.Color) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(area.X+(area.W-textW-4)/2, area.Y+(area.H-5)/2, textW+4, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, c)
	drawCentered(dst, box, box.Y+1, line1, c)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text, c)
}
