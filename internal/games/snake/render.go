package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants for Draw. Each grid cell is two characters wide so
// that cells look roughly square in a terminal.
const (
	cellWidth = 2
	hudHeight = 1
)

// RequiredSize returns the screen size Draw needs for a cols x rows grid.
func RequiredSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 2, rows + 2 + hudHeight
}

// Draw renders a snapshot into dst: a HUD line, the bordered grid, the
// snake, the food and an overlay for non-playing states.
func Draw(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w, h := RequiredSize(snap.Cols, snap.Rows)
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
		return
	}

	offX := (dst.Width() - w) / 2
	offY := hudHeight

	drawHUD(snap, dst, offX, w)
	dst.DrawBox(core.NewRect(offX, offY, w, snap.Rows+2), core.ColorGray)

	originX, originY := offX+1, offY+1
	cell := func(p core.Point, r rune, c core.Color) {
		if !p.In(snap.Cols, snap.Rows) {
			return
		}
		x := originX + p.X*cellWidth
		y := originY + p.Y
		dst.SetColored(x, y, r, c)
		dst.SetColored(x+1, y, r, c)
	}

	if snap.HasFood && snap.Food.In(snap.Cols, snap.Rows) {
		dst.SetColored(originX+snap.Food.X*cellWidth, originY+snap.Food.Y, '●', core.ColorBrightRed)
	}

	// Draw tail first so the head stays visible when segments overlap.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(snap.Body[i], '█', core.ColorBrightGreen)
		} else {
			cell(snap.Body[i], '▓', core.ColorGreen)
		}
	}

	switch {
	case snap.Status == StatusFinished && snap.Outcome == OutcomeWin:
		drawOverlay(dst, "You win!", fmt.Sprintf("Score: %d - press R", snap.Score), core.ColorBrightGreen)
	case snap.Status == StatusFinished:
		drawOverlay(dst, "Game over", fmt.Sprintf("Score: %d - press R", snap.Score), core.ColorBrightRed)
	case snap.Status == StatusStopped && snap.Tick == 0:
		drawOverlay(dst, "Ready", "Press Space to start", core.ColorYellow)
	case snap.Status == StatusStopped:
		drawOverlay(dst, "Paused", "Press Space to continue", core.ColorYellow)
	}
}

// drawHUD draws the status line above the grid. The length is left out
// when the grid is too narrow to fit it.
func drawHUD(snap Snapshot, dst *core.Screen, x, w int) {
	right := fmt.Sprintf("[%s]", AffordanceFor(snap.Status).Label)
	left := fmt.Sprintf("Score: %d  Length: %d", snap.Score, len(snap.Body))
	if len(left)+1+len(right) > w {
		left = fmt.Sprintf("Score: %d", snap.Score)
	}

	dst.DrawText(x, 0, left, core.ColorBrightWhite)
	dst.DrawText(x+w-len(right), 0, right, core.ColorGray)
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
