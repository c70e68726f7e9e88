package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette holds the styles the game screen is painted with. The board
// draws in core colors; each color stands for one role below.
type Palette struct {
	Head   lipgloss.Style // Bright green
	Body   lipgloss.Style // Green
	Food   lipgloss.Style // Bright red, also the loss overlay
	Frame  lipgloss.Style // Gray: border, dim text
	Score  lipgloss.Style // Bright white
	Notice lipgloss.Style // Yellow: ready, paused, size warnings
	Help   lipgloss.Style
	Plain  lipgloss.Style
}

// DefaultPalette returns the standard 16-color palette.
func DefaultPalette() Palette {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		Head:   fg("10").Bold(true),
		Body:   fg("2"),
		Food:   fg("9"),
		Frame:  fg("245"),
		Score:  fg("15").Bold(true),
		Notice: fg("3"),
		Help:   fg("241"),
		Plain:  lipgloss.NewStyle(),
	}
}

func (p Palette) style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorBrightGreen:
		return p.Head
	case core.ColorGreen:
		return p.Body
	case core.ColorBrightRed, core.ColorRed:
		return p.Food
	case core.ColorGray:
		return p.Frame
	case core.ColorBrightWhite:
		return p.Score
	case core.ColorYellow:
		return p.Notice
	}
	return p.Plain
}

// Render paints the screen buffer line by line. Neighbouring cells of one
// color share a single styled span.
func (p Palette) Render(s *core.Screen) string {
	lines := make([]string, s.Height())
	run := make([]rune, 0, s.Width())

	for y := range lines {
		var line strings.Builder
		var color core.Color
		run = run[:0]

		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if len(run) > 0 && c.Color != color {
				line.WriteString(p.style(color).Render(string(run)))
				run = run[:0]
			}
			color = c.Color
			run = append(run, c.Rune)
		}
		if len(run) > 0 {
			line.WriteString(p.style(color).Render(string(run)))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
