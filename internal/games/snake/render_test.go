package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRequiredSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{10, 10, 22, 13},
		{21, 21, 44, 24},
		{30, 10, 62, 13},
	}

	for _, tt := range tests {
		w, h := RequiredSize(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("RequiredSize(%d, %d) = %dx%d, expected %dx%d", tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}

func testSnapshot() Snapshot {
	return Snapshot{
		Tick:    3,
		Body:    []core.Point{core.Pt(2, 2), core.Pt(2, 3), core.Pt(2, 4)},
		Food:    core.Pt(7, 1),
		HasFood: true,
		Score:   2,
		Status:  StatusPlaying,
		Cols:    10,
		Rows:    10,
	}
}

func TestDrawPlaying(t *testing.T) {
	snap := testSnapshot()
	scr := core.NewScreen(22, 13)
	Draw(snap, scr)

	// Grid origin is (1, 2): one for the border, one more row for the HUD.
	cellAt := func(p core.Point) core.Cell {
		return scr.GetCell(1+p.X*cellWidth, 2+p.Y)
	}

	if c := cellAt(snap.Body[0]); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %+v, expected bright green block", c)
	}
	if c := cellAt(snap.Body[1]); c.Rune != '▓' || c.Color != core.ColorGreen {
		t.Errorf("Body cell = %+v, expected green shade", c)
	}
	if c := cellAt(snap.Food); c.Rune != '●' || c.Color != core.ColorBrightRed {
		t.Errorf("Food cell = %+v, expected bright red dot", c)
	}
	if r := scr.Get(2+2*cellWidth, 2+2); r != '█' {
		t.Errorf("Cells should be two columns wide, got %q", r)
	}

	if got := scr.Get(0, 1); got != '┌' {
		t.Errorf("Expected border corner at (0,1), got %q", got)
	}
	if got := scr.Get(21, 12); got != '┘' {
		t.Errorf("Expected border corner at (21,12), got %q", got)
	}

	hud := scr.Row(0)
	if !strings.Contains(hud, "Score: 2") {
		t.Errorf("HUD = %q, expected score", hud)
	}
	if !strings.Contains(hud, "[Stop]") {
		t.Errorf("HUD = %q, expected [Stop] while playing", hud)
	}

	for _, word := range []string{"Ready", "Paused", "Game over", "You win!"} {
		if strings.Contains(scr.String(), word) {
			t.Errorf("No overlay expected while playing, found %q", word)
		}
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		outcome Outcome
		tick    uint64
		want    string
		label   string
	}{
		{"ready", StatusStopped, OutcomeNone, 0, "Ready", "[Start]"},
		{"paused", StatusStopped, OutcomeNone, 5, "Paused", "[Start]"},
		{"loss", StatusFinished, OutcomeLoss, 5, "Game over", "[Game over]"},
		{"win", StatusFinished, OutcomeWin, 5, "You win!", "[Game over]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Status = tt.status
			snap.Outcome = tt.outcome
			snap.Tick = tt.tick

			scr := core.NewScreen(40, 20)
			Draw(snap, scr)

			if !strings.Contains(scr.String(), tt.want) {
				t.Errorf("Expected overlay %q in:\n%s", tt.want, scr.String())
			}
			if !strings.Contains(scr.Row(0), tt.label) {
				t.Errorf("HUD = %q, expected %s", scr.Row(0), tt.label)
			}
		})
	}
}

func TestDrawWithoutFood(t *testing.T) {
	snap := testSnapshot()
	snap.HasFood = false
	scr := core.NewScreen(22, 13)
	Draw(snap, scr)

	if c := scr.GetCell(1+snap.Food.X*cellWidth, 2+snap.Food.Y); c.Rune == '●' {
		t.Errorf("Food drawn at %v although the grid has none", snap.Food)
	}
}

func TestDrawSkipsCellsOffGrid(t *testing.T) {
	snap := testSnapshot()
	snap.Body = append(snap.Body, core.Pt(10, 2))
	snap.Food = core.Pt(10, 0)
	scr := core.NewScreen(22, 13)
	Draw(snap, scr)

	// Column 10 would land on the right border.
	if got := scr.Get(21, 4); got != '│' {
		t.Errorf("Right border at row 4 = %q, expected it intact", got)
	}
	if got := scr.Get(21, 2); got != '│' {
		t.Errorf("Right border at row 2 = %q, expected it intact", got)
	}
}

func TestDrawTooSmall(t *testing.T) {
	snap := testSnapshot()
	scr := core.NewScreen(20, 10)
	Draw(snap, scr)

	out := scr.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("Expected too-small message, got:\n%s", out)
	}
	if !strings.Contains(out, "Need 22x13") {
		t.Errorf("Expected required size in message, got:\n%s", out)
	}
	if strings.ContainsRune(out, '█') {
		t.Error("The grid should not be drawn on a too-small screen")
	}
}

func TestDrawCentersGrid(t *testing.T) {
	snap := testSnapshot()
	scr := core.NewScreen(32, 13)
	Draw(snap, scr)

	// (32 - 22) / 2 = 5 columns of margin.
	if got := scr.Get(5, 1); got != '┌' {
		t.Errorf("Expected border corner at (5,1), got %q", got)
	}
}

func TestDrawHUDLength(t *testing.T) {
	snap := testSnapshot()
	snap.Cols, snap.Rows = 21, 21
	scr := core.NewScreen(44, 24)
	Draw(snap, scr)

	hud := scr.Row(0)
	if !strings.Contains(hud, "Score: 2  Length: 3") {
		t.Errorf("HUD = %q, expected score and length on a wide grid", hud)
	}
	if !strings.HasSuffix(hud, "[Stop]") {
		t.Errorf("HUD = %q, expected the control label on the right", hud)
	}
}
