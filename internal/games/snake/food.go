package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Food holds the single active food cell. Placement is decided by Loop,
// which knows both the grid and the snake.
type Food struct {
	coords core.Point
	placed bool
}

// SetCoordinates moves the food to p.
func (f *Food) SetCoordinates(p core.Point) {
	f.coords = p
	f.placed = true
}

// Clear removes the food from the grid.
func (f *Food) Clear() {
	f.coords = core.Point{}
	f.placed = false
}

// Placed reports whether the food is on the grid.
func (f *Food) Placed() bool {
	return f.placed
}

// Coordinates returns the food position.
func (f *Food) Coordinates() core.Point {
	return f.coords
}

// IsOnPoint reports whether the food is at p. Food that was never
// placed is nowhere.
func (f *Food) IsOnPoint(p core.Point) bool {
	return f.placed && f.coords == p
}
