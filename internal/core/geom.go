// Package core provides fundamental types shared by the snake game and its
// terminal front end. It has no external dependencies so that game logic
// stays pure and testable.
package core

// Point is a cell coordinate on the game grid.
// Points are plain values and compare with ==.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Wrap folds the point onto a cols x rows torus, so that leaving one edge
// re-enters from the opposite one.
func (p Point) Wrap(cols, rows int) Point {
	return Point{X: Mod(p.X, cols), Y: Mod(p.Y, rows)}
}

// In reports whether the point lies inside a cols x rows grid.
func (p Point) In(cols, rows int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Mod returns the non-negative remainder of a divided by n.
// Unlike %, Mod(-1, n) is n-1.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
