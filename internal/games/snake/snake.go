package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the ordered body of the snake on a toroidal grid.
// The head is body[0], the tail is the last element.
type Snake struct {
	body              []core.Point
	direction         Direction
	lastStepDirection Direction
	cols, rows        int
}

// NewSnake creates a one-segment snake at start heading in dir.
func NewSnake(start core.Point, dir Direction, cols, rows int) *Snake {
	return &Snake{
		body:              []core.Point{start},
		direction:         dir,
		lastStepDirection: dir,
		cols:              cols,
		rows:              rows,
	}
}

// NextStepPoint returns where the head would be after one step in the
// current direction. Leaving the grid re-enters from the opposite edge.
func (s *Snake) NextStepPoint() core.Point {
	dx, dy := s.direction.Delta()
	return s.body[0].Add(dx, dy).Wrap(s.cols, s.rows)
}

// IsOnPoint reports whether any body segment occupies p.
func (s *Snake) IsOnPoint(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// MakeStep moves the snake one cell: the next point becomes the head and
// the tail is dropped, so the length is unchanged.
func (s *Snake) MakeStep() {
	s.lastStepDirection = s.direction
	next := s.NextStepPoint()

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
}

// GrowUp appends a copy of the tail. The extra segment is shifted away
// by later steps, so the length grows by one without changing course.
func (s *Snake) GrowUp() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// SetDirection sets the direction for the next step. Callers enforce legality.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Direction returns the direction of the next step.
func (s *Snake) Direction() Direction {
	return s.direction
}

// LastStepDirection returns the direction of the most recent step.
func (s *Snake) LastStepDirection() Direction {
	return s.lastStepDirection
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}
