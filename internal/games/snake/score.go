package snake

// Score counts eaten food. Every change is reported to notify.
type Score struct {
	value  int
	notify func(int)
}

// Drop resets the score to zero.
func (s *Score) Drop() {
	s.value = 0
	s.emit()
}

// Increment adds one point.
func (s *Score) Increment() {
	s.value++
	s.emit()
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

func (s *Score) emit() {
	if s.notify != nil {
		s.notify(s.value)
	}
}
