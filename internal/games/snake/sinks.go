package snake

// Sinks receive the game's output. Every field is optional.
//
// Sinks run synchronously while the loop holds its lock: they must not
// call back into the Loop and should hand work off quickly.
type Sinks struct {
	Render func(Snapshot)   // After reset and after every tick
	Score  func(int)        // On drop and increment
	Status func(Affordance) // On reset, play, stop and finish
	Finish func(Result)     // Once per finished round
}

func (s Sinks) render(snap Snapshot) {
	if s.Render != nil {
		s.Render(snap)
	}
}

func (s Sinks) status(a Affordance) {
	if s.Status != nil {
		s.Status(a)
	}
}

func (s Sinks) finish(r Result) {
	if s.Finish != nil {
		s.Finish(r)
	}
}
