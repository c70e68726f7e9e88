package snake

// Status is the lifecycle state of a round.
//
//	idle -> stopped (New) ; stopped <-> playing ; playing -> finished
//
// Reset returns any state to stopped.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusStopped
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusStopped:
		return "stopped"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome records why a round finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Affordance labels for the start/stop control.
const (
	LabelStart    = "Start"
	LabelStop     = "Stop"
	LabelGameOver = "Game over"
)

// Affordance describes the start/stop control for a given status.
type Affordance struct {
	Label   string
	Enabled bool
}

// AffordanceFor returns the control state that matches status.
func AffordanceFor(s Status) Affordance {
	switch s {
	case StatusPlaying:
		return Affordance{Label: LabelStop, Enabled: true}
	case StatusFinished:
		return Affordance{Label: LabelGameOver, Enabled: false}
	default:
		return Affordance{Label: LabelStart, Enabled: true}
	}
}
