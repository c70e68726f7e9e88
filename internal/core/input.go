package core

// Action represents a semantic game command, abstracted from physical key presses.
// Front ends translate keys into actions; the game only ever sees actions.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow
	ActionRight         // D, L, Right arrow
	ActionDown          // S, J, Down arrow
	ActionLeft          // A, H, Left arrow
	ActionToggle        // Space, Enter - start/stop
	ActionReset         // R - new round
	ActionScores        // T - open the scoreboard
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionToggle:
		return "Toggle"
	case ActionReset:
		return "Reset"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four moves.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionRight || a == ActionDown || a == ActionLeft
}
