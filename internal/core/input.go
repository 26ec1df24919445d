package core

// Action represents a semantic driver action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move left paddle up
	ActionDown           // S, Down arrow - move left paddle down
	ActionStart          // Enter - start a match
	ActionPause          // Space, P - pause/unpause
	ActionHistory        // H - open match history
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
