package pong

// Movement is the discrete vertical intent a driver may pass to Tick.
// MovementNone is the zero value and means "no input this frame".
type Movement int

const (
	MovementNone Movement = iota
	MovementUp
	MovementDown
)

// String returns a human-readable name for the movement.
func (m Movement) String() string {
	switch m {
	case MovementNone:
		return "None"
	case MovementUp:
		return "Up"
	case MovementDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// ParseMovement maps "up", "down" and "" / "none" to a Movement.
func ParseMovement(s string) (Movement, bool) {
	switch s {
	case "", "none":
		return MovementNone, true
	case "up":
		return MovementUp, true
	case "down":
		return MovementDown, true
	}
	return MovementNone, false
}

// Side identifies a paddle.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns "left", "right" or "" for SideNone.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}
