package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a vertically moving rectangle with a speed and a score.
type Paddle struct {
	Bounds core.Rect
	Speed  float64
	Score  int
}

// NewPaddle creates a paddle with a zero score.
func NewPaddle(x, y, width, height, speed float64) Paddle {
	return Paddle{
		Bounds: core.NewRect(x, y, width, height),
		Speed:  speed,
	}
}

// IncrementScore adds one point.
func (p *Paddle) IncrementScore() {
	p.Score++
}

// ApplyMovement moves the paddle by movement * speed * deltaTime.
// The paddle is not kept inside the arena.
func (p *Paddle) ApplyMovement(deltaTime float64, movement core.Vector) {
	distance := p.Speed * deltaTime
	p.Bounds.Position = p.Bounds.Position.AddVector(movement.Scale(distance))
}

// ProcessMovement maps a movement intent to a vertical unit vector.
func (p *Paddle) ProcessMovement(m Movement) core.Vector {
	switch m {
	case MovementUp:
		return core.NewVector(0, -1)
	case MovementDown:
		return core.NewVector(0, 1)
	default:
		return core.Vector{}
	}
}
