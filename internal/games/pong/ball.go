package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Launch window for RandomDirection, centered on 0.
const (
	launchAngleMin = -30.0
	launchAngleMax = 30.0
)

// Ball is a moving rectangle with a unit direction and a speed.
type Ball struct {
	Bounds    core.Rect
	Direction core.Vector
	Speed     float64

	sampler Sampler
}

// NewBall places a ball at the arena center with a freshly sampled direction.
func NewBall(width, height, screenWidth, screenHeight, speed float64, sampler Sampler) Ball {
	start := startPosition(screenWidth, screenHeight)
	return Ball{
		Bounds:    core.NewRect(start.X, start.Y, width, height),
		Direction: RandomDirection(sampler),
		Speed:     speed,
		sampler:   sampler,
	}
}

// RandomDirection samples an angle from [-30, 30) and turns it into a unit vector.
//
// The sample is handed to core.FromAngle unconverted, so it is read as radians
// even though the window reads like degrees. Launch angles therefore wrap the
// full circle rather than staying within a 60 degree cone.
func RandomDirection(s Sampler) core.Vector {
	return core.FromAngle(s.Uniform(launchAngleMin, launchAngleMax)).Normalize()
}

// ApplyMovement moves the ball by direction * speed * deltaTime.
func (b *Ball) ApplyMovement(deltaTime float64) {
	distance := b.Speed * deltaTime
	b.Bounds.Position = b.Bounds.Position.AddVector(b.Direction.Scale(distance))
}

// Reset serves the ball again from the arena center.
func (b *Ball) Reset(screenWidth, screenHeight float64) {
	b.Direction = RandomDirection(b.sampler)
	b.Bounds.Position = startPosition(screenWidth, screenHeight)
}

// startPosition is the top-left corner of a served ball.
func startPosition(screenWidth, screenHeight float64) core.Point {
	return core.NewPoint(screenWidth/2, screenHeight/2)
}
