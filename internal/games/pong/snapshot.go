package pong

// RectSnapshot is a plain copy of a rectangle.
type RectSnapshot struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleSnapshot is the observable state of one paddle.
type PaddleSnapshot struct {
	Bounds RectSnapshot `yaml:"bounds"`
	Score  int          `yaml:"score"`
}

// BallSnapshot is the observable state of the ball.
type BallSnapshot struct {
	Bounds     RectSnapshot `yaml:"bounds"`
	DirectionX float64      `yaml:"direction_x"`
	DirectionY float64      `yaml:"direction_y"`
}

// Snapshot contains everything a driver reads back each frame.
// Uses primitive types only so it can be rendered or serialized directly.
type Snapshot struct {
	Width   float64        `yaml:"width"`
	Height  float64        `yaml:"height"`
	Started bool           `yaml:"started"`
	Left    PaddleSnapshot `yaml:"left"`
	Right   PaddleSnapshot `yaml:"right"`
	Ball    BallSnapshot   `yaml:"ball"`
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:   g.width,
		Height:  g.height,
		Started: g.started,
		Left:    paddleSnapshot(g.leftPaddle),
		Right:   paddleSnapshot(g.rightPaddle),
		Ball: BallSnapshot{
			Bounds:     rectSnapshot(g.ball.Bounds.Position.X, g.ball.Bounds.Position.Y, g.ball.Bounds.Width, g.ball.Bounds.Height),
			DirectionX: g.ball.Direction.X,
			DirectionY: g.ball.Direction.Y,
		},
	}
}

func paddleSnapshot(p Paddle) PaddleSnapshot {
	return PaddleSnapshot{
		Bounds: rectSnapshot(p.Bounds.Position.X, p.Bounds.Position.Y, p.Bounds.Width, p.Bounds.Height),
		Score:  p.Score,
	}
}

func rectSnapshot(x, y, w, h float64) RectSnapshot {
	return RectSnapshot{X: x, Y: y, Width: w, Height: h}
}
