// Package pong implements a frame-stepped pong match engine.
// The left paddle takes player input; the right paddle has no input path here
// and is left to whatever drives the engine. The package never reads input
// devices, draws, or persists anything.
package pong

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Fixed match geometry and rules, in arena units.
const (
	PaddleHeight = 4.0
	PaddleWidth  = 0.5
	PaddleMargin = 2.0 // Gap between the arena edge and a paddle's half width
	BallSize     = 1.0
	WinScore     = 11
)

// Game owns one ball and two paddles and runs the match state machine.
type Game struct {
	width  float64
	height float64
	speed  float64

	center     core.Point
	paddleSize core.Rect // In-play position and size of the left paddle

	leftPaddle  Paddle
	rightPaddle Paddle
	ball        Ball
	started     bool
}

// Option customizes a Game at construction.
type Option func(*options)

type options struct {
	sampler Sampler
}

// WithSampler sets the launch angle source. Tests pass a FixedSampler.
func WithSampler(s Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithSeed uses a seeded math/rand sampler.
func WithSeed(seed int64) Option {
	return WithSampler(NewRandSampler(seed))
}

// New creates a stopped game. width, height and speed must be positive;
// they are not checked.
func New(width, height, speed float64, opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = NewRandSampler(time.Now().UnixNano())
	}

	center := core.NewPoint(math.Round(width/2), math.Round(height/2))

	halfHeight := PaddleHeight / 2
	halfWidth := PaddleWidth / 2
	paddleSize := core.NewRect(PaddleMargin+halfWidth, center.Y-halfHeight, PaddleWidth, PaddleHeight)

	// Everything starts hidden above the arena until Start.
	left := NewPaddle(paddleSize.Position.X, -PaddleHeight, PaddleWidth, PaddleHeight, speed)
	right := NewPaddle(width-paddleSize.Position.X, -PaddleHeight, PaddleWidth, PaddleHeight, speed)

	ball := NewBall(BallSize, BallSize, width, height, speed, o.sampler)
	ball.Bounds.Position.Y = -ball.Bounds.Height

	return &Game{
		width:       width,
		height:      height,
		speed:       speed,
		center:      center,
		paddleSize:  paddleSize,
		leftPaddle:  left,
		rightPaddle: right,
		ball:        ball,
	}
}

// Start serves the first round and begins the match.
func (g *Game) Start() {
	g.NextRound()
	g.started = true
}

// Stop ends the match: scores are zeroed and every entity is parked above the arena.
func (g *Game) Stop() {
	g.ResetScores()
	g.hideAll()
	g.started = false
}

// NextRound puts both paddles back in play and serves the ball. Scores are kept.
func (g *Game) NextRound() {
	g.leftPaddle.Bounds.Position = g.paddleSize.Position
	g.rightPaddle.Bounds.Position = core.NewPoint(g.width-g.paddleSize.Position.X, g.paddleSize.Position.Y)
	g.ball.Reset(g.width, g.height)
}

// ResetScores sets both scores to zero.
func (g *Game) ResetScores() {
	g.leftPaddle.Score = 0
	g.rightPaddle.Score = 0
}

func (g *Game) hideAll() {
	g.leftPaddle.Bounds.Position.Y = -g.paddleSize.Height
	g.rightPaddle.Bounds.Position.Y = -g.paddleSize.Height
	g.ball.Direction = core.Vector{}
	g.ball.Bounds.Position.Y = -g.ball.Bounds.Height
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Goal       Side // Paddle that scored this frame
	Winner     Side // Paddle that reached WinScore; the match has stopped
	LeftScore  int  // Scores at the win check, before Stop clears them
	RightScore int
	WallBounce bool
	PaddleHit  Side
}

// Tick advances a running match by deltaTime seconds. It does nothing while stopped.
//
// Every step runs on every call in a fixed order: move ball, goals, win check,
// wall bounce, paddle bounce, player input. A goal or a win does not end the
// frame early; later steps see the state they left behind.
func (g *Game) Tick(deltaTime float64, movement Movement) TickResult {
	var res TickResult
	if !g.started {
		return res
	}

	g.ball.ApplyMovement(deltaTime)

	res.Goal = g.checkGoals()
	res.LeftScore = g.leftPaddle.Score
	res.RightScore = g.rightPaddle.Score

	if g.leftPaddle.Score >= WinScore {
		res.Winner = SideLeft
	} else if g.rightPaddle.Score >= WinScore {
		res.Winner = SideRight
	}
	if res.Winner != SideNone {
		g.Stop()
	}

	res.WallBounce = g.checkWalls()
	res.PaddleHit = g.checkPaddles()

	if movement != MovementNone {
		vector := g.leftPaddle.ProcessMovement(movement)
		g.leftPaddle.ApplyMovement(deltaTime, vector)
	}

	return res
}

// checkGoals scores a ball that left the arena.
// A right-side exit is judged by the ball's left edge, a left-side exit by its right edge.
func (g *Game) checkGoals() Side {
	if g.ball.Bounds.Max().X < 0 {
		g.rightPaddle.IncrementScore()
		g.NextRound()
		return SideRight
	}
	if g.ball.Bounds.Position.X > g.width {
		g.leftPaddle.IncrementScore()
		g.NextRound()
		return SideLeft
	}
	return SideNone
}

func (g *Game) checkWalls() bool {
	b := g.ball.Bounds
	if b.Position.Y < 0 || b.Position.Y+b.Height > g.height {
		g.ball.Direction = core.NewVector(g.ball.Direction.X, -g.ball.Direction.Y)
		return true
	}
	return false
}

// checkPaddles reflects the ball off at most one paddle, left first.
func (g *Game) checkPaddles() Side {
	if g.leftPaddle.Bounds.Overlaps(g.ball.Bounds) {
		y := hitFactor(g.leftPaddle, g.ball)
		g.ball.Direction = core.NewVector(1, y).Normalize()
		return SideLeft
	}
	if g.rightPaddle.Bounds.Overlaps(g.ball.Bounds) {
		y := hitFactor(g.rightPaddle, g.ball)
		g.ball.Direction = core.NewVector(-1, y).Normalize()
		return SideRight
	}
	return SideNone
}

// hitFactor is the ball's vertical offset from the paddle center, in paddle heights.
func hitFactor(p Paddle, b Ball) float64 {
	return (b.Bounds.CenterY() - p.Bounds.CenterY()) / p.Bounds.Height
}

// Width returns the arena width.
func (g *Game) Width() float64 { return g.width }

// Height returns the arena height.
func (g *Game) Height() float64 { return g.height }

// Speed returns the shared ball and paddle speed.
func (g *Game) Speed() float64 { return g.speed }

// Center returns the rounded arena center.
func (g *Game) Center() core.Point { return g.center }

// Started reports whether a match is running.
func (g *Game) Started() bool { return g.started }

// LeftPaddle returns a copy of the player's paddle.
func (g *Game) LeftPaddle() Paddle { return g.leftPaddle }

// RightPaddle returns a copy of the opponent's paddle.
func (g *Game) RightPaddle() Paddle { return g.rightPaddle }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }
