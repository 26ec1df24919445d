package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestPaddleIncrementScore(t *testing.T) {
	p := NewPaddle(0, 0, PaddleWidth, PaddleHeight, 10)
	p.IncrementScore()
	p.IncrementScore()

	if p.Score != 2 {
		t.Errorf("Score = %d, expected 2", p.Score)
	}
}

func TestPaddleApplyMovement(t *testing.T) {
	p := NewPaddle(2, 10, PaddleWidth, PaddleHeight, 10)
	p.ApplyMovement(0.25, core.NewVector(0, -1))

	if got := p.Bounds.Position; got != core.NewPoint(2, 7.5) {
		t.Errorf("position = %v, expected (2, 7.5)", got)
	}

	p.ApplyMovement(0.25, core.Vector{})
	if got := p.Bounds.Position; got != core.NewPoint(2, 7.5) {
		t.Errorf("zero vector moved the paddle to %v", got)
	}
}

func TestPaddleProcessMovement(t *testing.T) {
	tests := []struct {
		movement Movement
		want     core.Vector
	}{
		{MovementUp, core.NewVector(0, -1)},
		{MovementDown, core.NewVector(0, 1)},
		{MovementNone, core.Vector{}},
		{Movement(42), core.Vector{}},
	}

	p := NewPaddle(0, 0, PaddleWidth, PaddleHeight, 10)
	for _, tc := range tests {
		t.Run(tc.movement.String(), func(t *testing.T) {
			if got := p.ProcessMovement(tc.movement); got != tc.want {
				t.Errorf("ProcessMovement(%v) = %v, expected %v", tc.movement, got, tc.want)
			}
		})
	}
}

func TestBallApplyMovement(t *testing.T) {
	b := NewBall(BallSize, BallSize, 100, 50, 10, FixedSampler(0))
	b.Direction = core.NewVector(0.6, 0.8)

	b.ApplyMovement(0.5)

	got := b.Bounds.Position
	if !approxEqual(got.X, 53) || !approxEqual(got.Y, 29) {
		t.Errorf("position = %v, expected (53, 29)", got)
	}
}

func TestBallReset(t *testing.T) {
	angles := []float64{0, math.Pi / 2}
	i := 0
	s := SamplerFunc(func(_, _ float64) float64 {
		a := angles[i%len(angles)]
		i++
		return a
	})

	b := NewBall(BallSize, BallSize, 100, 50, 10, s)
	b.Bounds.Position = core.NewPoint(3, 4)

	b.Reset(100, 50)

	if got := b.Bounds.Position; got != core.NewPoint(50, 25) {
		t.Errorf("position = %v, expected (50, 25)", got)
	}
	if !approxEqual(b.Direction.X, 0) || !approxEqual(b.Direction.Y, 1) {
		t.Errorf("direction = %v, expected the second sample (0, 1)", b.Direction)
	}
}

func TestRandomDirectionUsesRadians(t *testing.T) {
	tests := []struct {
		angle float64
		want  core.Vector
	}{
		{0, core.NewVector(1, 0)},
		{math.Pi / 2, core.NewVector(0, 1)},
		{-math.Pi / 2, core.NewVector(0, -1)},
		{30, core.NewVector(math.Cos(30), math.Sin(30))},
		{-29.5, core.NewVector(math.Cos(-29.5), math.Sin(-29.5))},
	}

	for _, tc := range tests {
		got := RandomDirection(FixedSampler(tc.angle))
		if !approxEqual(got.X, tc.want.X) || !approxEqual(got.Y, tc.want.Y) {
			t.Errorf("RandomDirection(%v) = %v, expected %v", tc.angle, got, tc.want)
		}
		if !approxEqual(got.Length(), 1) {
			t.Errorf("RandomDirection(%v) length = %f, expected 1", tc.angle, got.Length())
		}
	}
}

func TestRandomDirectionAsksForLaunchWindow(t *testing.T) {
	var gotMin, gotMax float64
	RandomDirection(SamplerFunc(func(min, max float64) float64 {
		gotMin, gotMax = min, max
		return 0
	}))

	if gotMin != -30 || gotMax != 30 {
		t.Errorf("sampled range [%v, %v), expected [-30, 30)", gotMin, gotMax)
	}
}

func TestRandSamplerRange(t *testing.T) {
	s := NewRandSampler(7)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-30, 30)
		if v < -30 || v >= 30 {
			t.Fatalf("draw %d = %f, outside [-30, 30)", i, v)
		}
	}
}

func TestRandSamplerSeeded(t *testing.T) {
	a := NewRandSampler(99)
	b := NewRandSampler(99)
	for i := 0; i < 100; i++ {
		if va, vb := a.Uniform(-30, 30), b.Uniform(-30, 30); va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
	}
}

func TestParseMovement(t *testing.T) {
	tests := []struct {
		in   string
		want Movement
		ok   bool
	}{
		{"", MovementNone, true},
		{"none", MovementNone, true},
		{"up", MovementUp, true},
		{"down", MovementDown, true},
		{"sideways", MovementNone, false},
	}

	for _, tc := range tests {
		got, ok := ParseMovement(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseMovement(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" || SideNone.String() != "" {
		t.Errorf("unexpected side names: %q %q %q", SideLeft, SideRight, SideNone)
	}
}
