// Package core provides fundamental types and utilities for the pong engine
// and its terminal driver. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Point is a position in arena units.
type Point struct {
	X, Y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// AddScalar adds the same value to both components.
func (p Point) AddScalar(s float64) Point {
	return Point{X: p.X + s, Y: p.Y + s}
}

// AddVector moves the point by a displacement.
func (p Point) AddVector(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// SubScalar subtracts the same value from both components.
func (p Point) SubScalar(s float64) Point {
	return Point{X: p.X - s, Y: p.Y - s}
}

// SubVector moves the point against a displacement.
func (p Point) SubVector(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Vector is a displacement or direction in arena units.
type Vector struct {
	X, Y float64
}

// NewVector creates a vector (x, y).
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromAngle returns the unit vector (cos(angle), sin(angle)). The angle is in radians.
func FromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Div divides both components by n.
func (v Vector) Div(n float64) Vector {
	return Vector{X: v.X / n, Y: v.Y / n}
}

// Scale multiplies both components by n.
func (v Vector) Scale(n float64) Vector {
	return Vector{X: v.X * n, Y: v.Y * n}
}

// Length returns the Euclidean length.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize scales the vector to unit length.
// The zero vector has no direction: the result is NaN and callers must not pass it.
func (v Vector) Normalize() Vector {
	return v.Scale(1 / v.Length())
}

// String formats the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Bounds is anything with an axis-aligned extent.
type Bounds interface {
	Min() Point
	Max() Point
}

// Overlaps reports whether two boxes intersect with positive area.
// Touching edges do not count.
func Overlaps(a, b Bounds) bool {
	a1, a2 := a.Min(), a.Max()
	b1, b2 := b.Min(), b.Max()

	return a1.X < b2.X && a2.X > b1.X && a1.Y < b2.Y && a2.Y > b1.Y
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	Position      Point // Top-left corner
	Width, Height float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Point{X: x, Y: y}, Width: w, Height: h}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return r.Position
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Position.X + r.Width, Y: r.Position.Y + r.Height}
}

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return r.Position.Y + r.Height/2
}

// ContainsPoint returns true if p lies in [min, max) on both axes.
func (r Rect) ContainsPoint(p Point) bool {
	a1, a2 := r.Min(), r.Max()
	return a1.X <= p.X && a2.X > p.X && a1.Y <= p.Y && a2.Y > p.Y
}

// ContainsRect returns true if other fully encloses this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	a1, a2 := r.Min(), r.Max()
	b1, b2 := other.Min(), other.Max()
	return a1.X >= b1.X && a2.X <= b2.X && a1.Y >= b1.Y && a2.Y <= b2.Y
}

// Overlaps returns true if this rectangle intersects another.
func (r Rect) Overlaps(other Bounds) bool {
	return Overlaps(r, other)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
