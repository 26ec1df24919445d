package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional sliver",
			a:        NewRect(2.25, 23, 0.5, 4),
			b:        NewRect(2.7, 26.9, 1, 1),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-3, -3, 2, 2),
			b:        NewRect(-2, -2, 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
			if Overlaps(tc.a, tc.b) != Overlaps(tc.b, tc.a) {
				t.Error("Overlaps() is not symmetric")
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", NewPoint(15, 15), true},
		{"top-left corner", NewPoint(10, 10), true},
		{"bottom-right edge (exclusive)", NewPoint(30, 25), false},
		{"right edge (exclusive)", NewPoint(30, 15), false},
		{"just inside right edge", NewPoint(29.999, 24.999), true},
		{"outside left", NewPoint(5, 15), false},
		{"outside top", NewPoint(15, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 50)

	if !NewRect(10, 10, 5, 5).ContainsRect(outer) {
		t.Error("inner rect should be enclosed by outer")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect should enclose itself")
	}
	if NewRect(98, 10, 5, 5).ContainsRect(outer) {
		t.Error("rect crossing the right edge should not be enclosed")
	}
	if outer.ContainsRect(NewRect(10, 10, 5, 5)) {
		t.Error("larger rect cannot be enclosed by a smaller one")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Min() != NewPoint(5, 10) {
		t.Errorf("Min() = %v, expected (5, 10)", r.Min())
	}
	if r.Max() != NewPoint(25, 25) {
		t.Errorf("Max() = %v, expected (25, 25)", r.Max())
	}
	if r.CenterY() != 17.5 {
		t.Errorf("CenterY() = %f, expected 17.5", r.CenterY())
	}
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(3, 4)

	if got := p.Add(NewPoint(1, 2)); got != NewPoint(4, 6) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(NewPoint(1, 2)); got != NewPoint(2, 2) {
		t.Errorf("Sub() = %v", got)
	}
	if got := p.AddScalar(1.5); got != NewPoint(4.5, 5.5) {
		t.Errorf("AddScalar() = %v", got)
	}
	if got := p.SubScalar(1); got != NewPoint(2, 3) {
		t.Errorf("SubScalar() = %v", got)
	}
	if got := p.AddVector(NewVector(-3, 1)); got != NewPoint(0, 5) {
		t.Errorf("AddVector() = %v", got)
	}
	if got := p.SubVector(NewVector(-3, 1)); got != NewPoint(6, 3) {
		t.Errorf("SubVector() = %v", got)
	}
}

func TestVectorArithmetic(t *testing.T) {
	v := NewVector(3, 4)

	if v.Length() != 5 {
		t.Errorf("Length() = %f, expected 5", v.Length())
	}
	if got := v.Add(NewVector(1, 1)); got != NewVector(4, 5) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Sub(NewVector(1, 1)); got != NewVector(2, 3) {
		t.Errorf("Sub() = %v", got)
	}
	if got := v.Div(2); got != NewVector(1.5, 2) {
		t.Errorf("Div() = %v", got)
	}
	if got := v.Scale(-2); got != NewVector(-6, -8) {
		t.Errorf("Scale() = %v", got)
	}
	if v.String() != "(3, 4)" {
		t.Errorf("String() = %q", v.String())
	}
}

func TestVectorNormalize(t *testing.T) {
	vectors := []Vector{
		NewVector(3, 4),
		NewVector(1, 0.125),
		NewVector(-1, -0.5),
		NewVector(0, 7),
		NewVector(1e-6, -1e-6),
		NewVector(12345, 6789),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if !approxEqual(n.Length(), 1) {
			t.Errorf("Normalize(%v).Length() = %f, expected 1", v, n.Length())
		}
		// Direction preserved
		if math.Signbit(n.X) != math.Signbit(v.X) || math.Signbit(n.Y) != math.Signbit(v.Y) {
			t.Errorf("Normalize(%v) = %v changed direction", v, n)
		}
	}

	zero := NewVector(0, 0).Normalize()
	if !math.IsNaN(zero.X) || !math.IsNaN(zero.Y) {
		t.Errorf("Normalize of zero vector should be non-finite, got %v", zero)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		angle float64
		x, y  float64
	}{
		{0, 1, 0},
		{math.Pi / 2, 0, 1},
		{math.Pi, -1, 0},
		{-math.Pi / 2, 0, -1},
	}

	for _, tc := range tests {
		v := FromAngle(tc.angle)
		if !approxEqual(v.X, tc.x) || !approxEqual(v.Y, tc.y) {
			t.Errorf("FromAngle(%f) = %v, expected (%f, %f)", tc.angle, v, tc.x, tc.y)
		}
		if !approxEqual(v.Length(), 1) {
			t.Errorf("FromAngle(%f) is not a unit vector", tc.angle)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
