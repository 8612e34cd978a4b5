package vmath

import "math"

// Vec2 is a float64 2D vector for layout calculations
// Avoids int truncation until coordinates are finally snapped to cells
type Vec2 struct {
	X, Y float64
}

// Axis unit vectors
var (
	UnitX = Vec2{X: 1}
	UnitY = Vec2{Y: 1}
)

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{min(v.X, o.X), min(v.Y, o.Y)}
}

func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max(v.X, o.X), max(v.Y, o.Y)}
}

// Clamp limits each component to [lo, hi]
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return v.Max(lo).Min(hi)
}
