package math

import "math"

// Vec2 is a 2D vector.
type Vec2 [2]float32

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v[0] + other[0], v[1] + other[1]}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v[0] - other[0], v[1] - other[1]}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return sqrt32(v.Dot(v))
}

// Normalize returns a unit vector. Undefined for the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{v[0] / l, v[1] / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Angle returns the polar angle of v around the origin, in [0, 2*Pi).
func (v Vec2) Angle() float32 {
	theta := math.Atan2(float64(v[1]), float64(v[0]))
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return float32(theta)
}
