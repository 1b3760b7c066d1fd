// Package math provides the vector, matrix and quaternion types used by the
// culling core.
//
// Matrices are row-major and use the row-vector convention: a point is
// transformed as p' = p * M, so translation lives in row 3.
package math

// Vec3 is a 3D point or free vector.
type Vec3 [3]float32

// V3 builds a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// X returns the first component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float32 { return v[2] }

// SetX sets the first component.
func (v *Vec3) SetX(x float32) { v[0] = x }

// SetY sets the second component.
func (v *Vec3) SetY(y float32) { v[1] = y }

// SetZ sets the third component.
func (v *Vec3) SetZ(z float32) { v[2] = z }

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Div returns the component-wise quotient. Panics on a zero component.
func (v Vec3) Div(other Vec3) Vec3 {
	if other[0] == 0 || other[1] == 0 || other[2] == 0 {
		panic("math: Vec3.Div by zero component")
	}
	return Vec3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// DivScalar returns v / s. Panics when s is zero.
func (v Vec3) DivScalar(s float32) Vec3 {
	if s == 0 {
		panic("math: Vec3.DivScalar by zero")
	}
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return v.Dot(v)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return sqrt32(v.Dot(v))
}

// Normalize returns v divided by its length.
// The zero vector has no direction; callers must not pass it (the result is NaN).
func (v Vec3) Normalize() Vec3 {
	invLen := 1 / v.Length()
	return Vec3{v[0] * invLen, v[1] * invLen, v[2] * invLen}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Equal compares component-wise within EpsilonE5.
func (v Vec3) Equal(other Vec3) bool {
	return FloatEqual(v[0], other[0]) && FloatEqual(v[1], other[1]) && FloatEqual(v[2], other[2])
}

// Vec4 extends v with w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v[0], v[2]}
}
