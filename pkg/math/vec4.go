package math

// Vec4 is a homogeneous coordinate or a packed plane (a, b, c, d).
type Vec4 [4]float32

// V4 builds a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

func (v *Vec4) SetX(x float32) { v[0] = x }
func (v *Vec4) SetY(y float32) { v[1] = y }
func (v *Vec4) SetZ(z float32) { v[2] = z }
func (v *Vec4) SetW(w float32) { v[3] = w }

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Dot returns the 4-component dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Equal compares component-wise within EpsilonE5.
func (v Vec4) Equal(other Vec4) bool {
	for i := range v {
		if !FloatEqual(v[i], other[i]) {
			return false
		}
	}
	return true
}
