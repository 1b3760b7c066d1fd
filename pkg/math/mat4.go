package math

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix stored row-major.
// Layout: [m00 m01 m02 m03]
//
//	[m10 m11 m12 m13]
//	[m20 m21 m22 m23]
//	[m30 m31 m32 m33]
//
// Vectors are rows and multiply from the left (p' = p * M), so the translation
// of an affine transform is stored in m30, m31, m32.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero returns the all-zero matrix.
func Zero() Mat4 {
	return Mat4{}
}

// Mat4FromArray builds a matrix from 16 floats in row-major order.
func Mat4FromArray(a [16]float32) Mat4 {
	return Mat4(a)
}

// Mat4FromSlice builds a matrix from the first 16 floats of s in row-major order.
func Mat4FromSlice(s []float32) (Mat4, error) {
	if len(s) < 16 {
		return Mat4{}, fmt.Errorf("mat4 needs 16 floats, got %d", len(s))
	}
	var m Mat4
	copy(m[:], s[:16])
	return m, nil
}

// Mat4FromRows builds a matrix from four row vectors.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	}
}

// Array returns the 16 floats in row-major order.
func (m Mat4) Array() [16]float32 {
	return [16]float32(m)
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}

// Set writes the element at row, col.
func (m *Mat4) Set(row, col int, v float32) {
	m[row*4+col] = v
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Col returns column j.
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[j], m[4+j], m[8+j], m[12+j]}
}

// Equal compares element-wise within EpsilonE5.
func (m Mat4) Equal(other Mat4) bool {
	for i := range m {
		if !FloatEqual(m[i], other[i]) {
			return false
		}
	}
	return true
}

// IsAffine reports whether the last column is exactly [0 0 0 1].
func (m Mat4) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mul returns m * other. Applying the result to a row vector applies m first,
// then other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i*4+j] =
				m[i*4+0]*other[0*4+j] +
					m[i*4+1]*other[1*4+j] +
					m[i*4+2]*other[2*4+j] +
					m[i*4+3]*other[3*4+j]
		}
	}
	return result
}

// MulVec4 returns the row vector v * m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + v[3]*m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + v[3]*m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + v[3]*m[14],
		v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + v[3]*m[15],
	}
}

// TransformPoint transforms p as (p, 1) * m and drops w without dividing.
// Exact for affine matrices.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		p[0]*m[0] + p[1]*m[4] + p[2]*m[8] + m[12],
		p[0]*m[1] + p[1]*m[5] + p[2]*m[9] + m[13],
		p[0]*m[2] + p[1]*m[6] + p[2]*m[10] + m[14],
	}
}

// TransformCoord transforms p as (p, 1) * m and divides by the resulting w,
// as needed for projection matrices.
func (m Mat4) TransformCoord(p Vec3) Vec3 {
	v := m.MulVec4(p.Vec4(1))
	if v[3] != 0 && v[3] != 1 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return v.XYZ()
}

// TransformDirection transforms d as (d, 0) * m, ignoring translation.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		d[0]*m[0] + d[1]*m[4] + d[2]*m[8],
		d[0]*m[1] + d[1]*m[5] + d[2]*m[9],
		d[0]*m[2] + d[1]*m[6] + d[2]*m[10],
	}
}

// Determinant returns the determinant of the upper-left 3x3 block, which is the
// determinant of the whole matrix when m is affine.
func (m Mat4) Determinant() float32 {
	return m[0]*(m[5]*m[10]-m[9]*m[6]) -
		m[1]*(m[4]*m[10]-m[8]*m[6]) +
		m[2]*(m[4]*m[9]-m[8]*m[5])
}

// Inverse inverts an affine matrix through the adjugate of its upper 3x3 block.
// The last column of m is assumed to be [0 0 0 1]; projective matrices give a
// wrong result. ok is false when |det| < EpsilonE5, in which case inv is zero
// and must not be used.
func (m Mat4) Inverse() (inv Mat4, det float32, ok bool) {
	det = m.Determinant()
	if Abs(det) < EpsilonE5 {
		return Mat4{}, det, false
	}

	detInv := 1 / det

	inv[0] = detInv * (m[5]*m[10] - m[6]*m[9])
	inv[1] = -detInv * (m[1]*m[10] - m[2]*m[9])
	inv[2] = detInv * (m[1]*m[6] - m[2]*m[5])

	inv[4] = -detInv * (m[4]*m[10] - m[6]*m[8])
	inv[5] = detInv * (m[0]*m[10] - m[2]*m[8])
	inv[6] = -detInv * (m[0]*m[6] - m[2]*m[4])

	inv[8] = detInv * (m[4]*m[9] - m[5]*m[8])
	inv[9] = -detInv * (m[0]*m[9] - m[1]*m[8])
	inv[10] = detInv * (m[0]*m[5] - m[1]*m[4])

	// translation row: -(t * invUpper)
	inv[12] = -(m[12]*inv[0] + m[13]*inv[4] + m[14]*inv[8])
	inv[13] = -(m[12]*inv[1] + m[13]*inv[5] + m[14]*inv[9])
	inv[14] = -(m[12]*inv[2] + m[13]*inv[6] + m[14]*inv[10])
	inv[15] = 1

	return inv, det, true
}

// InverseTranspose returns the transpose of the affine inverse. Multiplying a
// plane (a, b, c, d) as a row vector by this matrix moves the plane by m.
func (m Mat4) InverseTranspose() (Mat4, bool) {
	inv, _, ok := m.Inverse()
	if !ok {
		return Mat4{}, false
	}
	return inv.Transpose(), true
}

// NormalMatrix returns the inverse-transpose of m with its translation cleared,
// for transforming surface normals under non-uniform scale or shear.
func (m Mat4) NormalMatrix() (Mat4, bool) {
	a := m
	a[12], a[13], a[14], a[15] = 0, 0, 0, 1
	return a.InverseTranspose()
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// TranslateVec returns a translation matrix for t.
func TranslateVec(t Vec3) Mat4 {
	return Translate(t[0], t[1], t[2])
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ScaleUniform returns a matrix scaling all axes by s.
func ScaleUniform(s float32) Mat4 {
	return Scale(s, s, s)
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians, counter-clockwise: RotateX(Pi/2) maps +Y to +Z.
func RotateX(angle float32) Mat4 {
	s, c := sincos32(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians and turns the opposite way to RotateX and RotateZ:
// RotateY(-Pi/2) maps +X to +Z.
func RotateY(angle float32) Mat4 {
	s, c := sincos32(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians, counter-clockwise: RotateZ(Pi/2) maps +X to +Y.
func RotateZ(angle float32) Mat4 {
	s, c := sincos32(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis (Rodrigues).
// The axis is normalized here; a zero axis is a caller error. angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	n := axis.Normalize()
	x, y, z := n[0], n[1], n[2]

	s, c := sincos32(angle)
	t := 1 - c

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

func checkPerspective(fov, aspect, near, far float32) {
	if fov <= 0 {
		panic(fmt.Sprintf("math: fov must be > 0, got %v", fov))
	}
	if aspect <= 0 {
		panic(fmt.Sprintf("math: aspect ratio must be > 0, got %v", aspect))
	}
	if near <= 0 || near >= far {
		panic(fmt.Sprintf("math: need 0 < near < far, got near=%v far=%v", near, far))
	}
}

// PerspectiveLH returns a left-handed perspective projection mapping view depth
// [near, far] to clip z in [-w, w]. fov is the vertical field of view in
// radians, aspect is width/height. Panics unless fov > 0, aspect > 0 and
// 0 < near < far.
func PerspectiveLH(fov, aspect, near, far float32) Mat4 {
	checkPerspective(fov, aspect, near, far)

	e := float32(1 / math.Tan(float64(fov)/2))
	fn := 1 / (far - near)

	return Mat4{
		e / aspect, 0, 0, 0,
		0, e, 0, 0,
		0, 0, (far + near) * fn, 1,
		0, 0, -2 * far * near * fn, 0,
	}
}

// PerspectiveLHZeroToOne is the Direct3D flavour of PerspectiveLH: view depth
// [near, far] maps to clip z in [0, w].
func PerspectiveLHZeroToOne(fov, aspect, near, far float32) Mat4 {
	checkPerspective(fov, aspect, near, far)

	e := float32(1 / math.Tan(float64(fov)/2))
	fRange := far / (far - near)

	return Mat4{
		e / aspect, 0, 0, 0,
		0, e, 0, 0,
		0, 0, fRange, 1,
		0, 0, -fRange * near, 0,
	}
}

// PerspectiveOffCenterLH returns a left-handed perspective projection for the
// view window [left, right] x [bottom, top] on the near plane, with clip z in
// [-w, w].
func PerspectiveOffCenterLH(left, right, bottom, top, near, far float32) Mat4 {
	if left == right || bottom == top {
		panic("math: degenerate off-center view window")
	}
	if near <= 0 || near >= far {
		panic(fmt.Sprintf("math: need 0 < near < far, got near=%v far=%v", near, far))
	}

	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4{
		2 * near * rl, 0, 0, 0,
		0, 2 * near * tb, 0, 0,
		-(left + right) * rl, -(top + bottom) * tb, (far + near) * fn, 1,
		0, 0, -2 * far * near * fn, 0,
	}
}

// OrthoOffCenterLH returns a left-handed orthographic projection with clip z in
// [-1, 1].
func OrthoOffCenterLH(left, right, bottom, top, near, far float32) Mat4 {
	if left == right || bottom == top || near == far {
		panic("math: degenerate orthographic volume")
	}

	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, 2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAtLH returns a left-handed view matrix looking from eye to target.
func LookAtLH(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	return Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}
}

// String formats the matrix one row per line.
func (m Mat4) String() string {
	return fmt.Sprintf("[%13.6f %13.6f %13.6f %13.6f]\n[%13.6f %13.6f %13.6f %13.6f]\n[%13.6f %13.6f %13.6f %13.6f]\n[%13.6f %13.6f %13.6f %13.6f]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
