package geom

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/cullcore/pkg/math"
)

// AABB is an axis-aligned box stored as one [low, high] interval per axis.
//
// low <= high is not maintained automatically. Operations that can invert an
// axis (Neg, Mul or Div by a negative factor, ResizeMin/ResizeMax with a
// negative span) leave it to the caller to check IsValid or call Normalize.
type AABB struct {
	X0, X1 float32
	Y0, Y1 float32
	Z0, Z1 float32
}

// NewAABB builds a box from its bounds in (x0, x1, y0, y1, z0, z1) order.
func NewAABB(x0, x1, y0, y1, z0, z1 float32) AABB {
	return AABB{X0: x0, X1: x1, Y0: y0, Y1: y1, Z0: z0, Z1: z1}
}

// AABBFromSize builds a box of the given size centred at the origin.
func AABBFromSize(size math.Vec3) AABB {
	var b AABB
	b.Resize(size)
	return b
}

// AABBFromMinMax builds a box spanning min to max.
func AABBFromMinMax(min, max math.Vec3) AABB {
	return AABB{X0: min[0], X1: max[0], Y0: min[1], Y1: max[1], Z0: min[2], Z1: max[2]}
}

// Add offsets the box by v.
func (b AABB) Add(v math.Vec3) AABB {
	return AABB{b.X0 + v[0], b.X1 + v[0], b.Y0 + v[1], b.Y1 + v[1], b.Z0 + v[2], b.Z1 + v[2]}
}

// AddScalar offsets every bound by s.
func (b AABB) AddScalar(s float32) AABB {
	return b.Add(math.Vec3{s, s, s})
}

// Sub offsets the box by -v.
func (b AABB) Sub(v math.Vec3) AABB {
	return b.Add(v.Neg())
}

// SubScalar offsets every bound by -s.
func (b AABB) SubScalar(s float32) AABB {
	return b.AddScalar(-s)
}

// Neg mirrors the box through the origin. Bounds are swapped so the result
// stays valid when b is.
func (b AABB) Neg() AABB {
	return AABB{-b.X1, -b.X0, -b.Y1, -b.Y0, -b.Z1, -b.Z0}
}

// Mul scales each axis's bounds by the matching component of v.
func (b AABB) Mul(v math.Vec3) AABB {
	return AABB{b.X0 * v[0], b.X1 * v[0], b.Y0 * v[1], b.Y1 * v[1], b.Z0 * v[2], b.Z1 * v[2]}
}

// MulScalar scales every bound by s.
func (b AABB) MulScalar(s float32) AABB {
	return b.Mul(math.Vec3{s, s, s})
}

// Div divides each axis's bounds by the matching component of v. Panics on a
// zero component.
func (b AABB) Div(v math.Vec3) AABB {
	if v[0] == 0 || v[1] == 0 || v[2] == 0 {
		panic("geom: AABB.Div by zero component")
	}
	return AABB{b.X0 / v[0], b.X1 / v[0], b.Y0 / v[1], b.Y1 / v[1], b.Z0 / v[2], b.Z1 / v[2]}
}

// DivScalar divides every bound by s. Panics when s is zero.
func (b AABB) DivScalar(s float32) AABB {
	if s == 0 {
		panic("geom: AABB.DivScalar by zero")
	}
	return b.MulScalar(1 / s)
}

// Clear zeroes all bounds.
func (b *AABB) Clear() {
	*b = AABB{}
}

// IsClear reports whether every bound is zero.
func (b AABB) IsClear() bool {
	return b == AABB{}
}

// Floor rounds every bound down.
func (b AABB) Floor() AABB {
	return b.apply(gomath.Floor)
}

// Ceil rounds every bound up.
func (b AABB) Ceil() AABB {
	return b.apply(gomath.Ceil)
}

func (b AABB) apply(f func(float64) float64) AABB {
	g := func(v float32) float32 { return float32(f(float64(v))) }
	return AABB{g(b.X0), g(b.X1), g(b.Y0), g(b.Y1), g(b.Z0), g(b.Z1)}
}

// IsValid reports whether low <= high on every axis.
func (b AABB) IsValid() bool {
	return b.X0 <= b.X1 && b.Y0 <= b.Y1 && b.Z0 <= b.Z1
}

// AssertValid panics naming the first inverted axis.
func (b AABB) AssertValid() {
	switch {
	case b.X0 > b.X1:
		panic(fmt.Sprintf("geom: box inverted on X axis: %v > %v", b.X0, b.X1))
	case b.Y0 > b.Y1:
		panic(fmt.Sprintf("geom: box inverted on Y axis: %v > %v", b.Y0, b.Y1))
	case b.Z0 > b.Z1:
		panic(fmt.Sprintf("geom: box inverted on Z axis: %v > %v", b.Z0, b.Z1))
	}
}

// Normalize swaps the bounds of every inverted axis.
func (b *AABB) Normalize() {
	if b.X0 > b.X1 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Y0 > b.Y1 {
		b.Y0, b.Y1 = b.Y1, b.Y0
	}
	if b.Z0 > b.Z1 {
		b.Z0, b.Z1 = b.Z1, b.Z0
	}
}

// ResizeX sets the X extent to size, keeping the midpoint.
func (b *AABB) ResizeX(size float32) {
	b.X1 = b.MidX() + size*0.5
	b.X0 = b.X1 - size
}

// ResizeY sets the Y extent to size, keeping the midpoint.
func (b *AABB) ResizeY(size float32) {
	b.Y1 = b.MidY() + size*0.5
	b.Y0 = b.Y1 - size
}

// ResizeZ sets the Z extent to size, keeping the midpoint.
func (b *AABB) ResizeZ(size float32) {
	b.Z1 = b.MidZ() + size*0.5
	b.Z0 = b.Z1 - size
}

// Resize sets all three extents, keeping the midpoint.
func (b *AABB) Resize(size math.Vec3) {
	b.ResizeX(size[0])
	b.ResizeY(size[1])
	b.ResizeZ(size[2])
}

// ResizeMaxX moves X1 so the X extent is span.
func (b *AABB) ResizeMaxX(span float32) { b.X1 = b.X0 + span }

// ResizeMaxY moves Y1 so the Y extent is span.
func (b *AABB) ResizeMaxY(span float32) { b.Y1 = b.Y0 + span }

// ResizeMaxZ moves Z1 so the Z extent is span.
func (b *AABB) ResizeMaxZ(span float32) { b.Z1 = b.Z0 + span }

// ResizeMax moves the high bounds, keeping the low ones.
func (b *AABB) ResizeMax(size math.Vec3) {
	b.ResizeMaxX(size[0])
	b.ResizeMaxY(size[1])
	b.ResizeMaxZ(size[2])
}

// ResizeMinX moves X0 so the X extent is span.
func (b *AABB) ResizeMinX(span float32) { b.X0 = b.X1 - span }

// ResizeMinY moves Y0 so the Y extent is span.
func (b *AABB) ResizeMinY(span float32) { b.Y0 = b.Y1 - span }

// ResizeMinZ moves Z0 so the Z extent is span.
func (b *AABB) ResizeMinZ(span float32) { b.Z0 = b.Z1 - span }

// ResizeMin moves the low bounds, keeping the high ones.
func (b *AABB) ResizeMin(size math.Vec3) {
	b.ResizeMinX(size[0])
	b.ResizeMinY(size[1])
	b.ResizeMinZ(size[2])
}

// Expand grows both bounds of every axis by n.
func (b *AABB) Expand(n float32) {
	b.ExpandVec(math.Vec3{n, n, n})
}

// ExpandVec grows each axis by the matching component of margin.
func (b *AABB) ExpandVec(margin math.Vec3) {
	b.ExpandX(margin[0])
	b.ExpandY(margin[1])
	b.ExpandZ(margin[2])
}

// ExpandX grows the X interval by n on both sides.
func (b *AABB) ExpandX(n float32) {
	b.X0 -= n
	b.X1 += n
}

// ExpandY grows the Y interval by n on both sides.
func (b *AABB) ExpandY(n float32) {
	b.Y0 -= n
	b.Y1 += n
}

// ExpandZ grows the Z interval by n on both sides.
func (b *AABB) ExpandZ(n float32) {
	b.Z0 -= n
	b.Z1 += n
}

func (b AABB) MidX() float32 { return (b.X0 + b.X1) * 0.5 }
func (b AABB) MidY() float32 { return (b.Y0 + b.Y1) * 0.5 }
func (b AABB) MidZ() float32 { return (b.Z0 + b.Z1) * 0.5 }

// MidPoint returns the box centre.
func (b AABB) MidPoint() math.Vec3 {
	return math.Vec3{b.MidX(), b.MidY(), b.MidZ()}
}

func (b AABB) SizeX() float32 { return b.X1 - b.X0 }
func (b AABB) SizeY() float32 { return b.Y1 - b.Y0 }
func (b AABB) SizeZ() float32 { return b.Z1 - b.Z0 }

// Size returns the extent on each axis.
func (b AABB) Size() math.Vec3 {
	return math.Vec3{b.SizeX(), b.SizeY(), b.SizeZ()}
}

// MinPoint returns (X0, Y0, Z0).
func (b AABB) MinPoint() math.Vec3 {
	return math.Vec3{b.X0, b.Y0, b.Z0}
}

// MaxPoint returns (X1, Y1, Z1).
func (b AABB) MaxPoint() math.Vec3 {
	return math.Vec3{b.X1, b.Y1, b.Z1}
}

// Volume returns SizeX * SizeY * SizeZ.
func (b AABB) Volume() float32 {
	return b.SizeX() * b.SizeY() * b.SizeZ()
}

// PointInRect reports whether p lies inside the box, bounds included.
func (b AABB) PointInRect(p math.Vec3) bool {
	return p[0] >= b.X0 && p[0] <= b.X1 &&
		p[1] >= b.Y0 && p[1] <= b.Y1 &&
		p[2] >= b.Z0 && p[2] <= b.Z1
}

// Corners returns the eight box corners, bottom face (Y0) first.
func (b AABB) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		{b.X0, b.Y0, b.Z0},
		{b.X1, b.Y0, b.Z0},
		{b.X0, b.Y0, b.Z1},
		{b.X1, b.Y0, b.Z1},
		{b.X0, b.Y1, b.Z0},
		{b.X1, b.Y1, b.Z0},
		{b.X0, b.Y1, b.Z1},
		{b.X1, b.Y1, b.Z1},
	}
}

// BoundingSphere returns the smallest sphere enclosing the box.
func (b AABB) BoundingSphere() Sphere {
	return NewSphere(b.MidPoint(), b.Size().Length()*0.5)
}

// IntersectAABB returns the overlap of a and b and whether it is non-empty.
// Boxes that only touch overlap in a flat box and still count.
func IntersectAABB(a, b AABB) (AABB, bool) {
	r := AABB{
		X0: math.Max(a.X0, b.X0), X1: math.Min(a.X1, b.X1),
		Y0: math.Max(a.Y0, b.Y0), Y1: math.Min(a.Y1, b.Y1),
		Z0: math.Max(a.Z0, b.Z0), Z1: math.Min(a.Z1, b.Z1),
	}
	return r, r.IsValid()
}

func (b AABB) String() string {
	return fmt.Sprintf("AABB{x: [%g, %g], y: [%g, %g], z: [%g, %g]}", b.X0, b.X1, b.Y0, b.Y1, b.Z0, b.Z1)
}
