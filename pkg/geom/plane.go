// Package geom provides the bounding volumes and the view frustum used for
// visibility culling: planes, axis-aligned boxes, spheres and the six-plane
// frustum with its classification tests.
//
// All types are plain values. A Frustum may be shared read-only between
// goroutines; mutation must be serialized by the caller.
package geom

import (
	"fmt"

	"github.com/Faultbox/cullcore/pkg/math"
)

// Plane is A*x + B*y + C*z + D = 0 with Normal = (A, B, C) and Distance = D.
// Distance is a Euclidean offset only while Normal has unit length;
// unnormalized planes are still fine for half-space (sign) tests.
type Plane struct {
	Normal   math.Vec3
	Distance float32
}

// NewPlane builds a plane from its four coefficients.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{Normal: math.Vec3{a, b, c}, Distance: d}
}

// PlaneFromVec4 reads (A, B, C, D) from v.
func PlaneFromVec4(v math.Vec4) Plane {
	return Plane{Normal: v.XYZ(), Distance: v[3]}
}

// PlaneFromPoints builds the plane through three points given in clockwise
// order. The normal is normalized; collinear points give a NaN plane.
func PlaneFromPoints(p0, p1, p2 math.Vec3) Plane {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	return Plane{Normal: n, Distance: -n.Dot(p0)}
}

// PlaneFromNormalDistance builds a plane from a normal and D as given.
func PlaneFromNormalDistance(normal math.Vec3, distance float32) Plane {
	return Plane{Normal: normal, Distance: distance}
}

// PlaneFromPointNormal builds the plane through point with the given normal.
// The distance is only a true offset when normal is unit length.
func PlaneFromPointNormal(point, normal math.Vec3) Plane {
	return Plane{Normal: normal, Distance: -normal.Dot(point)}
}

// SignedDistance returns dot(Normal, p) + Distance. Positive means in front
// of the plane, negative means behind it.
func (p Plane) SignedDistance(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.Distance
}

// SolveForX returns the x on the plane for the given y and z, or 0 when the
// plane is parallel to the X axis.
func (p Plane) SolveForX(y, z float32) float32 {
	if p.Normal[0] == 0 {
		return 0
	}
	return -(p.Normal[1]*y + p.Normal[2]*z + p.Distance) / p.Normal[0]
}

// SolveForY returns the y on the plane for the given x and z, or 0 when the
// plane is parallel to the Y axis.
func (p Plane) SolveForY(x, z float32) float32 {
	if p.Normal[1] == 0 {
		return 0
	}
	return -(p.Normal[0]*x + p.Normal[2]*z + p.Distance) / p.Normal[1]
}

// SolveForZ returns the z on the plane for the given x and y, or 0 when the
// plane is parallel to the Z axis.
func (p Plane) SolveForZ(x, y float32) float32 {
	if p.Normal[2] == 0 {
		return 0
	}
	return -(p.Normal[0]*x + p.Normal[1]*y + p.Distance) / p.Normal[2]
}

// ProjectPoint moves pt along the normal onto the plane.
func (p Plane) ProjectPoint(pt math.Vec3) math.Vec3 {
	return pt.Sub(p.Normal.Scale(p.SignedDistance(pt)))
}

// Normalize scales the plane so the normal has unit length.
func (p *Plane) Normalize() {
	invLen := 1 / p.Normal.Length()
	p.Normal = p.Normal.Scale(invLen)
	p.Distance *= invLen
}

// Normalized returns a normalized copy of p.
func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// Transform moves the plane by the transform whose inverse-transpose is
// invTranspose: (A, B, C, D) is multiplied as a row vector by the matrix.
// Use Mat4.InverseTranspose to build the argument once and reuse it for many
// planes.
func (p *Plane) Transform(invTranspose math.Mat4) {
	*p = PlaneFromVec4(invTranspose.MulVec4(p.Vec4()))
}

// Transformed is the value form of Transform.
func (p Plane) Transformed(invTranspose math.Mat4) Plane {
	p.Transform(invTranspose)
	return p
}

// Flip reverses the plane's facing.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Neg(), Distance: -p.Distance}
}

// Vec4 packs the plane as (A, B, C, D).
func (p Plane) Vec4() math.Vec4 {
	return p.Normal.Vec4(p.Distance)
}

// Equal compares normals and distances within math.EpsilonE5.
func (p Plane) Equal(other Plane) bool {
	return p.Normal.Equal(other.Normal) && math.FloatEqual(p.Distance, other.Distance)
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane{n: (%.6f, %.6f, %.6f), d: %.6f}",
		p.Normal[0], p.Normal[1], p.Normal[2], p.Distance)
}
