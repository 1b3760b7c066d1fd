package geom

import (
	"fmt"

	"github.com/Faultbox/cullcore/pkg/math"
)

// Sphere is a bounding sphere. Constructors and setters store |radius|, so
// Radius is never negative unless assigned directly.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// NewSphere builds a sphere, taking the absolute value of r.
func NewSphere(center math.Vec3, r float32) Sphere {
	return Sphere{Center: center, Radius: math.Abs(r)}
}

// NewSphereXYZ builds a sphere from centre coordinates and radius.
func NewSphereXYZ(x, y, z, r float32) Sphere {
	return NewSphere(math.Vec3{x, y, z}, r)
}

// Set replaces centre and radius.
func (s *Sphere) Set(center math.Vec3, r float32) {
	*s = NewSphere(center, r)
}

// SetXYZ replaces centre and radius.
func (s *Sphere) SetXYZ(x, y, z, r float32) {
	*s = NewSphereXYZ(x, y, z, r)
}

// Clear zeroes centre and radius.
func (s *Sphere) Clear() {
	*s = Sphere{}
}

// IsClear reports whether centre and radius are all zero.
func (s Sphere) IsClear() bool {
	return s == Sphere{}
}

// IsValid reports whether the radius is non-negative.
func (s Sphere) IsValid() bool {
	return s.Radius >= 0
}

// Normalize restores a non-negative radius.
func (s *Sphere) Normalize() {
	s.Radius = math.Abs(s.Radius)
}

// Offset moves the centre by v.
func (s *Sphere) Offset(v math.Vec3) {
	s.Center = s.Center.Add(v)
}

// Expand grows the radius by n. Shrinking past zero leaves a zero radius.
func (s *Sphere) Expand(n float32) {
	s.Radius = math.Max(s.Radius+n, 0)
}

// Volume returns 4/3 * Pi * r^3.
func (s Sphere) Volume() float32 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// ContainsPoint reports whether p is inside the sphere or on its surface.
func (s Sphere) ContainsPoint(p math.Vec3) bool {
	return p.Sub(s.Center).LengthSq() <= s.Radius*s.Radius
}

// Equal compares centres within math.EpsilonE5 and radii exactly.
func (s Sphere) Equal(other Sphere) bool {
	return s.Center.Equal(other.Center) && s.Radius == other.Radius
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere{c: (%g, %g, %g), r: %g}", s.Center[0], s.Center[1], s.Center[2], s.Radius)
}
