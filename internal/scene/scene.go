// Package scene loads named bounding volumes from YAML or TOML files and
// watches them for changes.
package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

// Kind identifies the shape of a Volume.
type Kind int

const (
	KindPoint Kind = iota
	KindBox
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Volume is a named point, box or sphere. Only the field matching Kind is used.
type Volume struct {
	Name   string
	Kind   Kind
	Point  math.Vec3
	Box    geom.AABB
	Sphere geom.Sphere
}

// NewPoint returns a point volume.
func NewPoint(name string, p math.Vec3) Volume {
	return Volume{Name: name, Kind: KindPoint, Point: p}
}

// NewBox returns a box volume.
func NewBox(name string, b geom.AABB) Volume {
	return Volume{Name: name, Kind: KindBox, Box: b}
}

// NewSphere returns a sphere volume.
func NewSphere(name string, s geom.Sphere) Volume {
	return Volume{Name: name, Kind: KindSphere, Sphere: s}
}

// Test reports whether the volume is at least partly inside f.
func (v Volume) Test(f geom.Frustum) bool {
	switch v.Kind {
	case KindBox:
		return f.TestAABB(v.Box)
	case KindSphere:
		return f.TestSphere(v.Sphere)
	default:
		return f.TestPoint(v.Point)
	}
}

// Containment classifies the volume against f.
func (v Volume) Containment(f geom.Frustum) geom.Containment {
	switch v.Kind {
	case KindBox:
		return f.ContainsAABB(v.Box)
	case KindSphere:
		return f.ContainsSphere(v.Sphere)
	default:
		return f.ContainsPoint(v.Point)
	}
}

// Bounds returns the axis-aligned box enclosing the volume.
func (v Volume) Bounds() geom.AABB {
	switch v.Kind {
	case KindBox:
		return v.Box
	case KindSphere:
		c, r := v.Sphere.Center, v.Sphere.Radius
		return geom.NewAABB(c[0]-r, c[0]+r, c[1]-r, c[1]+r, c[2]-r, c[2]+r)
	default:
		return geom.AABBFromMinMax(v.Point, v.Point)
	}
}

func (v Volume) String() string {
	switch v.Kind {
	case KindBox:
		return fmt.Sprintf("%s %q %v", v.Kind, v.Name, v.Box)
	case KindSphere:
		return fmt.Sprintf("%s %q %v", v.Kind, v.Name, v.Sphere)
	default:
		return fmt.Sprintf("%s %q %v", v.Kind, v.Name, v.Point)
	}
}

// Scene is an ordered list of volumes.
type Scene struct {
	Volumes []Volume
}

// Len returns the number of volumes.
func (s *Scene) Len() int {
	return len(s.Volumes)
}

// Bounds returns the box enclosing every volume. ok is false for an empty scene.
func (s *Scene) Bounds() (b geom.AABB, ok bool) {
	for i, v := range s.Volumes {
		vb := v.Bounds()
		if i == 0 {
			b = vb
			continue
		}
		b = geom.NewAABB(
			math.Min(b.X0, vb.X0), math.Max(b.X1, vb.X1),
			math.Min(b.Y0, vb.Y0), math.Max(b.Y1, vb.Y1),
			math.Min(b.Z0, vb.Z0), math.Max(b.Z1, vb.Z1),
		)
	}
	return b, len(s.Volumes) > 0
}

// Random fills a scene with n unnamed volumes of random kind inside the cube
// [-extent, extent]. Sizes are up to a tenth of extent.
func Random(r *rand.Rand, n int, extent float32) *Scene {
	s := &Scene{Volumes: make([]Volume, 0, n)}
	maxSize := extent / 10

	for i := 0; i < n; i++ {
		center := math.RandVec3Range(r, -extent, extent)
		name := uuid.NewString()

		switch Kind(math.RandUint(r, 0, 3)) {
		case KindPoint:
			s.Volumes = append(s.Volumes, NewPoint(name, center))
		case KindBox:
			b := geom.AABBFromSize(math.RandVec3Range(r, 0, maxSize)).Add(center)
			s.Volumes = append(s.Volumes, NewBox(name, b))
		default:
			radius := math.RandFloatRange(r, 0, maxSize)
			s.Volumes = append(s.Volumes, NewSphere(name, geom.NewSphere(center, radius)))
		}
	}
	return s
}
