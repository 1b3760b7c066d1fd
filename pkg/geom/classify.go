package geom

import "github.com/Faultbox/cullcore/pkg/math"

// Classification is the position of a volume relative to a plane.
type Classification int

const (
	Front Classification = iota
	Back
	Intersect
)

func (c Classification) String() string {
	switch c {
	case Front:
		return "front"
	case Back:
		return "back"
	case Intersect:
		return "intersect"
	default:
		return "unknown"
	}
}

// ExtremeCorners returns the two corners of b that lie furthest apart along
// the plane normal: min is the least advanced, max the most.
func ExtremeCorners(b AABB, p Plane) (min, max math.Vec3) {
	if p.Normal[0] > 0 {
		min[0], max[0] = b.X0, b.X1
	} else {
		min[0], max[0] = b.X1, b.X0
	}
	if p.Normal[1] > 0 {
		min[1], max[1] = b.Y0, b.Y1
	} else {
		min[1], max[1] = b.Y1, b.Y0
	}
	if p.Normal[2] > 0 {
		min[2], max[2] = b.Z0, b.Z1
	} else {
		min[2], max[2] = b.Z1, b.Z0
	}
	return min, max
}

// ClassifyAABB tests two extreme corners instead of all eight. The box
// intersects the plane when their signed distances have opposite signs;
// otherwise it is in front if the leading corner is, and behind if not.
// A box touching the plane from behind is Back.
func ClassifyAABB(b AABB, p Plane) Classification {
	lo, hi := ExtremeCorners(b, p)
	dMin := p.SignedDistance(lo)
	dMax := p.SignedDistance(hi)

	switch {
	case dMin*dMax < 0:
		return Intersect
	case dMax > 0:
		return Front
	default:
		return Back
	}
}

// ClassifySphere is Front when the centre is at least one radius in front of
// the plane, Back when at least one radius behind, otherwise Intersect.
// The plane must be normalized.
func ClassifySphere(s Sphere, p Plane) Classification {
	d := p.SignedDistance(s.Center)

	switch {
	case d >= s.Radius:
		return Front
	case d <= -s.Radius:
		return Back
	default:
		return Intersect
	}
}

// ClassifyPoint reports the side of p that pt is on; a point on the plane
// is Intersect.
func ClassifyPoint(pt math.Vec3, p Plane) Classification {
	d := p.SignedDistance(pt)

	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	default:
		return Intersect
	}
}
