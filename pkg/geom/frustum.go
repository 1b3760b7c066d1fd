package geom

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/cullcore/pkg/math"
)

// FrustumPlane indexes the six planes of a Frustum.
type FrustumPlane int

const (
	PlaneLeft FrustumPlane = iota
	PlaneRight
	PlaneTop
	PlaneBottom
	PlaneNear
	PlaneFar
)

var planeNames = [...]string{"left", "right", "top", "bottom", "near", "far"}

func (p FrustumPlane) String() string {
	if p < 0 || int(p) >= len(planeNames) {
		return fmt.Sprintf("FrustumPlane(%d)", int(p))
	}
	return planeNames[p]
}

// Containment is the result of a frustum containment query.
type Containment int

const (
	Disjoint Containment = iota
	Intersects
	Contains
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Intersects:
		return "intersects"
	case Contains:
		return "contains"
	default:
		return "unknown"
	}
}

// Frustum is a view volume bounded by six planes whose positive half-spaces
// face inward.
//
// A frustum built by NewFrustum is normalized. One extracted from a projection
// matrix is not, unless requested: its planes only answer sign tests, so call
// Normalize before any sphere query.
type Frustum struct {
	Left, Right, Top, Bottom, Near, Far Plane

	normalized bool
}

// NewFrustum builds a camera-space frustum looking down +Z. fov is the
// vertical field of view in radians and aspect is width/height. Panics unless
// fov > 0, aspect > 0 and 0 < near < far.
func NewFrustum(fov, aspect, near, far float32) Frustum {
	var f Frustum
	f.Init(fov, aspect, near, far)
	return f
}

// Init rebuilds f from camera parameters. See NewFrustum.
func (f *Frustum) Init(fov, aspect, near, far float32) {
	if fov <= 0 || aspect <= 0 || near <= 0 || near >= far {
		panic(fmt.Sprintf("geom: invalid frustum parameters fov=%v aspect=%v near=%v far=%v", fov, aspect, near, far))
	}

	// focal length
	e := float32(1 / gomath.Tan(float64(fov)/2))

	horiz := 1 / float32(gomath.Sqrt(float64(e*e+aspect*aspect)))
	vert := 1 / float32(gomath.Sqrt(float64(e*e+1)))

	f.Left = NewPlane(e*horiz, 0, aspect*horiz, 0)
	f.Right = NewPlane(-e*horiz, 0, aspect*horiz, 0)
	f.Bottom = NewPlane(0, e*vert, vert, 0)
	f.Top = NewPlane(0, -e*vert, vert, 0)
	f.Near = NewPlane(0, 0, 1, -near)
	f.Far = NewPlane(0, 0, -1, far)
	f.normalized = true
}

// NewFrustumFromProjection extracts the planes of proj. See SetFromProjection.
func NewFrustumFromProjection(proj math.Mat4, normalize bool) Frustum {
	var f Frustum
	f.SetFromProjection(proj, normalize)
	return f
}

// SetFromProjection extracts the planes of a projection whose clip depth is
// [-w, w], such as math.PerspectiveLH. It works for off-center and
// orthographic projections too. Passing a view-projection matrix yields the
// frustum in the view's source space.
func (f *Frustum) SetFromProjection(proj math.Mat4, normalize bool) {
	f.setFromColumns(proj, proj.Col(2).Add(proj.Col(3)), normalize)
}

// SetFromProjectionZeroToOne is SetFromProjection for clip depth [0, w], such
// as math.PerspectiveLHZeroToOne.
func (f *Frustum) SetFromProjectionZeroToOne(proj math.Mat4, normalize bool) {
	f.setFromColumns(proj, proj.Col(2), normalize)
}

func (f *Frustum) setFromColumns(m math.Mat4, near math.Vec4, normalize bool) {
	c0, c1, c2, c3 := m.Col(0), m.Col(1), m.Col(2), m.Col(3)

	f.Left = PlaneFromVec4(c3.Add(c0))
	f.Right = PlaneFromVec4(c3.Sub(c0))
	f.Bottom = PlaneFromVec4(c3.Add(c1))
	f.Top = PlaneFromVec4(c3.Sub(c1))
	f.Near = PlaneFromVec4(near)
	f.Far = PlaneFromVec4(c3.Sub(c2))
	f.normalized = false

	if normalize {
		f.Normalize()
	}
}

// Normalize gives every plane a unit normal.
func (f *Frustum) Normalize() {
	for _, p := range f.planePtrs() {
		p.Normalize()
	}
	f.normalized = true
}

// IsNormalized reports whether the planes have been normalized since they
// were last set.
func (f Frustum) IsNormalized() bool {
	return f.normalized
}

// Planes returns the planes in FrustumPlane order.
func (f Frustum) Planes() [6]Plane {
	return [6]Plane{f.Left, f.Right, f.Top, f.Bottom, f.Near, f.Far}
}

// Plane returns a single plane. Panics on an unknown index.
func (f Frustum) Plane(which FrustumPlane) Plane {
	return f.Planes()[which]
}

func (f *Frustum) planePtrs() [6]*Plane {
	return [6]*Plane{&f.Left, &f.Right, &f.Top, &f.Bottom, &f.Near, &f.Far}
}

// TestPoint reports whether pt is inside the frustum or on its boundary.
func (f Frustum) TestPoint(pt math.Vec3) bool {
	for _, p := range f.Planes() {
		if ClassifyPoint(pt, p) == Back {
			return false
		}
	}
	return true
}

// TestAABB reports whether any part of b may be visible: b is culled as soon
// as one plane has it entirely behind.
func (f Frustum) TestAABB(b AABB) bool {
	for _, p := range f.Planes() {
		if ClassifyAABB(b, p) == Back {
			return false
		}
	}
	return true
}

// TestSphere reports whether any part of s may be visible. The frustum must
// be normalized.
func (f Frustum) TestSphere(s Sphere) bool {
	for _, p := range f.Planes() {
		if ClassifySphere(s, p) == Back {
			return false
		}
	}
	return true
}

// ContainsPoint reports Contains for a point strictly inside, Intersects for
// one on a boundary plane and Disjoint otherwise.
func (f Frustum) ContainsPoint(pt math.Vec3) Containment {
	return containment(f, func(p Plane) Classification { return ClassifyPoint(pt, p) })
}

// ContainsAABB reports Contains when b is in front of every plane, Disjoint
// when it is behind any of them, and Intersects otherwise. Like every
// plane-by-plane test it can report Intersects for a box that is actually
// outside, near a frustum corner.
func (f Frustum) ContainsAABB(b AABB) Containment {
	return containment(f, func(p Plane) Classification { return ClassifyAABB(b, p) })
}

// ContainsSphere is ContainsAABB for spheres. The frustum must be normalized.
func (f Frustum) ContainsSphere(s Sphere) Containment {
	return containment(f, func(p Plane) Classification { return ClassifySphere(s, p) })
}

func containment(f Frustum, classify func(Plane) Classification) Containment {
	result := Contains
	for _, p := range f.Planes() {
		switch classify(p) {
		case Back:
			return Disjoint
		case Intersect:
			result = Intersects
		}
	}
	return result
}

// Transform returns f moved by m, typically the camera's world matrix, to
// bring a camera-space frustum into world space. ok is false when m is not
// invertible. Rigid transforms keep normalized planes normalized; after a
// scale the result must be normalized again.
func (f Frustum) Transform(m math.Mat4) (Frustum, bool) {
	invT, ok := m.InverseTranspose()
	if !ok {
		return f, false
	}
	return f.TransformInvTranspose(invT), true
}

// TransformInvTranspose applies one precomputed inverse-transpose to all six
// planes. The result counts as normalized only if every transformed normal
// still has unit length.
func (f Frustum) TransformInvTranspose(invT math.Mat4) Frustum {
	for _, p := range f.planePtrs() {
		p.Transform(invT)
		if f.normalized && math.Abs(p.Normal.LengthSq()-1) > math.EpsilonE4 {
			f.normalized = false
		}
	}
	return f
}

func (f Frustum) String() string {
	s := "Frustum{"
	for i, p := range f.Planes() {
		if i > 0 {
			s += ", "
		}
		s += FrustumPlane(i).String() + ": " + p.String()
	}
	return s + "}"
}
