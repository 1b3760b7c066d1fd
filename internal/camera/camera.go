// Package camera provides cameras that produce view matrices and world-space
// culling frustums.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

// Lens holds the perspective parameters shared by every camera.
// FOV is vertical, in radians.
type Lens struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// ZeroToOne selects D3D-style [0,1] clip depth for Projection.
	ZeroToOne bool
}

// Projection returns the perspective matrix for the lens.
func (l Lens) Projection() math.Mat4 {
	if l.ZeroToOne {
		return math.PerspectiveLHZeroToOne(l.FOV, l.Aspect, l.Near, l.Far)
	}
	return math.PerspectiveLH(l.FOV, l.Aspect, l.Near, l.Far)
}

// Frustum returns the view-space frustum of the lens.
func (l Lens) Frustum() geom.Frustum {
	return geom.NewFrustum(l.FOV, l.Aspect, l.Near, l.Far)
}

// extract builds a normalized frustum from a combined view-projection matrix.
func (l Lens) extract(viewProj math.Mat4) geom.Frustum {
	var f geom.Frustum
	if l.ZeroToOne {
		f.SetFromProjectionZeroToOne(viewProj, true)
	} else {
		f.SetFromProjection(viewProj, true)
	}
	return f
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Lens

	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera(lens Lens) *OrbitCamera {
	return &OrbitCamera{
		Lens:            lens,
		Distance:        200.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     1.0,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{x, y, z})
}

// View returns the view matrix for this camera.
func (c *OrbitCamera) View() math.Mat4 {
	up := math.Vec3{0, 1, 0}
	return math.LookAtLH(c.Position(), c.Center, up)
}

// ViewProjection returns View multiplied by the lens projection.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.View().Mul(c.Projection())
}

// WorldFrustum returns the camera frustum in world space. ok is false only
// when the view matrix is degenerate, which happens when Distance is zero.
func (c *OrbitCamera) WorldFrustum() (f geom.Frustum, ok bool) {
	world, _, ok := c.View().Inverse()
	if !ok {
		return geom.Frustum{}, false
	}
	return c.Frustum().Transform(world)
}

// ExtractedFrustum returns the world-space frustum taken from ViewProjection,
// normalized.
func (c *OrbitCamera) ExtractedFrustum() geom.Frustum {
	return c.extract(c.ViewProjection())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	c.RotationX = math.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off until the bounding
// sphere of b fits inside the vertical field of view.
func (c *OrbitCamera) FitToBounds(b geom.AABB) {
	s := b.BoundingSphere()
	c.Center = s.Center

	half := float64(c.FOV) / 2
	if half <= 0 {
		half = gomath.Pi / 4
	}
	c.Distance = s.Radius/float32(gomath.Sin(half)) + c.Near
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
