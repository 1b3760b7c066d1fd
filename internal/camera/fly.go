package camera

import (
	"github.com/Faultbox/cullcore/pkg/geom"
	"github.com/Faultbox/cullcore/pkg/math"
)

// FlyCamera is a free camera placed by position, yaw and pitch.
// Local forward is +Z, right is +X and up is +Y. Positive yaw turns
// towards +X, positive pitch looks down.
type FlyCamera struct {
	Lens

	Position math.Vec3
	Yaw      float32 // radians
	Pitch    float32 // radians
}

// NewFlyCamera creates a camera at the origin looking down +Z.
func NewFlyCamera(lens Lens) *FlyCamera {
	return &FlyCamera{Lens: lens}
}

// Rotate turns the camera, wrapping yaw and clamping pitch short of the poles.
func (c *FlyCamera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw = math.WrapYaw(c.Yaw + deltaYaw)
	c.Pitch = math.ClampPitch(c.Pitch + deltaPitch)
}

// Move translates the camera along its forward and right axes and world up.
func (c *FlyCamera) Move(forward, right, up float32) {
	c.Position = c.Position.
		Add(c.Forward().Scale(forward)).
		Add(c.Right().Scale(right)).
		Add(math.Vec3{0, up, 0})
}

func (c *FlyCamera) orientation() math.Mat4 {
	return math.RotateX(c.Pitch).Mul(math.RotateY(c.Yaw))
}

// Forward returns the unit view direction in world space.
func (c *FlyCamera) Forward() math.Vec3 {
	return c.orientation().TransformDirection(math.Vec3{0, 0, 1})
}

// Right returns the unit right direction in world space.
func (c *FlyCamera) Right() math.Vec3 {
	return c.orientation().TransformDirection(math.Vec3{1, 0, 0})
}

// World returns the camera-to-world matrix: pitch, then yaw, then translation.
func (c *FlyCamera) World() math.Mat4 {
	return c.orientation().Mul(math.TranslateVec(c.Position))
}

// View returns the world-to-camera matrix.
func (c *FlyCamera) View() math.Mat4 {
	// rotation and translation only, always invertible
	view, _, _ := c.World().Inverse()
	return view
}

// ViewProjection returns View multiplied by the lens projection.
func (c *FlyCamera) ViewProjection() math.Mat4 {
	return c.View().Mul(c.Projection())
}

// LocalFrustum returns the frustum in camera space.
func (c *FlyCamera) LocalFrustum() geom.Frustum {
	return c.Frustum()
}

// WorldFrustum returns the camera frustum moved into world space.
func (c *FlyCamera) WorldFrustum() geom.Frustum {
	f, _ := c.LocalFrustum().Transform(c.World())
	return f
}

// ExtractedFrustum returns the world-space frustum taken from the rows of
// ViewProjection, normalized.
func (c *FlyCamera) ExtractedFrustum() geom.Frustum {
	return c.extract(c.ViewProjection())
}
