package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/cullcore/pkg/math"
)

func TestPlaneConstructors(t *testing.T) {
	p := NewPlane(0, 1, 0, -2)
	assert.Equal(t, math.Vec3{0, 1, 0}, p.Normal)
	assert.Equal(t, float32(-2), p.Distance)

	assert.Equal(t, p, PlaneFromVec4(math.Vec4{0, 1, 0, -2}))
	assert.Equal(t, p, PlaneFromNormalDistance(math.Vec3{0, 1, 0}, -2))
	assert.Equal(t, p, PlaneFromPointNormal(math.Vec3{5, 2, -7}, math.Vec3{0, 1, 0}))
	assert.Equal(t, math.Vec4{0, 1, 0, -2}, p.Vec4())
}

func TestPlaneFromPoints(t *testing.T) {
	// clockwise seen from above gives an upward normal
	p := PlaneFromPoints(math.Vec3{0, 3, 0}, math.Vec3{0, 3, 1}, math.Vec3{1, 3, 0})

	assert.True(t, p.Normal.Equal(math.Vec3{0, 1, 0}), "normal %v", p.Normal)
	assert.InDelta(t, -3, p.Distance, 1e-6)
	assert.InDelta(t, 1, p.Normal.Length(), 1e-6)
}

func TestPlaneSignedDistance(t *testing.T) {
	p := NewPlane(0, 0, 1, -5)

	tests := []struct {
		name string
		pt   math.Vec3
		want float32
	}{
		{"in front", math.Vec3{3, 4, 8}, 3},
		{"behind", math.Vec3{0, 0, 1}, -4},
		{"on plane", math.Vec3{-2, 9, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.SignedDistance(tt.pt))
		})
	}
}

func TestPlaneSolve(t *testing.T) {
	// x + 2y + 4z - 8 = 0
	p := NewPlane(1, 2, 4, -8)

	assert.Equal(t, float32(2), p.SolveForX(1, 1))
	assert.Equal(t, float32(1), p.SolveForY(2, 1))
	assert.Equal(t, float32(1.5), p.SolveForZ(0, 1))

	// degenerate axes return 0 rather than dividing by zero
	flat := NewPlane(0, 1, 0, -3)
	assert.Equal(t, float32(0), flat.SolveForX(1, 1))
	assert.Equal(t, float32(3), flat.SolveForY(7, 7))
	assert.Equal(t, float32(0), flat.SolveForZ(1, 1))
}

func TestPlaneProjectPoint(t *testing.T) {
	p := NewPlane(0, 1, 0, -2)
	got := p.ProjectPoint(math.Vec3{4, 10, -1})

	assert.Equal(t, math.Vec3{4, 2, -1}, got)
	assert.InDelta(t, 0, p.SignedDistance(got), 1e-6)
}

func TestPlaneNormalize(t *testing.T) {
	p := NewPlane(0, 3, 4, 10)
	p.Normalize()

	assert.True(t, p.Equal(NewPlane(0, 0.6, 0.8, 2)), "got %v", p)

	q := NewPlane(2, 0, 0, 4).Normalized()
	assert.True(t, q.Equal(NewPlane(1, 0, 0, 2)), "got %v", q)
}

func TestPlaneFlip(t *testing.T) {
	p := NewPlane(1, 0, 0, -1)
	pt := math.Vec3{3, 0, 0}

	assert.Equal(t, -p.SignedDistance(pt), p.Flip().SignedDistance(pt))
}

func TestPlaneEqualTolerance(t *testing.T) {
	p := NewPlane(0, 1, 0, 1)

	assert.True(t, p.Equal(NewPlane(0, 1+5e-6, 0, 1-5e-6)))
	assert.False(t, p.Equal(NewPlane(0, 1, 0, 1.001)))
}

func TestPlaneTransform(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		m     math.Mat4
		want  Plane
	}{
		{
			name:  "translate along normal",
			plane: NewPlane(0, 0, 1, -0.01),
			m:     math.Translate(0, 0, 5),
			want:  NewPlane(0, 0, 1, -5.01),
		},
		{
			name:  "translate across normal",
			plane: NewPlane(0, 1, 0, 0),
			m:     math.Translate(7, 0, -3),
			want:  NewPlane(0, 1, 0, 0),
		},
		{
			name:  "rotate",
			plane: NewPlane(0, 0, 1, -2),
			m:     math.RotateY(math.DegToRad(-90)),
			want:  NewPlane(-1, 0, 0, -2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invT, ok := tt.m.InverseTranspose()
			assert.True(t, ok)

			got := tt.plane.Transformed(invT)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestPlaneTransformKeepsPointsOnPlane(t *testing.T) {
	// non-uniform scale: the forward matrix would tilt the plane wrongly
	m := math.Scale(1, 3, 1).Mul(math.RotateZ(math.DegToRad(30))).Mul(math.Translate(2, -1, 4))
	invT, ok := m.InverseTranspose()
	assert.True(t, ok)

	a, b, c := math.Vec3{1, 0, 0}, math.Vec3{0, 1, 1}, math.Vec3{2, 2, -1}
	p := PlaneFromPoints(a, b, c)
	moved := p.Transformed(invT)

	for _, pt := range []math.Vec3{a, b, c} {
		assert.InDelta(t, 0, moved.SignedDistance(m.TransformPoint(pt)), 1e-4)
	}

	// an off-plane point keeps its side
	off := a.Add(p.Normal)
	assert.Greater(t, moved.SignedDistance(m.TransformPoint(off)), float32(0))
}
