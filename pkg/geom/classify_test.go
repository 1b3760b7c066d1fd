package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/cullcore/pkg/math"
)

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "front", Front.String())
	assert.Equal(t, "back", Back.String())
	assert.Equal(t, "intersect", Intersect.String())
	assert.Equal(t, "unknown", Classification(9).String())
}

func TestExtremeCorners(t *testing.T) {
	b := NewAABB(0, 1, 2, 3, 4, 5)

	lo, hi := ExtremeCorners(b, NewPlane(1, -1, 0, 0))
	assert.Equal(t, math.Vec3{0, 3, 5}, lo)
	assert.Equal(t, math.Vec3{1, 2, 4}, hi)
}

func TestClassifyAABB(t *testing.T) {
	// x = 0, front is +X
	p := NewPlane(1, 0, 0, 0)

	tests := []struct {
		name string
		box  AABB
		want Classification
	}{
		{"in front", NewAABB(1, 2, -1, 1, -1, 1), Front},
		{"behind", NewAABB(-3, -1, -1, 1, -1, 1), Back},
		{"straddling", NewAABB(-1, 1, -1, 1, -1, 1), Intersect},
		{"touching from front", NewAABB(0, 2, 0, 1, 0, 1), Front},
		{"touching from behind", NewAABB(-2, 0, 0, 1, 0, 1), Back},
		{"flat on plane", NewAABB(0, 0, 0, 1, 0, 1), Back},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAABB(tt.box, p))
		})
	}
}

func TestClassifyAABBTiltedPlane(t *testing.T) {
	// x + y + z = 3 facing away from the origin
	p := NewPlane(1, 1, 1, -3)

	assert.Equal(t, Back, ClassifyAABB(NewAABB(0, 0.9, 0, 0.9, 0, 0.9), p))
	assert.Equal(t, Intersect, ClassifyAABB(NewAABB(0, 2, 0, 2, 0, 2), p))
	assert.Equal(t, Front, ClassifyAABB(NewAABB(1.1, 2, 1.1, 2, 1.1, 2), p))

	// flipping the plane swaps front and back only
	assert.Equal(t, Front, ClassifyAABB(NewAABB(0, 0.9, 0, 0.9, 0, 0.9), p.Flip()))
	assert.Equal(t, Intersect, ClassifyAABB(NewAABB(0, 2, 0, 2, 0, 2), p.Flip()))
}

func TestClassifyAABBMatchesAllCorners(t *testing.T) {
	// integer inputs keep every distance exact
	r := rand.New(rand.NewPCG(17, 19))
	coord := func() float32 { return float32(math.RandUint(r, 0, 21)) - 10 }

	for i := 0; i < 2000; i++ {
		b := NewAABB(coord(), coord(), coord(), coord(), coord(), coord())
		b.Normalize()
		p := NewPlane(coord(), coord(), coord(), coord())

		var pos, neg bool
		for _, c := range b.Corners() {
			d := p.SignedDistance(c)
			pos = pos || d > 0
			neg = neg || d < 0
		}

		var want Classification
		switch {
		case pos && neg:
			want = Intersect
		case pos:
			want = Front
		default:
			want = Back
		}

		if !assert.Equal(t, want, ClassifyAABB(b, p), "box %v plane %v", b, p) {
			return
		}
	}
}

func TestClassifySphere(t *testing.T) {
	// z = 5, front is +Z
	p := NewPlane(0, 0, 1, -5)

	tests := []struct {
		name   string
		sphere Sphere
		want   Classification
	}{
		{"in front", NewSphereXYZ(0, 0, 10, 1), Front},
		{"behind", NewSphereXYZ(3, 3, 0, 2), Back},
		{"crossing", NewSphereXYZ(0, 0, 5.5, 1), Intersect},
		{"centre on plane", NewSphereXYZ(9, 9, 5, 1), Intersect},
		{"tangent in front", NewSphereXYZ(0, 0, 7, 2), Front},
		{"tangent behind", NewSphereXYZ(0, 0, 3, 2), Back},
		{"point sphere on plane", NewSphereXYZ(0, 0, 5, 0), Front},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySphere(tt.sphere, p))
		})
	}
}

func TestClassifyPoint(t *testing.T) {
	p := NewPlane(0, 1, 0, -1)

	assert.Equal(t, Front, ClassifyPoint(math.Vec3{0, 2, 0}, p))
	assert.Equal(t, Back, ClassifyPoint(math.Vec3{0, 0, 0}, p))
	assert.Equal(t, Intersect, ClassifyPoint(math.Vec3{4, 1, -4}, p))
}
