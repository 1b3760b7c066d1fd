package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	if length := n.Length(); math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("zero quaternion should normalize to identity")
	}
}

func TestQuatSlerp(t *testing.T) {
	// Test endpoints
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))

	// At t=0, should equal q1
	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	// At t=1, should equal q2
	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// At t=0.5, should be halfway
	result5 := q1.Slerp(q2, 0.5)
	// For 90 degree rotation, halfway should be 45 degrees
	expectedW := float32(math.Cos(float64(math.Pi / 8))) // cos(45/2 degrees)
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesRotations(t *testing.T) {
	for _, deg := range []float32{-120, -90, -30, 15, 45, 90, 170} {
		a := DegToRad(deg)
		cases := []struct {
			name string
			axis Vec3
			want Mat4
		}{
			{"X", Vec3{1, 0, 0}, RotateX(a)},
			{"Y", Vec3{0, 1, 0}, RotateY(a)},
			{"Z", Vec3{0, 0, 1}, RotateZ(a)},
			{"axis", Vec3{1, 1, 1}.Normalize(), RotateAxis(Vec3{1, 1, 1}, a)},
		}
		for _, c := range cases {
			got := QuatFromAxisAngle(c.axis, a).ToMat4()
			if !matApprox(got, c.want, 1e-5) {
				t.Errorf("%s %v deg: quaternion matrix\n%v\nwant\n%v", c.name, deg, got, c.want)
			}
		}
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 0, 1}, DegToRad(30))
	b := QuatFromAxisAngle(Vec3{0, 0, 1}, DegToRad(60))
	got := a.Mul(b).ToMat4()
	if want := RotateZ(DegToRad(90)); !matApprox(got, want, 1e-5) {
		t.Errorf("30+60 deg about Z:\n%v\nwant\n%v", got, want)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRollPitchYaw(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		deg  float32
		want Vec3
	}{
		{"roll", Vec3{1, 0, 0}, 40, Vec3{DegToRad(40), 0, 0}},
		{"pitch", Vec3{0, 1, 0}, -25, Vec3{0, DegToRad(-25), 0}},
		{"yaw", Vec3{0, 0, 1}, 135, Vec3{0, 0, DegToRad(135)}},
		{"none", Vec3{0, 0, 1}, 0, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromAxisAngle(tt.axis, DegToRad(tt.deg)).RollPitchYaw()
			for i := range got {
				if abs(got[i]-tt.want[i]) > 1e-4 {
					t.Errorf("RollPitchYaw() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}

	// gimbal lock stays finite
	lock := QuatFromAxisAngle(Vec3{0, 1, 0}, HalfPi).RollPitchYaw()
	if abs(lock[1]-HalfPi) > 1e-3 {
		t.Errorf("pitch at gimbal lock = %v, want %v", lock[1], HalfPi)
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	result := LerpVec3(a, b, 0.5)
	expected := Vec3{5, 10, 15}

	for i := 0; i < 3; i++ {
		if math.Abs(float64(result[i]-expected[i])) > 0.001 {
			t.Errorf("LerpVec3 component %d: expected %v, got %v", i, expected[i], result[i])
		}
	}
}
