package math

import "math/rand/v2"

// RandFloat returns a float in [0, 1).
func RandFloat(r *rand.Rand) float32 {
	return r.Float32()
}

// RandFloatRange returns a float in [a, b).
func RandFloatRange(r *rand.Rand, a, b float32) float32 {
	return a + r.Float32()*(b-a)
}

// RandUint returns an integer in [lo, hi). Panics if hi <= lo.
func RandUint(r *rand.Rand, lo, hi uint32) uint32 {
	return lo + r.Uint32N(hi-lo)
}

// RandVec2 returns a vector with components in [0, 1).
func RandVec2(r *rand.Rand) Vec2 {
	return Vec2{r.Float32(), r.Float32()}
}

// RandVec3 returns a vector with components in [0, 1).
func RandVec3(r *rand.Rand) Vec3 {
	return Vec3{r.Float32(), r.Float32(), r.Float32()}
}

// RandVec3Range returns a vector with components in [a, b).
func RandVec3Range(r *rand.Rand, a, b float32) Vec3 {
	return Vec3{RandFloatRange(r, a, b), RandFloatRange(r, a, b), RandFloatRange(r, a, b)}
}

// RandVec4 returns a vector with components in [0, 1).
func RandVec4(r *rand.Rand) Vec4 {
	return Vec4{r.Float32(), r.Float32(), r.Float32(), r.Float32()}
}

// RandColorRGBA returns a random colour with alpha fixed at 1.
func RandColorRGBA(r *rand.Rand) Vec4 {
	return Vec4{r.Float32(), r.Float32(), r.Float32(), 1}
}

// RandRotation returns a rotation about a random axis by a random angle.
func RandRotation(r *rand.Rand) Mat4 {
	axis := RandVec3Range(r, -1, 1)
	for axis.LengthSq() < EpsilonE4 {
		axis = RandVec3Range(r, -1, 1)
	}
	return RotateAxis(axis, RandFloatRange(r, -Pi, Pi))
}

// RandAffine returns scale * rotation * translation with per-axis scale in
// [0.5, 2) and translation in [-10, 10). The result is always invertible.
func RandAffine(r *rand.Rand) Mat4 {
	s := RandVec3Range(r, 0.5, 2)
	t := RandVec3Range(r, -10, 10)
	return Scale(s[0], s[1], s[2]).Mul(RandRotation(r)).Mul(TranslateVec(t))
}
