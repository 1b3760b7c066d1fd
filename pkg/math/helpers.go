package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Tolerances used for float comparisons.
const (
	EpsilonE4 float32 = 1e-4
	EpsilonE5 float32 = 1e-5
	EpsilonE6 float32 = 1e-6
)

// Angle constants in float32.
const (
	Pi        float32 = math.Pi
	TwoPi     float32 = 2 * math.Pi
	HalfPi    float32 = math.Pi / 2
	QuarterPi float32 = math.Pi / 4

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * radToDeg
}

// FloatEqual reports whether a and b differ by less than EpsilonE5.
func FloatEqual(a, b float32) bool {
	return Abs(a-b) < EpsilonE5
}

// Abs returns |x|.
func Abs[T constraints.Float | constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqr returns x*x.
func Sqr[T constraints.Float | constraints.Integer](x T) T {
	return x * x
}

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// IsPow2 reports whether v is a positive power of two.
func IsPow2[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// ClampPitch keeps a pitch angle inside (-Pi/2+0.1, Pi/2-0.1) so a camera never
// looks straight up or down.
func ClampPitch(pitch float32) float32 {
	return Clamp(pitch, -HalfPi+0.1, HalfPi-0.1)
}

// WrapYaw folds a yaw angle back into [-2Pi, 2Pi].
func WrapYaw(yaw float32) float32 {
	return float32(math.Mod(float64(yaw), 2*math.Pi))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sincos32(angle float32) (s, c float32) {
	sf, cf := math.Sincos(float64(angle))
	return float32(sf), float32(cf)
}
