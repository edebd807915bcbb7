// package fix provides the fixed-point types used for crossfading 32 bit
// samples.
package fix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Q12 is an unsigned crossfade weight with 12 fractional bits. Unlike a
// regular fixed point it is scaled by 4095 rather than 4096, so that the
// largest value represents exactly 1.
type Q12 uint32

const (
	// MaxQ12 is the highest meaningful Q12: 1.0.
	MaxQ12 Q12 = 4095
	// MinQ12 is the lowest Q12: 0.
	MinQ12 Q12 = 0
)

func (q Q12) String() string {
	return fmt.Sprintf("%.4f", Q12ToFloat[float64](q))
}

// Clamp caps q at MaxQ12. Nothing can be below MinQ12.
func (q Q12) Clamp() Q12 {
	return min(q, MaxQ12)
}

func Q12ToFloat[T constraints.Float](q Q12) T {
	return T(q.Clamp()) / T(MaxQ12)
}

// Q12FromFloat converts a float in [0, 1] into the nearest Q12, clamping to
// the maximum or minimum values.
func Q12FromFloat[T constraints.Float](f T) Q12 {
	if f <= 0 {
		return MinQ12
	}
	if f >= 1 {
		return MaxQ12
	}
	return Q12(f*T(MaxQ12) + 0.5)
}

// FullScale is the sample magnitude treated as 1.0 when converting to and
// from floats. It leaves plenty of headroom in an int32.
const FullScale = 1 << 19

func SampleToFloat[T constraints.Float](s int32) T {
	// ideally this would be const, but apparently it can't be.
	var scale = 1.0 / T(FullScale)
	return T(s) * scale
}

// SampleFromFloat converts a float into a sample, clamping to +/- FullScale.
func SampleFromFloat[T constraints.Float](f T) int32 {
	if f <= -1 {
		return -FullScale
	}
	if f >= 1 {
		return FullScale
	}
	return int32(f * T(FullScale))
}

// Q12Hz is a frequency in hertz with 12 fractional bits.
type Q12Hz uint32

func (h Q12Hz) String() string {
	return fmt.Sprintf("%.4fHz", Q12HzToFloat[float64](h))
}

func Q12HzToFloat[T constraints.Float](h Q12Hz) T {
	return T(h) / T(1<<12)
}

// Q12HzFromFloat converts a frequency into a Q12Hz, truncating. Negative
// frequencies become 0.
func Q12HzFromFloat[T constraints.Float](f T) Q12Hz {
	if f <= 0 {
		return 0
	}
	return Q12Hz(f * T(1<<12))
}
