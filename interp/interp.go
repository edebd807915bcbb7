// package interp provides helpers for crossfading fixed-point 32 bit samples.
package interp

import (
	"fmt"

	"github.com/pfcm/xfade/fix"
)

// Crossfade does linear interpolation between a and b with the weight f,
// scaled so that 0 gives exactly a and 4095 gives exactly b:
//
//	Crossfade(a, b, f) = a + (b-a)*f/4095
//	                   = (a*4095 + (b-a)*f) / 4095
//
// Weights above 4095 are treated as 4095. The second form is the one we use:
// it only divides once, truncating toward zero. Everything happens in 64 bits,
// including the subtraction, so the full int32 range of a and b is fine and
// the result always lies between them.
func Crossfade(a, b int32, f uint32) int32 {
	return L(a, b, fix.Q12(f))
}

// L is Crossfade with a typed weight.
func L(a, b int32, w fix.Q12) int32 {
	const scale = int64(fix.MaxQ12)
	diff := int64(b) - int64(a)
	x := int64(a)*scale + diff*int64(w.Clamp())
	return fix.Sat32(x / scale)
}

// Block crossfades a and b into dst with per-sample weights. All slices must
// be the same length.
func Block(dst, a, b []int32, w []fix.Q12) {
	if len(a) != len(dst) || len(b) != len(dst) || len(w) != len(dst) {
		panic(fmt.Errorf("mismatched block lengths: dst %d, a %d, b %d, w %d", len(dst), len(a), len(b), len(w)))
	}
	for i := range dst {
		dst[i] = L(a[i], b[i], w[i])
	}
}
