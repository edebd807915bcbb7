// package knob maps 8 bit knob positions onto LFO rates.
//
// The mapping is three exponential segments of the form
//
//	y = A + B*x^C
//
// covering slow (x <= 0.3), mid (x <= 0.8) and fast (x <= 1) rates, which
// gives roughly five minutes per cycle at the bottom of the knob and 20Hz at
// the top. The constants were fitted from DefaultPoints with Fit.
package knob

import (
	"math"

	"github.com/pfcm/xfade/fix"
)

// Segment is one piece of the mapping, used for x up to and including Hi.
type Segment struct {
	Hi      float64
	A, B, C float64
}

// Eval returns A + B*x^C.
func (s Segment) Eval(x float64) float64 {
	return s.A + s.B*math.Pow(x, s.C)
}

// Segments is the default mapping.
var Segments = []Segment{
	{Hi: 0.3, A: 0.0031048470476956495, B: 0.4748929230518831, C: 1.9212435592371293},
	{Hi: 0.8, A: 0.03924103972533662, B: 1.3730312965143276, C: 4.299823207425811},
	{Hi: 1.0, A: 0.24191984131798305, B: 19.75880469177711, C: 15.771876134848176},
}

// Hz returns the frequency for a knob position x in [0, 1]. Positions past
// the last segment use the last segment.
func Hz(x float64) float64 {
	for _, s := range Segments {
		if x <= s.Hi {
			return s.Eval(x)
		}
	}
	return Segments[len(Segments)-1].Eval(x)
}

// Q12 returns the rate for knob position k, where 0 is x=0 and 255 is x=1.
func Q12(k uint8) fix.Q12Hz {
	return table[k]
}

// Table returns a copy of the whole Q12 rate table, indexed by knob
// position.
func Table() []fix.Q12Hz {
	out := make([]fix.Q12Hz, len(table))
	copy(out, table[:])
	return out
}

// table is the lookup for Q12: there are only 256 positions and the pow calls
// are expensive, so the easiest way is to just look up the answer.
var table = func() [256]fix.Q12Hz {
	var t [256]fix.Q12Hz
	for i := range t {
		t[i] = fix.Q12HzFromFloat(Hz(float64(i) / 255))
	}
	return t
}()
