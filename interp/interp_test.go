package interp

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pfcm/xfade/fix"
)

func TestCrossfade(t *testing.T) {
	for _, c := range []struct {
		a, b int32
		f    uint32
		out  int32
	}{
		{a: -524288, b: 524288, f: 0, out: -524288},
		{a: -524288, b: 524288, f: 4095, out: 524288},
		{a: -524288, b: 524288, f: 2047, out: -128},
		{a: -524288, b: 524288, f: 1 << 20, out: 524288},
		{a: 100, b: -100, f: 1000, out: 51},
		{a: 7, b: 7, f: 1234, out: 7},
		// widening before subtracting keeps the extremes sane.
		{a: math.MinInt32, b: math.MaxInt32, f: 2047, out: -524416},
		{a: math.MaxInt32, b: math.MinInt32, f: 1, out: 2146434814},
		{a: math.MinInt32, b: math.MaxInt32, f: 4094, out: 2146434814},
		{a: math.MinInt32, b: math.MaxInt32, f: 4095, out: math.MaxInt32},
		{a: math.MaxInt32, b: math.MinInt32, f: 4095, out: math.MinInt32},
	} {
		got := Crossfade(c.a, c.b, c.f)
		if got != c.out {
			t.Errorf("Crossfade(%d, %d, %d) = %d, want: %d", c.a, c.b, c.f, got, c.out)
		}
	}
}

func TestCrossfadeSweep(t *testing.T) {
	want := []int32{
		-524288, -458992, -393696, -328400, -263104, -197808,
		-132512, -67216, -1920, 63375, 128671, 193967, 259263,
		324559, 389855, 455151, 520447,
	}
	i := 0
	for f := uint32(0); f <= 4095; f += 255 {
		got := Crossfade(-524288, 524288, f)
		if got != want[i] {
			t.Errorf("Crossfade(-524288, 524288, %d) = %d, want: %d", f, got, want[i])
		}
		i++
	}
	if i != len(want) {
		t.Errorf("swept %d weights, want: %d", i, len(want))
	}
}

func TestCrossfadeProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 10000; n++ {
		a, b := int32(r.Uint32()), int32(r.Uint32())
		if got := Crossfade(a, b, 0); got != a {
			t.Fatalf("Crossfade(%d, %d, 0) = %d, want: %d", a, b, got, a)
		}
		if got := Crossfade(a, b, 4095); got != b {
			t.Fatalf("Crossfade(%d, %d, 4095) = %d, want: %d", a, b, got, b)
		}
		f := 4096 + r.Uint32N(math.MaxUint32-4096)
		if got, want := Crossfade(a, b, f), Crossfade(a, b, 4095); got != want {
			t.Fatalf("Crossfade(%d, %d, %d) = %d, want: %d", a, b, f, got, want)
		}
		lo, hi := min(a, b), max(a, b)
		f1 := r.Uint32N(4096)
		f2 := f1 + r.Uint32N(4096-f1)
		x1, x2 := Crossfade(lo, hi, f1), Crossfade(lo, hi, f2)
		if x1 > x2 {
			t.Fatalf("not monotonic: Crossfade(%d, %d, %d) = %d > Crossfade(.., %d) = %d", lo, hi, f1, x1, f2, x2)
		}
		if x1 < lo || x2 > hi {
			t.Fatalf("Crossfade(%d, %d, ..) left its bounds: %d, %d", lo, hi, x1, x2)
		}
	}
}

func TestL(t *testing.T) {
	for _, c := range []struct {
		a, b int32
		w    fix.Q12
		out  int32
	}{
		{a: 0, b: fix.FullScale, w: fix.Q12FromFloat(0.5), out: 262208},
		{a: fix.FullScale, b: -fix.FullScale, w: fix.MaxQ12, out: -fix.FullScale},
		{a: fix.FullScale, b: 0, w: fix.MinQ12, out: fix.FullScale},
	} {
		got := L(c.a, c.b, c.w)
		if got != c.out {
			t.Errorf("L(%d, %d, %v) = %d, want: %d", c.a, c.b, c.w, got, c.out)
		}
	}
}

func TestBlock(t *testing.T) {
	a := []int32{0, 0, 0, 0}
	b := []int32{4095, 4095, 4095, 4095}
	w := []fix.Q12{0, 1, 4095, 9000}
	dst := make([]int32, 4)
	Block(dst, a, b, w)
	want := []int32{0, 1, 4095, 4095}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want: %d", i, dst[i], want[i])
		}
	}
}

func TestBlockMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Block with mismatched lengths didn't panic")
		}
	}()
	Block(make([]int32, 2), make([]int32, 2), make([]int32, 1), make([]fix.Q12, 2))
}
