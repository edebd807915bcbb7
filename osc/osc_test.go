package osc

import (
	"testing"

	"github.com/pfcm/xfade/fix"
)

func TestSine(t *testing.T) {
	// 1024 entries at 1024Hz: exactly one table entry per sample.
	s := Sine(1024*4, 4)
	out := [][]int32{make([]int32, 1024)}
	s.Tick(nil, out)
	for _, c := range []struct {
		i    int
		want int32
	}{
		{0, 0},
		{256, fix.FullScale},
		{768, -fix.FullScale},
	} {
		got := out[0][c.i]
		if d := got - c.want; d < -2 || d > 2 {
			t.Errorf("sample %d = %d, want: %d", c.i, got, c.want)
		}
	}
	// the phase carries over between ticks.
	s.Tick(nil, out)
	if got := out[0][256]; got < fix.FullScale-2 {
		t.Errorf("second cycle sample 256 = %d, want: %d", got, fix.FullScale)
	}
}

func TestSineInterpolates(t *testing.T) {
	s := Sine(1024*8, 4)
	out := [][]int32{make([]int32, 4)}
	s.Tick(nil, out)
	// half way between table entries 0 and 1.
	if out[0][1] <= out[0][0] || out[0][1] >= out[0][2] {
		t.Errorf("expected rising samples, got %v", out[0])
	}
}

func TestSaw(t *testing.T) {
	s := Saw(256, 1)
	out := [][]int32{make([]int32, 256)}
	s.Tick(nil, out)
	if out[0][0] != -fix.FullScale {
		t.Errorf("first sample = %d, want: %d", out[0][0], -fix.FullScale)
	}
	for i := 1; i < 256; i++ {
		if out[0][i] <= out[0][i-1] {
			t.Fatalf("saw not rising at %d: %d <= %d", i, out[0][i], out[0][i-1])
		}
	}
}
