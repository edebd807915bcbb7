package xfade

import (
	"fmt"
)

// LFSR is a ticker that uses a 16 bit linear-feedback shift register to make
// noise at roughly fix.FullScale.
type LFSR struct {
	state uint16
	taps  uint16
}

var _ Ticker = &LFSR{}

const defaultTaps uint16 = 0xd008

func Noise() *LFSR {
	return &LFSR{
		state: 0xffff,
		taps:  defaultTaps,
	}
}

func (*LFSR) Inputs() int      { return 0 }
func (*LFSR) Outputs() int     { return 1 }
func (l *LFSR) String() string { return fmt.Sprintf("LFSR(%4x)", l.taps) }

func (l *LFSR) Tick(in, out [][]int32) {
	for i := range out[0] {
		fb := l.state & 1
		l.state >>= 1
		if fb == 1 {
			l.state ^= l.taps
		}
		// int16 is +/- 2^15, FullScale is 2^19.
		out[0][i] = int32(int16(l.state)) << 4
	}
}
