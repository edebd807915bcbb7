package xfade

import (
	"fmt"

	"github.com/pfcm/xfade/fix"
)

// Ramp is a control Ticker that outputs a fix.Q12 weight moving linearly from
// 0 to fix.MaxQ12 over Len samples, then holding there.
type Ramp struct {
	Len int
	pos int
}

func (*Ramp) Inputs() int      { return 0 }
func (*Ramp) Outputs() int     { return 1 }
func (r *Ramp) String() string { return fmt.Sprintf("Ramp(%d)", r.Len) }

func (r *Ramp) Tick(_, outputs [][]int32) {
	for i := range outputs[0] {
		outputs[0][i] = int32(r.at(r.pos))
		if r.pos < r.Len {
			r.pos++
		}
	}
}

func (r *Ramp) at(pos int) fix.Q12 {
	if pos >= r.Len {
		return fix.MaxQ12
	}
	return fix.Q12(int64(pos) * int64(fix.MaxQ12) / int64(r.Len))
}

// Reset moves the ramp back to the start.
func (r *Ramp) Reset() { r.pos = 0 }

// LFO is a control Ticker that outputs a triangle wave sweeping a fix.Q12
// weight from 0 up to fix.MaxQ12 and back down.
type LFO struct {
	rate  fix.Q12Hz
	step  uint32
	phase uint32
}

// NewLFO makes an LFO running at the given rate.
func NewLFO(rate fix.Q12Hz, samplerate int) *LFO {
	// one full cycle is 1<<32 of phase, so the step is hz * 2^32 / sr.
	// rate already carries 12 bits of fraction.
	step := uint64(rate) << 20 / uint64(samplerate)
	return &LFO{rate: rate, step: uint32(step)}
}

func (*LFO) Inputs() int      { return 0 }
func (*LFO) Outputs() int     { return 1 }
func (l *LFO) String() string { return fmt.Sprintf("LFO(%v)", l.rate) }

func (l *LFO) Tick(_, outputs [][]int32) {
	for i := range outputs[0] {
		// top 13 bits: rise over the first half, fall over the second.
		p := int32(l.phase >> 19)
		if p >= 4096 {
			p = 8191 - p
		}
		outputs[0][i] = p
		l.phase += l.step
	}
}
