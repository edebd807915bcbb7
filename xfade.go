// package xfade crossfades blocks of 32 bit fixed-point audio.
package xfade

import (
	"fmt"
	"strings"

	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/interp"
)

// Ticker is something that processes audio.
type Ticker interface {
	// Inputs returns the number of expected input channels.
	Inputs() int
	// Outputs returns the number of expected output channels.
	Outputs() int
	// Tick processes a chunk of audio. The first dimension of the input
	// slice is always Inputs, and the first dimension of the output
	// slice is always Outputs. Each individual element of both slices
	// is always the same length. Tickers may overwrite the input buffer.
	Tick(input, output [][]int32)

	fmt.Stringer
}

// Const is a Ticker that always fills its single output with a given value.
type Const struct {
	Val int32
}

var _ Ticker = Const{}

func (c Const) Inputs() int    { return 0 }
func (c Const) Outputs() int   { return 1 }
func (c Const) String() string { return fmt.Sprintf("Const(%d)", c.Val) }

func (c Const) Tick(_, output [][]int32) {
	for i := range output[0] {
		output[0][i] = c.Val
	}
}

// Crossfader blends its first two inputs using the third as the weight. The
// weight channel holds fix.Q12s; negative values are treated as 0.
type Crossfader struct{}

var _ Ticker = Crossfader{}

func (Crossfader) Inputs() int    { return 3 }
func (Crossfader) Outputs() int   { return 1 }
func (Crossfader) String() string { return "Crossfader" }

func (Crossfader) Tick(input, output [][]int32) {
	a, b, w := input[0], input[1], input[2]
	for i := range output[0] {
		output[0][i] = interp.L(a[i], b[i], fix.Q12(max(w[i], 0)))
	}
}

// Chain is a ticker that applies a sequence of Tickers. The inputs and outputs all
// need to line up.
type Chain struct {
	ts              []Ticker
	inputs, outputs int
	b1, b2          [][]int32
}

var _ Ticker = Chain{}

func Serially(ts ...Ticker) Chain {
	if len(ts) == 0 {
		panic(fmt.Errorf("empty chain"))
	}
	maxChans := max(ts[0].Inputs(), ts[len(ts)-1].Outputs())
	for i := 1; i < len(ts); i++ {
		if ts[i-1].Outputs() != ts[i].Inputs() {
			panic(fmt.Errorf(
				"outputs/inputs mismatch:\n%v (%d outputs)\n->\n%v (%d inputs)",
				ts[i-1], ts[i-1].Outputs(), ts[i], ts[i].Inputs()))
		}
		maxChans = max(ts[i].Inputs(), maxChans)
	}
	return Chain{
		ts:      ts,
		inputs:  ts[0].Inputs(),
		outputs: ts[len(ts)-1].Outputs(),
		b1:      make([][]int32, maxChans),
		b2:      make([][]int32, maxChans),
	}
}

func (c Chain) Inputs() int    { return c.inputs }
func (c Chain) Outputs() int   { return c.outputs }
func (c Chain) String() string { return fmt.Sprintf("Chain(%v)", c.ts) }

func (c Chain) Tick(input, output [][]int32) {
	n := 0
	if len(output) > 0 {
		n = len(output[0])
	} else if len(input) > 0 {
		n = len(input[0])
	}
	in, out := c.b1, c.b2
	for i := range in {
		in[i], out[i] = grow(in[i], n), grow(out[i], n)
	}
	for i := range input {
		copy(in[i], input[i])
	}
	in = in[:len(input)]
	for _, t := range c.ts {
		out = out[:t.Outputs()]
		for i := range out {
			clear(out[i])
		}
		t.Tick(in, out)
		in, out = out, in[:cap(in)]
	}
	for i := range output {
		copy(output[i], in[i])
	}
}

// grow returns b with length n, reallocating if it isn't big enough.
func grow(b []int32, n int) []int32 {
	if cap(b) < n {
		return make([]int32, n, max(n, 4096))
	}
	return b[:n]
}

// Concurrent is a Ticker that joins a group of tickers and runs them
// side by side, splitting up the inputs and outputs in order.
type Concurrent struct {
	ts              []Ticker
	inputs, outputs int
}

var _ Ticker = Concurrent{}

func Concurrently(ts ...Ticker) Concurrent {
	ins, outs := 0, 0
	for _, t := range ts {
		ins += t.Inputs()
		outs += t.Outputs()
	}
	return Concurrent{
		ts:      ts,
		inputs:  ins,
		outputs: outs,
	}
}

func (c Concurrent) Inputs() int  { return c.inputs }
func (c Concurrent) Outputs() int { return c.outputs }

func (c Concurrent) String() string {
	s := make([]string, len(c.ts))
	for i, t := range c.ts {
		s[i] = t.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(s, ","))
}

func (c Concurrent) Tick(inputs, outputs [][]int32) {
	in, out := 0, 0
	for _, t := range c.ts {
		ni, no := in+t.Inputs(), out+t.Outputs()
		t.Tick(inputs[in:ni], outputs[out:no])
		in, out = ni, no
	}
}

// Mix sums together a number of inputs, first applying the provided gains.
type Mix struct {
	Gains []fix.Q12
}

var _ Ticker = Mix{}

func (m Mix) Inputs() int    { return len(m.Gains) }
func (m Mix) Outputs() int   { return 1 }
func (m Mix) String() string { return fmt.Sprintf("Mix(%v)", m.Gains) }

func (m Mix) Tick(input, output [][]int32) {
	for i := range output[0] {
		var acc int32
		for j, g := range m.Gains {
			acc = fix.SAdd32(acc, fix.SMulQ12(input[j][i], g))
		}
		output[0][i] = acc
	}
}

// Mult copies a single input to the provided number of outputs.
type Mult struct {
	N int
}

var _ Ticker = Mult{}

func (Mult) Inputs() int      { return 1 }
func (m Mult) Outputs() int   { return m.N }
func (m Mult) String() string { return fmt.Sprintf("Mult(%d)", m.N) }

func (m Mult) Tick(inputs, outputs [][]int32) {
	for _, o := range outputs {
		copy(o, inputs[0])
	}
}
