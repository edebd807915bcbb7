// package osc provides oscillators.
package osc

import (
	"fmt"
	"math"

	"github.com/pfcm/xfade"
	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/interp"
)

// Table is a wavetable oscillator playing at a constant frequency. It has no
// inputs and one output. Samples between table entries are crossfaded.
type Table struct {
	tab   []int32
	phase float32
	step  float32
	hz    float32
	nn    bool
}

var _ xfade.Ticker = &Table{}

func (t *Table) Inputs() int    { return 0 }
func (t *Table) Outputs() int   { return 1 }
func (t *Table) String() string { return fmt.Sprintf("osc.Table(%.2fHz)", t.hz) }

func (t *Table) Tick(_, out [][]int32) {
	n := float32(len(t.tab))
	for i := range out[0] {
		j := int(t.phase)
		if t.nn {
			out[0][i] = t.tab[j]
		} else {
			k := (j + 1) % len(t.tab)
			c := fix.Q12FromFloat(t.phase - float32(j))
			out[0][i] = interp.L(t.tab[j], t.tab[k], c)
		}
		t.phase += t.step
		for t.phase >= n {
			t.phase -= n
		}
	}
}

// newTable works out the phase step for playing tab at hz.
func newTable(tab []int32, samplerate, hz float32, nn bool) *Table {
	// table samples per second divided by output samples per second.
	step := float32(len(tab)) * hz / samplerate
	return &Table{
		tab:  tab,
		step: step,
		hz:   hz,
		nn:   nn,
	}
}

// Sine returns a full scale sine wave.
func Sine(samplerate, hz float32) *Table {
	const n = 1024
	table := make([]int32, n)
	for i := range table {
		f := math.Sin(math.Pi / float64(n/2) * float64(i))
		table[i] = fix.SampleFromFloat(f)
	}
	return newTable(table, samplerate, hz, false)
}

// Saw returns a full scale sawtooth, without interpolation.
func Saw(samplerate, hz float32) *Table {
	const n = 256
	table := make([]int32, n)
	for i := range table {
		table[i] = int32(i-n/2) * (2 * fix.FullScale / n)
	}
	return newTable(table, samplerate, hz, true)
}
