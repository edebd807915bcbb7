// xfade shows crossfades between fixed point samples, mostly for checking
// the arithmetic by eye.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/interp"
)

const (
	demoA    = -524288 // -2^19
	demoB    = 524288  // 2^19
	demoStep = 255
)

var stepFlag = flag.Uint("step", demoStep, "weight `step` between rows when sweeping")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, flag.Args(), uint32(*stepFlag)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, help)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, step uint32) error {
	if step == 0 {
		return fmt.Errorf("step must be positive")
	}
	switch len(args) {
	case 0:
		return demo(w, step)
	case 2, 3:
	default:
		return fmt.Errorf("need zero, two or three arguments, got %d", len(args))
	}
	a, err := parseSample(args[0])
	if err != nil {
		return err
	}
	b, err := parseSample(args[1])
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 8, 1, 1, ' ', 0)
	fmt.Fprintln(tw, "f\tweight\toutput\t")
	if len(args) == 3 {
		f, err := strconv.ParseUint(args[2], 0, 32)
		if err != nil {
			return err
		}
		row(tw, a, b, uint32(f))
	} else {
		for f := uint32(0); f <= uint32(fix.MaxQ12); f += step {
			row(tw, a, b, f)
		}
	}
	return tw.Flush()
}

// demo prints the standard sweep from -2^19 to 2^19.
func demo(w io.Writer, step uint32) error {
	for f := uint32(0); f <= uint32(fix.MaxQ12); f += step {
		out := interp.Crossfade(demoA, demoB, f)
		if _, err := fmt.Fprintf(w, "f: %4d -> Crossfade Output: %d\n", f, out); err != nil {
			return err
		}
	}
	return nil
}

func row(w io.Writer, a, b int32, f uint32) {
	fmt.Fprintf(w, "%d\t%v\t%d\t\n", f, fix.Q12(f).Clamp(), interp.Crossfade(a, b, f))
}

func parseSample(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

const help = `xfade crossfades between two 32 bit fixed point samples.
Usage:
	xfade [-step n] [a b [f]]

With no arguments, sweeps the weight from 0 to 4095 between -2^19 and 2^19.
Otherwise a and b are integer literals in Go syntax, and f is an optional
weight from 0 to 4095 (larger values are treated as 4095). Without f, the
weight is swept.
`
