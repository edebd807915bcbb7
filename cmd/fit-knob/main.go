// fit-knob refits the knob rate segments and prints the Q12 lookup table.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/knob"
)

var tableFlag = flag.Bool("table", true, "whether to print the Q12 table for the current segments")

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("fit-knob: ")

	if err := fitAll(os.Stdout, knob.DefaultPoints); err != nil {
		log.Fatal(err)
	}
	if *tableFlag {
		printTable(os.Stdout, knob.Table())
	}
}

// fitAll fits and prints one segment per group of points.
func fitAll(w io.Writer, groups [][]knob.Point) error {
	for i, points := range groups {
		s, err := knob.Fit(points)
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		fmt.Fprintf(w, "%v %v [%v, %v, %v]\n", points[0].X, s.Hi, s.A, s.B, s.C)
	}
	return nil
}

func printTable(w io.Writer, tab []fix.Q12Hz) {
	s := make([]string, len(tab))
	for i, h := range tab {
		s[i] = fmt.Sprint(uint32(h))
	}
	fmt.Fprintln(w, strings.Join(s, ", "))
}
