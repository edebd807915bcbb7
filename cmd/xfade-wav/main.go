// xfade-wav joins two WAV files, crossfading from the end of the first into
// the start of the second.
//
// Usage:
//
//	xfade-wav -fade 2s -o out.wav first.wav second.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio/audio"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/xfade/wavio"
)

var (
	fadeFlag = flag.Duration("fade", 2*time.Second, "length of the crossfade")
	outFlag  = flag.String("o", "out.wav", "output `file`")
	verbose  = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] first.wav second.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("xfade-wav: ")

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *outFlag, *fadeFlag); err != nil {
		log.Fatal(err)
	}
}

func run(first, second, output string, fade time.Duration) error {
	a, b, err := readBoth(first, second)
	if err != nil {
		return err
	}
	frames := fadeFrames(fade, a.Format.SampleRate)
	if *verbose {
		log.Printf("%s: %d frames, %s: %d frames", first, a.NumFrames(), second, b.NumFrames())
		log.Printf("fading over %d frames", frames)
	}
	out, err := wavio.Overlap(a, b, frames)
	if err != nil {
		return fmt.Errorf("crossfading %s and %s: %w", first, second, err)
	}
	if err := wavio.Write(output, out); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d frames)", output, out.NumFrames())
	return nil
}

// readBoth decodes both inputs at the same time.
func readBoth(first, second string) (*audio.IntBuffer, *audio.IntBuffer, error) {
	var a, b *audio.IntBuffer
	var g errgroup.Group
	g.Go(func() (err error) {
		a, err = wavio.Read(first)
		return err
	})
	g.Go(func() (err error) {
		b, err = wavio.Read(second)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func fadeFrames(d time.Duration, samplerate int) int {
	return int(d.Seconds() * float64(samplerate))
}
