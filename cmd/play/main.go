// play crossfades a sine wave into noise and back on the default audio
// output, with the rate of the crossfade set like one of the rate knobs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfcm/xfade"
	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/io"
	"github.com/pfcm/xfade/knob"
	"github.com/pfcm/xfade/osc"
)

var (
	profileFlag = flag.Bool("profile", false, "whether to write pprof profiles to the current working directory")
	writeFlag   = flag.Bool("write", false, "if true, writes the output to a wav file in the current directory")
	knobFlag    = flag.Uint("knob", 160, "rate knob `position`, 0 (slowest) to 255 (fastest)")
	hzFlag      = flag.Float64("hz", 220, "frequency of the sine wave")
	noiseFlag   = flag.Float64("noise", 0.25, "level of the noise, 0 to 1")
)

// patch builds the graph: sine and (quieter) noise into a crossfader, swept
// by an LFO, copied to stereo.
func patch(k uint8, hz, noise float64) xfade.Ticker {
	return xfade.Serially(
		xfade.Concurrently(
			osc.Sine(io.SampleRate, float32(hz)),
			xfade.Serially(
				xfade.Noise(),
				xfade.Mix{Gains: []fix.Q12{fix.Q12FromFloat(noise)}},
			),
			xfade.NewLFO(knob.Q12(k), io.SampleRate),
		),
		xfade.Crossfader{},
		xfade.Mult{N: 2},
	)
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("play: ")

	if *knobFlag > math.MaxUint8 {
		log.Fatalf("-knob must be at most 255, got %d", *knobFlag)
	}
	k := uint8(*knobFlag)

	if *profileFlag {
		finish, err := startProfiles()
		if err != nil {
			log.Fatalf("Starting profiling: %v", err)
		}
		defer func() {
			if err := finish(); err != nil {
				log.Fatalf("Finishing profiles: %v", err)
			}
		}()
	}
	var filename string
	if *writeFlag {
		filename = fmt.Sprintf("out-%d.wav", time.Now().Unix())
		fmt.Fprintf(os.Stderr, "Writing output to %q\n", filename)
	}
	fmt.Fprintf(os.Stderr, "Knob %d: crossfading at %v\n", k, knob.Q12(k))

	g, ctx := errgroup.WithContext(interruptContext())

	t := patch(k, *hzFlag, *noiseFlag)
	c := newCopier(t.Outputs())
	ch := xfade.Serially(t, c)

	g.Go(func() error {
		return io.PlayWithDefaults(ctx, ch, filename)
	})
	g.Go(func() error {
		t0 := time.Now()
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				var s []string
				for _, f := range c.getRMS() {
					s = append(s, fmt.Sprintf("%.2f", f))
				}
				fmt.Printf("\r%.4f: %v", time.Since(t0).Seconds(), s)
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// copier passes its inputs straight through, keeping a smoothed RMS of each
// channel for the meter.
type copier struct {
	channels int

	mu  sync.Mutex
	rms []float32
}

func newCopier(channels int) *copier {
	return &copier{
		channels: channels,
		rms:      make([]float32, channels),
	}
}

func (c *copier) Inputs() int    { return c.channels }
func (c *copier) Outputs() int   { return c.channels }
func (c *copier) String() string { return fmt.Sprintf("copier(%d)", c.channels) }

func (c *copier) Tick(in, out [][]int32) {
	for i, inp := range in {
		copy(out[i], inp)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, channel := range in {
		if len(channel) == 0 {
			continue
		}
		rms := float64(0)
		for _, s := range channel {
			f := fix.SampleToFloat[float64](s)
			rms += f * f
		}
		rms /= float64(len(channel))
		c.rms[i] = 0.01*c.rms[i] + 0.99*float32(math.Sqrt(rms))
	}
}

func (c *copier) getRMS() []float32 {
	results := make([]float32, c.channels)
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(results, c.rms)
	return results
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}

func startProfiles() (func() error, error) {
	cpu, err := os.Create("cpu.pprof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpu); err != nil {
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}

	mem, err := os.Create("mem.pprof")
	if err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := cpu.Close(); err != nil {
			return err
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(mem); err != nil {
			return err
		}
		return mem.Close()
	}, nil
}
