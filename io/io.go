// package io does audio out.
package io

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pfcm/xfade"
	"github.com/pfcm/xfade/fix"
)

const (
	SampleRate = 44100

	recordBitDepth = 24
	wavFormatPCM   = 1
)

// PlayWithDefaults uses the default output device to run the provided
// Ticker, which must have no inputs. It blocks until the provided context is
// cancelled. If filename is not "", the output is also written as a 24 bit
// wav file with that name.
func PlayWithDefaults(ctx context.Context, t xfade.Ticker, filename string) (err error) {
	if t.Inputs() != 0 {
		return fmt.Errorf("%v has %d inputs, want 0", t, t.Inputs())
	}
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()
	chans := t.Outputs()
	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = uint32(chans)
	cfg.SampleRate = SampleRate

	// TODO: do we know the sizes ahead of the first recv call?
	outputs := make([][]int32, chans)
	for i := range outputs {
		outputs[i] = make([]int32, 4096)
	}

	var rec *recorder
	if filename != "" {
		rec, err = newRecorder(filename, chans)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); err == nil {
				err = cerr
			}
		}()
	}

	recv := func(out, _ []byte, framecount uint32) {
		if framecount == 0 {
			return
		}
		for i, outp := range outputs {
			if cap(outp) < int(framecount) {
				outp = make([]int32, framecount)
			}
			outputs[i] = outp[:framecount]
		}
		t.Tick(nil, outputs)

		// reformat the output to float32 and interleave.
		o := out[:0]
		for i := 0; i < int(framecount); i++ {
			for c := range outputs {
				f := fix.SampleToFloat[float32](outputs[c][i])
				o = binary.LittleEndian.AppendUint32(o, math.Float32bits(f))
			}
		}
		if rec != nil {
			if err := rec.Write(outputs); err != nil {
				panic(err)
			}
		}
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: recv,
	})
	if err != nil {
		return err
	}
	if err := device.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	device.Uninit()
	return nil
}

// recorder writes blocks of samples to a wav file.
type recorder struct {
	f   *os.File
	enc *wav.Encoder
	buf *audio.IntBuffer
}

func newRecorder(filename string, chans int) (*recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &recorder{
		f:   f,
		enc: wav.NewEncoder(f, SampleRate, recordBitDepth, chans, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: chans, SampleRate: SampleRate},
			SourceBitDepth: recordBitDepth,
		},
	}, nil
}

// Write interleaves a block and appends it to the file.
func (r *recorder) Write(block [][]int32) error {
	r.buf.Data = r.buf.Data[:0]
	if len(block) == 0 {
		return nil
	}
	for i := range block[0] {
		for _, ch := range block {
			r.buf.Data = append(r.buf.Data, to24(ch[i]))
		}
	}
	return r.enc.Write(r.buf)
}

func (r *recorder) Close() error {
	if err := r.enc.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}

// to24 rescales a sample from fix.FullScale to 24 bits, clipping.
func to24(s int32) int {
	const shift = 23 - 19 // log2(1<<23 / fix.FullScale)
	x := int64(s) << shift
	return int(max(min(x, 1<<23-1), -1<<23))
}
