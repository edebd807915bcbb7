// package wavio reads, writes and crossfades PCM WAV files.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pfcm/xfade"
	"github.com/pfcm/xfade/fix"
	"github.com/pfcm/xfade/interp"
)

const (
	wavFormatPCM    = 1
	defaultBitDepth = 16
)

// ErrFormatMismatch is returned when two buffers can't be mixed.
var ErrFormatMismatch = errors.New("mismatched audio formats")

// Read decodes the whole of a PCM WAV file.
func Read(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	buf.SourceBitDepth = int(d.BitDepth)
	return buf, nil
}

// Write encodes buf as a PCM WAV file at buf's source bit depth, or 16 bits
// if it doesn't have one.
func Write(path string, buf *audio.IntBuffer) (err error) {
	if buf.Format == nil {
		return errors.New("buffer has no format")
	}
	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = defaultBitDepth
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	e := wav.NewEncoder(f, buf.Format.SampleRate, depth, buf.Format.NumChannels, wavFormatPCM)
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return e.Close()
}

// Overlap joins a and b, crossfading over the last fade frames of a and the
// first fade frames of b. The fade is shortened if either buffer is shorter
// than it. Both buffers must have the same channel count, sample rate and
// bit depth.
func Overlap(a, b *audio.IntBuffer, fade int) (*audio.IntBuffer, error) {
	if a.Format == nil || b.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrFormatMismatch)
	}
	if a.Format.NumChannels != b.Format.NumChannels ||
		a.Format.SampleRate != b.Format.SampleRate ||
		a.SourceBitDepth != b.SourceBitDepth {
		return nil, fmt.Errorf("%w: %dch %dHz %dbit vs %dch %dHz %dbit", ErrFormatMismatch,
			a.Format.NumChannels, a.Format.SampleRate, a.SourceBitDepth,
			b.Format.NumChannels, b.Format.SampleRate, b.SourceBitDepth)
	}
	chans := a.Format.NumChannels
	if chans <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrFormatMismatch, chans)
	}
	na, nb := len(a.Data)/chans, len(b.Data)/chans
	fade = max(0, min(fade, na, nb))

	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: a.Format.SampleRate},
		Data:           make([]int, (na+nb-fade)*chans),
		SourceBitDepth: a.SourceBitDepth,
	}
	start := (na - fade) * chans
	copy(out.Data, a.Data[:start])
	copy(out.Data[start+fade*chans:], b.Data[fade*chans:])

	// w has one weight per frame, reaching 1 on the frame after the fade.
	w := make([]int32, fade)
	(&xfade.Ramp{Len: fade}).Tick(nil, [][]int32{w})
	for i := 0; i < fade; i++ {
		for c := 0; c < chans; c++ {
			j := i*chans + c
			x := interp.L(int32(a.Data[start+j]), int32(b.Data[j]), fix.Q12(w[i]))
			out.Data[start+j] = int(x)
		}
	}
	return out, nil
}
