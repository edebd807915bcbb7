package io

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfcm/xfade"
	"github.com/pfcm/xfade/fix"
)

func TestTo24(t *testing.T) {
	assert.Equal(t, 0, to24(0))
	assert.Equal(t, 1<<23-1, to24(fix.FullScale))
	assert.Equal(t, -1<<23, to24(-fix.FullScale))
	assert.Equal(t, 16, to24(1))
	assert.Equal(t, 1<<23-1, to24(1<<30))
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.wav")
	r, err := newRecorder(path, 2)
	require.NoError(t, err)
	require.NoError(t, r.Write([][]int32{{0, 1, 2}, {-1, -2, -3}}))
	require.NoError(t, r.Write([][]int32{{3}, {-4}}))
	require.NoError(t, r.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	d := wav.NewDecoder(f)
	require.True(t, d.IsValidFile())
	buf, err := d.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, SampleRate, buf.Format.SampleRate)
	assert.Equal(t, []int{0, -16, 16, -32, 32, -48, 48, -64}, buf.Data)
}

func TestPlayWithInputs(t *testing.T) {
	err := PlayWithDefaults(context.Background(), xfade.Crossfader{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 inputs")
}
