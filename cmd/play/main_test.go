package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfcm/xfade/fix"
)

func TestPatch(t *testing.T) {
	p := patch(255, 220, 0.25)
	require.Equal(t, 0, p.Inputs())
	require.Equal(t, 2, p.Outputs())

	out := [][]int32{make([]int32, 4096), make([]int32, 4096)}
	p.Tick(nil, out)
	assert.Equal(t, out[0], out[1])
	for i, s := range out[0] {
		if s < -fix.FullScale || s > fix.FullScale {
			t.Fatalf("sample %d = %d, outside full scale", i, s)
		}
	}
}

func TestCopier(t *testing.T) {
	c := newCopier(1)
	in := [][]int32{{fix.FullScale, -fix.FullScale}}
	out := [][]int32{make([]int32, 2)}
	c.Tick(in, out)
	assert.Equal(t, in, out)
	assert.InDelta(t, 0.99, c.getRMS()[0], 1e-6)
}
