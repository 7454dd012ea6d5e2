package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

func TestRegisterAll_NoDuplicates(t *testing.T) {
	r := registry.New()
	assert.NotPanics(t, func() { RegisterAll(r) })
	assert.Contains(t, r.Enumerate(), "window")
	assert.Contains(t, r.Enumerate(), "rdft")
}

func TestWindowElement_Hamming(t *testing.T) {
	v := windowElement(windowHamming, 0, 10)
	assert.InDelta(t, 0.08, v, 1e-6)
}

func TestWindowElement_Hanning(t *testing.T) {
	v := windowElement(windowHanning, 0, 10)
	assert.InDelta(t, 0.0, v, 1e-6)
}

func TestWindow_FanOut(t *testing.T) {
	tr, err := newWindow(map[string]string{"length": "10", "step": "10", "window": "rectangular"})
	require.NoError(t, err)
	w := tr.(*window)

	in := format.PCM(1000, 30)
	out, multiplier, err := w.SetInputFormat(in)
	require.NoError(t, err)
	assert.Equal(t, 3, multiplier)
	assert.Equal(t, 12, out.ArrayLength)

	require.NoError(t, w.Initialize())

	input := make([]byte, 30*2)
	samples := make([]int16, 30)
	for i := range samples {
		samples[i] = int16(i)
	}
	writeInt16s(input, samples)

	output := make([]byte, out.Size())
	require.NoError(t, w.Execute(input, output))

	frame0 := readInt16s(output[:10*2], 10)
	assert.Equal(t, int16(0), frame0[0])
	assert.Equal(t, int16(9), frame0[9])
}

func TestEnergy(t *testing.T) {
	tr, _ := newEnergy(nil)
	e := tr.(*energy)

	in := format.BufferFormat{Kind: format.ComplexFloat32, Count: 1, ArrayLength: 4}
	_, _, err := e.SetInputFormat(in)
	require.NoError(t, err)

	input := make([]byte, 32)
	writeComplex64s(input, []complex64pair{{re: 1}, {re: 2}, {re: 3}, {re: 4}})

	output := make([]byte, 4)
	require.NoError(t, e.Execute(input, output))

	got := readFloat32s(output, 1)
	assert.InDelta(t, (1.0+4.0+9.0+16.0)/4.0, got[0], 1e-5)
}

func TestSquare(t *testing.T) {
	tr, _ := newSquare(nil)
	s := tr.(*square)
	in := format.BufferFormat{Kind: format.Float32, Count: 1, ArrayLength: 3}
	_, _, err := s.SetInputFormat(in)
	require.NoError(t, err)

	input := make([]byte, 12)
	writeFloat32s(input, []float32{-2, 0, 3})
	output := make([]byte, 12)
	require.NoError(t, s.Execute(input, output))

	got := readFloat32s(output, 3)
	assert.Equal(t, []float32{4, 0, 9}, got)
}

func TestInt16ToFloat(t *testing.T) {
	tr, _ := newInt16ToFloat(nil)
	c := tr.(*int16ToFloat)
	in := format.BufferFormat{Kind: format.Int16, Count: 1, ArrayLength: 2}
	out, _, err := c.SetInputFormat(in)
	require.NoError(t, err)
	assert.Equal(t, format.Float32, out.Kind)

	input := make([]byte, 4)
	writeInt16s(input, []int16{16384, -16384})
	output := make([]byte, 8)
	require.NoError(t, c.Execute(input, output))

	got := readFloat32s(output, 2)
	assert.InDelta(t, 0.5, got[0], 1e-4)
	assert.InDelta(t, -0.5, got[1], 1e-4)
}

func TestRolloff_HalfRatioOfFlatSpectrumFindsSecondBin(t *testing.T) {
	tr, err := newRolloff(map[string]string{"ratio": "0.5"})
	require.NoError(t, err)
	r := tr.(*rolloff)

	in := format.BufferFormat{Kind: format.ComplexFloat32, Count: 1, ArrayLength: 4, DurationMs: 1000}
	_, _, err = r.SetInputFormat(in)
	require.NoError(t, err)

	input := make([]byte, 32)
	writeComplex64s(input, []complex64pair{{re: 1}, {re: 1}, {re: 1}, {re: 1}})
	output := make([]byte, 4)
	require.NoError(t, r.Execute(input, output))

	got := readFloat32s(output, 1)
	assert.Equal(t, float32(1), got[0])
}

func TestFlux_FirstFrameZero(t *testing.T) {
	tr, _ := newFlux(nil)
	f := tr.(*flux)
	in := format.BufferFormat{Kind: format.ComplexFloat32, Count: 2, ArrayLength: 2}
	_, _, err := f.SetInputFormat(in)
	require.NoError(t, err)

	input := make([]byte, 32)
	writeComplex64s(input, []complex64pair{{re: 1}, {re: 1}, {re: 2}, {re: 2}})
	output := make([]byte, 8)
	require.NoError(t, f.Execute(input, output))

	got := readFloat32s(output, 2)
	assert.Equal(t, float32(0), got[0])
	assert.InDelta(t, math.Sqrt(18), got[1], 1e-5)
}
