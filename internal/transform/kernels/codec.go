// Package kernels implements the concrete transform kernels registered into
// the transform registry: windowing, spectral analysis, filtering, and the
// format converters inserted automatically between incompatible edges.
package kernels

import (
	"encoding/binary"
	"math"
)

func readInt16s(buf []byte, n int) []int16 {
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return out
}

func writeInt16s(dst []byte, vals []int16) {
	for i, v := range vals {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
	}
}

func readFloat32s(buf []byte, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = decodeFloat32(buf[i*4:])
	}
	return out
}

func writeFloat32s(dst []byte, vals []float32) {
	for i, v := range vals {
		encodeFloat32(dst[i*4:], v)
	}
}

type complex64pair struct {
	re, im float32
}

func writeComplex64s(dst []byte, vals []complex64pair) {
	for i, v := range vals {
		encodeFloat32(dst[i*8:], v.re)
		encodeFloat32(dst[i*8+4:], v.im)
	}
}

func readComplex64s(buf []byte, n int) []complex64pair {
	out := make([]complex64pair, n)
	for i := range out {
		out[i] = complex64pair{
			re: decodeFloat32(buf[i*8:]),
			im: decodeFloat32(buf[i*8+4:]),
		}
	}
	return out
}

// magnitudeSquared returns a complex bin's squared magnitude, the quantity
// the spectral-shape kernels (Energy, Centroid, Flux, Rolloff) all reduce
// over instead of the raw real/imaginary pair.
func (c complex64pair) magnitudeSquared() float32 {
	return c.re*c.re + c.im*c.im
}

func decodeFloat32(buf []byte) float32 {
	bits := binary.LittleEndian.Uint32(buf)
	return math.Float32frombits(bits)
}

func encodeFloat32(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}
