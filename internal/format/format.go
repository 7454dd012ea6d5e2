// Package format describes the type carried on an edge of a compiled
// pipeline: element kind, fan-out count, and the optional sampling-rate,
// duration, and array-length attributes transforms negotiate during
// format resolution.
package format

import "fmt"

// ElementKind names the scalar or compound type of one buffer element.
type ElementKind int

const (
	// Int16 is the raw PCM sample type the root node produces.
	Int16 ElementKind = iota
	// Float32 is the scalar type most transform kernels operate on.
	Float32
	// ComplexFloat32 is a (real, imaginary) float32 pair, as produced by RDFT.
	ComplexFloat32
)

func (k ElementKind) String() string {
	switch k {
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	case ComplexFloat32:
		return "complex64"
	default:
		return "unknown"
	}
}

// elementSize returns the byte size of a single scalar of the given kind.
func (k ElementKind) elementSize() int {
	switch k {
	case Int16:
		return 2
	case Float32:
		return 4
	case ComplexFloat32:
		return 8
	default:
		return 0
	}
}

// Sampling rate bounds, in Hz.
const (
	MinSamplingRate     = 2000
	MaxSamplingRate     = 48000
	DefaultSamplingRate = 16000
)

// Window duration bounds, in milliseconds.
const (
	MinWindowDurationMs     = 10
	MaxWindowDurationMs     = 100
	DefaultWindowDurationMs = 25
)

// Window step bounds, in milliseconds.
const (
	MinWindowStepMs     = 5
	MaxWindowStepMs     = 50
	DefaultWindowStepMs = 10
)

// cacheLineSize is the alignment boundary SIMD kernels expect buffers to
// start on.
const cacheLineSize = 64

// BufferFormat describes the data carried on one DAG edge.
type BufferFormat struct {
	// Kind is the element's scalar or compound type.
	Kind ElementKind

	// Count is the number of independent buffers fanning out in parallel
	// (e.g. the window count after a windowing transform). Always ≥ 1.
	Count int

	// SamplingRate is the signal sampling rate in Hz, when meaningful for
	// this edge; 0 means unset.
	SamplingRate int

	// DurationMs is the buffer duration in milliseconds, when meaningful;
	// 0 means unset.
	DurationMs int

	// ArrayLength is the number of elements per buffer, for array-valued
	// edges (e.g. a spectrum of N bins). 0 means unset/scalar.
	ArrayLength int
}

// Equal reports whether two formats have identical recorded attributes.
func (f BufferFormat) Equal(other BufferFormat) bool {
	return f == other
}

// ElementSize returns the byte size of one scalar element of this format's kind.
func (f BufferFormat) ElementSize() int {
	return f.Kind.elementSize()
}

// Size returns the unaligned byte size of one buffer of this format:
// count × element size × array length (array length of 0 is treated as 1).
func (f BufferFormat) Size() int {
	arrayLen := f.ArrayLength
	if arrayLen == 0 {
		arrayLen = 1
	}
	count := f.Count
	if count == 0 {
		count = 1
	}
	return count * f.ElementSize() * arrayLen
}

// AlignedSize returns Size() rounded up to the SIMD cache-line alignment.
func (f BufferFormat) AlignedSize() int {
	size := f.Size()
	if rem := size % cacheLineSize; rem != 0 {
		size += cacheLineSize - rem
	}
	return size
}

func (f BufferFormat) String() string {
	s := fmt.Sprintf("%s×%d", f.Kind, f.Count)
	if f.SamplingRate != 0 {
		s += fmt.Sprintf(" @%dHz", f.SamplingRate)
	}
	if f.DurationMs != 0 {
		s += fmt.Sprintf(" %dms", f.DurationMs)
	}
	if f.ArrayLength != 0 {
		s += fmt.Sprintf(" [%d]", f.ArrayLength)
	}
	return s
}

// PCM returns the root format for a PCM capture of the given length at the
// given sampling rate: 16-bit signed samples, one buffer, N elements.
func PCM(samplingRate, lengthSamples int) BufferFormat {
	return BufferFormat{
		Kind:         Int16,
		Count:        1,
		SamplingRate: samplingRate,
		ArrayLength:  lengthSamples,
	}
}
