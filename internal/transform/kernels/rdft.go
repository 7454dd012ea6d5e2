package kernels

import (
	"math"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// rdft computes the real-input discrete Fourier transform of each windowed
// frame, producing the N/2+1 non-redundant complex bins. The example pack
// carries no Go FFT library (the original kernel links against fftf, a C
// library with no equivalent here), so this evaluates the defining sum
// directly; fine at the frame lengths this pipeline ever sees.
type rdft struct {
	uniformBase
	frameLen int
	bins     int
}

func newRDFT(map[string]string) (registry.Transform, error) {
	return &rdft{uniformBase: uniformBase{name: "rdft"}}, nil
}

func (t *rdft) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = in.ArrayLength - 2
	if t.frameLen < 1 {
		t.frameLen = in.ArrayLength
	}
	t.bins = t.frameLen/2 + 1

	out := format.BufferFormat{
		Kind:         format.ComplexFloat32,
		Count:        in.Count,
		SamplingRate: in.SamplingRate,
		DurationMs:   in.DurationMs,
		ArrayLength:  t.bins,
	}
	return out, 1, nil
}

func (t *rdft) Initialize() error { return nil }

func (t *rdft) Execute(input, output []byte) error {
	inElemSize := 4
	outElemSize := 8

	inStride := t.inputFormat.ArrayLength
	for f := 0; f < t.inputFormat.Count; f++ {
		frame := readFloat32s(input[f*inStride*inElemSize:], t.frameLen)
		bins := make([]complex64pair, t.bins)
		for k := 0; k < t.bins; k++ {
			var re, im float64
			for n, x := range frame {
				angle := -2 * math.Pi * float64(k) * float64(n) / float64(t.frameLen)
				re += float64(x) * math.Cos(angle)
				im += float64(x) * math.Sin(angle)
			}
			bins[k] = complex64pair{re: float32(re), im: float32(im)}
		}
		writeComplex64s(output[f*t.bins*outElemSize:], bins)
	}
	return nil
}

func rdftDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "rdft",
		Description: "real discrete Fourier transform of each frame",
		Params:      map[string]registry.ParamSpec{},
		New:         newRDFT,
		RequiredInputKind: format.Float32,
	}
}
