package kernels

import (
	"fmt"
	"strconv"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// filterBank averages a spectrum into a fixed number of equal-width
// contiguous bands, the simplified cousin of frequency_bands.cc's IIR
// filter cascade.
type filterBank struct {
	uniformBase
	bands    int
	frameLen int
}

func newFilterBank(params map[string]string) (registry.Transform, error) {
	bands, _ := strconv.Atoi(params["bands"])
	return &filterBank{uniformBase: uniformBase{name: "filterbank"}, bands: bands}, nil
}

func (t *filterBank) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	out.ArrayLength = t.bands
	return out, 1, nil
}

func (t *filterBank) Initialize() error { return nil }

func (t *filterBank) Execute(input, output []byte) error {
	n := t.frameLen
	bandWidth := n / t.bands
	if bandWidth == 0 {
		bandWidth = 1
	}
	for f := 0; f < t.inputFormat.Count; f++ {
		frame := readFloat32s(input[f*n*4:], n)
		out := make([]float32, t.bands)
		for b := 0; b < t.bands; b++ {
			start := b * bandWidth
			end := start + bandWidth
			if b == t.bands-1 {
				end = n
			}
			if start >= n {
				continue
			}
			if end > n {
				end = n
			}
			var sum float32
			for _, v := range frame[start:end] {
				sum += v
			}
			out[b] = sum / float32(end-start)
		}
		writeFloat32s(output[f*t.bands*4:], out)
	}
	return nil
}

func validateBandCount(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 4 || n > 128 {
		return fmt.Errorf("must be between 4 and 128")
	}
	return nil
}

func filterBankDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "filterbank",
		Description: "averages a spectrum into equal-width contiguous bands",
		Params: map[string]registry.ParamSpec{
			"bands": {Description: "number of bands", Default: "26", Validate: validateBandCount},
		},
		New: newFilterBank,
		RequiredInputKind: format.Float32,
	}
}
