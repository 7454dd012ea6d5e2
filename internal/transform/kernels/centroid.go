package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// centroid computes each frame's spectral center of mass, scaled into Hz.
type centroid struct {
	uniformBase
	frameLen int
}

func newCentroid(map[string]string) (registry.Transform, error) {
	return &centroid{uniformBase: uniformBase{name: "centroid"}}, nil
}

func (t *centroid) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	out.ArrayLength = 1
	return out, 1, nil
}

func (t *centroid) Initialize() error { return nil }

func (t *centroid) Execute(input, output []byte) error {
	rate := float32(t.inputFormat.SamplingRate)
	if rate == 0 {
		rate = format.DefaultSamplingRate
	}
	n := t.frameLen
	for f := 0; f < t.inputFormat.Count; f++ {
		bins := readComplex64s(input[f*n*8:], n)
		var upper, lower float32
		for i, b := range bins {
			mag := b.magnitudeSquared()
			lower += mag
			upper += float32(i) * mag
		}
		var c float32
		if lower != 0 {
			c = upper / lower * rate / (2 * float32(n))
		}
		writeFloat32s(output[f*4:], []float32{c})
	}
	return nil
}

func centroidDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:              "centroid",
		Description:       "spectral center of mass of each frame, in Hz",
		Params:            map[string]registry.ParamSpec{},
		New:               newCentroid,
		RequiredInputKind: format.ComplexFloat32,
	}
}
