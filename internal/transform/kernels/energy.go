package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// energy reduces each RDFT frame to the mean squared magnitude of its bins.
type energy struct {
	uniformBase
	bins int
}

func newEnergy(map[string]string) (registry.Transform, error) {
	return &energy{uniformBase: uniformBase{name: "energy"}}, nil
}

func (t *energy) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.bins = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	out.ArrayLength = 1
	return out, 1, nil
}

func (t *energy) Initialize() error { return nil }

func (t *energy) Execute(input, output []byte) error {
	for f := 0; f < t.inputFormat.Count; f++ {
		bins := readComplex64s(input[f*t.bins*8:], t.bins)
		var sum float32
		for _, b := range bins {
			sum += b.magnitudeSquared()
		}
		writeFloat32s(output[f*4:], []float32{sum / float32(t.bins)})
	}
	return nil
}

func energyDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:              "energy",
		Description:       "mean squared magnitude of each RDFT frame's bins",
		Params:            map[string]registry.ParamSpec{},
		New:               newEnergy,
		RequiredInputKind: format.ComplexFloat32,
	}
}
