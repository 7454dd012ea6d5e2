package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// int16ToFloat rescales signed 16-bit PCM samples into the [-1, 1] float32
// range every downstream spectral transform expects. It is inserted
// automatically wherever an edge carries Int16 into a transform declared
// over Float32.
type int16ToFloat struct {
	uniformBase
	elementCount int
}

func newInt16ToFloat(map[string]string) (registry.Transform, error) {
	return &int16ToFloat{uniformBase: uniformBase{name: "int16_to_float"}}, nil
}

func (t *int16ToFloat) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	out := in
	out.Kind = format.Float32
	t.elementCount = in.Count * max1(in.ArrayLength)
	return out, 1, nil
}

func (t *int16ToFloat) Initialize() error { return nil }

func (t *int16ToFloat) Execute(input, output []byte) error {
	samples := readInt16s(input, t.elementCount)
	scaled := make([]float32, len(samples))
	for i, s := range samples {
		scaled[i] = float32(s) / 32768.0
	}
	writeFloat32s(output, scaled)
	return nil
}

func max1(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func int16ToFloatDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "int16_to_float",
		Description: "rescales int16 PCM samples to float32 in [-1, 1]",
		Params:      map[string]registry.ParamSpec{},
		New:         newInt16ToFloat,
		RequiredInputKind: format.Int16,
	}
}
