package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// square computes the elementwise square of each frame, in place shape-wise.
type square struct {
	uniformBase
	frameLen int
}

func newSquare(map[string]string) (registry.Transform, error) {
	return &square{uniformBase: uniformBase{name: "square"}}, nil
}

func (t *square) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	return out, 1, nil
}

func (t *square) Initialize() error { return nil }

func (t *square) Execute(input, output []byte) error {
	total := t.inputFormat.Count * t.frameLen
	in := readFloat32s(input, total)
	out := make([]float32, total)
	for i, v := range in {
		out[i] = v * v
	}
	writeFloat32s(output, out)
	return nil
}

func squareDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "square",
		Description: "elementwise square of each frame",
		Params:      map[string]registry.ParamSpec{},
		New:         newSquare,
		RequiredInputKind: format.Float32,
	}
}
