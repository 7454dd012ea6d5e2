package kernels

import (
	"math"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// logTransform computes the elementwise natural log of each frame, flooring
// at a small epsilon so silent frames don't produce -Inf.
type logTransform struct {
	uniformBase
	frameLen int
}

const logEpsilon = 1e-9

func newLog(map[string]string) (registry.Transform, error) {
	return &logTransform{uniformBase: uniformBase{name: "log"}}, nil
}

func (t *logTransform) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	return out, 1, nil
}

func (t *logTransform) Initialize() error { return nil }

func (t *logTransform) Execute(input, output []byte) error {
	total := t.inputFormat.Count * t.frameLen
	in := readFloat32s(input, total)
	out := make([]float32, total)
	for i, v := range in {
		if v < logEpsilon {
			v = logEpsilon
		}
		out[i] = float32(math.Log(float64(v)))
	}
	writeFloat32s(output, out)
	return nil
}

func logDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "log",
		Description: "elementwise natural log, floored at a small epsilon",
		Params:      map[string]registry.ParamSpec{},
		New:         newLog,
		RequiredInputKind: format.Float32,
	}
}
