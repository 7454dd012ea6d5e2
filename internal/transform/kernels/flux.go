package kernels

import (
	"math"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// flux measures spectral change between consecutive frames of the same
// buffer; the first frame has no predecessor and flux is defined as zero.
type flux struct {
	uniformBase
	frameLen int
}

func newFlux(map[string]string) (registry.Transform, error) {
	return &flux{uniformBase: uniformBase{name: "flux"}}, nil
}

func (t *flux) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	out.ArrayLength = 1
	return out, 1, nil
}

func (t *flux) Initialize() error { return nil }

func (t *flux) Execute(input, output []byte) error {
	n := t.frameLen
	writeFloat32s(output, []float32{0})
	var prev []float32
	for f := 0; f < t.inputFormat.Count; f++ {
		bins := readComplex64s(input[f*n*8:], n)
		cur := make([]float32, n)
		for i, b := range bins {
			cur[i] = b.magnitudeSquared()
		}
		if f > 0 {
			var sqr float64
			for i, v := range cur {
				d := float64(v - prev[i])
				sqr += d * d
			}
			writeFloat32s(output[f*4:], []float32{float32(math.Sqrt(sqr))})
		}
		prev = cur
	}
	return nil
}

func fluxDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:              "flux",
		Description:       "spectral change between consecutive frames",
		Params:            map[string]registry.ParamSpec{},
		New:               newFlux,
		RequiredInputKind: format.ComplexFloat32,
	}
}
