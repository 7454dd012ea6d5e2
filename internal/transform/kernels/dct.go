package kernels

import (
	"math"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// dct computes the orthonormal DCT-II of each frame, the standard last step
// turning a log filter-bank into cepstral coefficients.
type dct struct {
	uniformBase
	frameLen int
}

func newDCT(map[string]string) (registry.Transform, error) {
	return &dct{uniformBase: uniformBase{name: "dct"}}, nil
}

func (t *dct) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	return out, 1, nil
}

func (t *dct) Initialize() error { return nil }

func (t *dct) Execute(input, output []byte) error {
	n := t.frameLen
	for f := 0; f < t.inputFormat.Count; f++ {
		frame := readFloat32s(input[f*n*4:], n)
		out := make([]float32, n)
		for k := 0; k < n; k++ {
			var sum float64
			for i, x := range frame {
				sum += float64(x) * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
			}
			scale := math.Sqrt(2.0 / float64(n))
			if k == 0 {
				scale = math.Sqrt(1.0 / float64(n))
			}
			out[k] = float32(sum * scale)
		}
		writeFloat32s(output[f*n*4:], out)
	}
	return nil
}

func dctDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "dct",
		Description: "orthonormal type-II discrete cosine transform of each frame",
		Params:      map[string]registry.ParamSpec{},
		New:         newDCT,
		RequiredInputKind: format.Float32,
	}
}
