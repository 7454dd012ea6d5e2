package kernels

import (
	"fmt"
	"strconv"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

const defaultRolloffRatio = "0.85"

// rolloff finds the frequency bin below which ratio of the frame's total
// energy is concentrated, reported in Hz as that bin's index divided by the
// frame duration in seconds.
type rolloff struct {
	uniformBase
	ratio    float64
	frameLen int
}

func newRolloff(params map[string]string) (registry.Transform, error) {
	ratio, _ := strconv.ParseFloat(params["ratio"], 32)
	return &rolloff{uniformBase: uniformBase{name: "rolloff"}, ratio: ratio}, nil
}

func (t *rolloff) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	out.ArrayLength = 1
	return out, 1, nil
}

func (t *rolloff) Initialize() error { return nil }

func (t *rolloff) Execute(input, output []byte) error {
	n := t.frameLen
	durationSec := float64(t.inputFormat.DurationMs) / 1000.0
	if durationSec == 0 {
		durationSec = 1
	}
	for f := 0; f < t.inputFormat.Count; f++ {
		bins := readComplex64s(input[f*n*8:], n)
		frame := make([]float32, n)
		for i, b := range bins {
			frame[i] = b.magnitudeSquared()
		}
		var total float64
		for _, v := range frame {
			total += float64(v)
		}
		threshold := total * t.ratio
		var psum float64
		idx := 0
		for i, v := range frame {
			psum += float64(v)
			idx = i
			if psum >= threshold {
				break
			}
		}
		writeFloat32s(output[f*4:], []float32{float32(float64(idx) / durationSec)})
	}
	return nil
}

func validateRolloffRatio(value string) error {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil || f <= 0 || f >= 1 {
		return fmt.Errorf("must be strictly between 0 and 1")
	}
	return nil
}

func rolloffDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "rolloff",
		Description: "frequency below which the given ratio of frame energy lies",
		Params: map[string]registry.ParamSpec{
			"ratio": {Description: "energy ratio threshold", Default: defaultRolloffRatio, Validate: validateRolloffRatio},
		},
		New:               newRolloff,
		RequiredInputKind: format.ComplexFloat32,
	}
}
