package kernels

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

type windowType int

const (
	windowRectangular windowType = iota
	windowHamming
	windowHanning
)

var windowTypeNames = map[string]windowType{
	"rectangular": windowRectangular,
	"hamming":     windowHamming,
	"hanning":     windowHanning,
}

// windowElement conforms to Matlab's hamming()/hanning() conventions.
func windowElement(t windowType, index, length int) float32 {
	switch t {
	case windowHamming:
		return float32(0.54 - 0.46*math.Cos(2*math.Pi*float64(index)/float64(length-1)))
	case windowHanning:
		return float32(0.5 - 0.5*math.Cos(2*math.Pi*float64(index)/float64(length-1)))
	default:
		return 1.0
	}
}

// window slices a raw PCM capture into overlapping frames, fanning one input
// buffer out into many windowed output buffers. Two extra samples are
// appended to each frame so a downstream real DFT has room for the Nyquist
// bin without a separate resize pass.
type window struct {
	uniformBase

	lengthMs  int
	stepMs    int
	winType   windowType
	lengthN   int
	stepN     int
	numFrames int
	coeffs    []float32
}

func newWindow(params map[string]string) (registry.Transform, error) {
	lengthMs, _ := strconv.Atoi(params["length"])
	stepMs, _ := strconv.Atoi(params["step"])
	wt := windowTypeNames[params["window"]]
	return &window{
		uniformBase: uniformBase{name: "window"},
		lengthMs:    lengthMs,
		stepMs:      stepMs,
		winType:     wt,
	}, nil
}

func (t *window) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)

	rate := in.SamplingRate
	if rate == 0 {
		rate = format.DefaultSamplingRate
	}
	t.lengthN = t.lengthMs * rate / 1000
	t.stepN = t.stepMs * rate / 1000

	total := in.ArrayLength
	if t.lengthN <= 0 || total < t.lengthN {
		t.numFrames = 0
	} else {
		t.numFrames = (total-t.lengthN)/t.stepN + 1
	}

	out := format.BufferFormat{
		Kind:         format.Int16,
		Count:        in.Count * t.numFrames,
		SamplingRate: rate,
		DurationMs:   t.lengthMs,
		ArrayLength:  t.lengthN + 2,
	}
	return out, t.numFrames, nil
}

func (t *window) Initialize() error {
	t.coeffs = make([]float32, t.lengthN)
	for i := 0; i < t.lengthN; i++ {
		t.coeffs[i] = windowElement(t.winType, i, t.lengthN)
	}
	return nil
}

func (t *window) Execute(input, output []byte) error {
	frameOutBytes := (t.lengthN + 2) * 2
	for f := 0; f < t.numFrames; f++ {
		srcOff := f * t.stepN * 2
		dstOff := f * frameOutBytes
		frame := readInt16s(input[srcOff:srcOff+t.lengthN*2], t.lengthN)

		out := make([]int16, t.lengthN+2)
		if t.winType == windowRectangular {
			copy(out, frame)
		} else {
			for i, s := range frame {
				v := float32(s) * t.coeffs[i]
				out[i] = int16(v)
			}
		}
		writeInt16s(output[dstOff:dstOff+len(out)*2], out)
	}
	return nil
}

func validateWindowDuration(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("must be an integer number of milliseconds")
	}
	if n < format.MinWindowDurationMs || n > format.MaxWindowDurationMs {
		return fmt.Errorf("must be between %d and %d ms", format.MinWindowDurationMs, format.MaxWindowDurationMs)
	}
	return nil
}

func validateWindowStep(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("must be an integer number of milliseconds")
	}
	if n < format.MinWindowStepMs || n > format.MaxWindowStepMs {
		return fmt.Errorf("must be between %d and %d ms", format.MinWindowStepMs, format.MaxWindowStepMs)
	}
	return nil
}

func validateWindowType(value string) error {
	if _, ok := windowTypeNames[value]; !ok {
		return fmt.Errorf("must be one of rectangular, hamming, hanning")
	}
	return nil
}

func windowDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "window",
		Description: "slices PCM into overlapping, optionally tapered frames",
		Params: map[string]registry.ParamSpec{
			"length": {
				Description: "frame length in milliseconds",
				Default:     strconv.Itoa(format.DefaultWindowDurationMs),
				Validate:    validateWindowDuration,
			},
			"step": {
				Description: "frame step in milliseconds",
				Default:     strconv.Itoa(format.DefaultWindowStepMs),
				Validate:    validateWindowStep,
			},
			"window": {
				Description: "taper applied to each frame",
				Default:     "hamming",
				Validate:    validateWindowType,
			},
		},
		New: newWindow,
		RequiredInputKind: format.Int16,
	}
}
