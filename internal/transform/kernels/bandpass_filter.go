package kernels

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// Filter length bounds are grounded on fir_filter_base.h, the base class all
// FIR filters share, rather than the general format_limits.h bounds (those
// constrain window duration, not filter taps).
const (
	minFilterLength     = 16
	maxFilterLength     = 100000
	defaultFilterLength = 150

	minFilterFrequency        = 100
	maxFilterFrequency        = 24000
	defaultFilterLowFrequency = 100
	defaultFilterHighFrequency = 8000
)

// bandpassFilter convolves each frame with a windowed-sinc bandpass kernel
// computed from the input sampling rate once formats are resolved.
type bandpassFilter struct {
	uniformBase
	length         int
	winType        windowType
	freqLow        int
	freqHigh       int
	coeffs         []float32
	frameLen       int
}

func newBandpassFilter(params map[string]string) (registry.Transform, error) {
	length, _ := strconv.Atoi(params["length"])
	freqLow, _ := strconv.Atoi(params["frequency_low"])
	freqHigh, _ := strconv.Atoi(params["frequency_high"])
	wt := windowTypeNames[params["window"]]
	return &bandpassFilter{
		uniformBase: uniformBase{name: "bandpass_filter"},
		length:      length,
		winType:     wt,
		freqLow:     freqLow,
		freqHigh:    freqHigh,
	}, nil
}

func (t *bandpassFilter) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	t.frameLen = max1(in.ArrayLength)
	out := in
	out.Kind = format.Float32
	return out, 1, nil
}

func (t *bandpassFilter) Initialize() error {
	rate := t.inputFormat.SamplingRate
	if rate == 0 {
		rate = format.DefaultSamplingRate
	}
	n := t.length
	offset := float64(n-1) / 2.0
	coeffs := make([]float32, n)
	for i := 0; i < n; i++ {
		x := float64(i) - offset
		var h float64
		if x != 0 {
			h = math.Sin(2*math.Pi*x*float64(t.freqHigh)/float64(rate))/(math.Pi*x) -
				math.Sin(2*math.Pi*x*float64(t.freqLow)/float64(rate))/(math.Pi*x)
		} else {
			h = 2.0 * float64(t.freqHigh-t.freqLow) / float64(rate)
		}
		coeffs[i] = float32(h) * windowElement(t.winType, i, n)
	}
	t.coeffs = coeffs
	return nil
}

func (t *bandpassFilter) Execute(input, output []byte) error {
	n := t.frameLen
	for f := 0; f < t.inputFormat.Count; f++ {
		frame := readFloat32s(input[f*n*4:], n)
		out := make([]float32, n)
		for i := range frame {
			var acc float32
			for k, c := range t.coeffs {
				j := i - k + len(t.coeffs)/2
				if j >= 0 && j < n {
					acc += frame[j] * c
				}
			}
			out[i] = acc
		}
		writeFloat32s(output[f*n*4:], out)
	}
	return nil
}

func validateFilterLength(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < minFilterLength || n > maxFilterLength {
		return fmt.Errorf("must be between %d and %d", minFilterLength, maxFilterLength)
	}
	return nil
}

func validateFilterFrequency(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < minFilterFrequency || n > maxFilterFrequency {
		return fmt.Errorf("must be between %d and %d Hz", minFilterFrequency, maxFilterFrequency)
	}
	return nil
}

func bandpassFilterDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "bandpass_filter",
		Description: "windowed-sinc bandpass FIR filter",
		Params: map[string]registry.ParamSpec{
			"length":        {Description: "filter length in taps", Default: strconv.Itoa(defaultFilterLength), Validate: validateFilterLength},
			"window":        {Description: "taper applied to the sinc kernel", Default: "hamming", Validate: validateWindowType},
			"frequency_low":  {Description: "low cutoff in Hz", Default: strconv.Itoa(defaultFilterLowFrequency), Validate: validateFilterFrequency},
			"frequency_high": {Description: "high cutoff in Hz", Default: strconv.Itoa(defaultFilterHighFrequency), Validate: validateFilterFrequency},
		},
		New: newBandpassFilter,
		RequiredInputKind: format.Float32,
	}
}
