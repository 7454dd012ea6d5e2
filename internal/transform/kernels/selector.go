package kernels

import (
	"fmt"
	"strconv"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// selector slices out a contiguous sub-range [from, from+length) of each
// frame's array, used to drop the DC/Nyquist bins or focus on a sub-band.
type selector struct {
	uniformBase
	from, length int
}

func newSelector(params map[string]string) (registry.Transform, error) {
	from, _ := strconv.Atoi(params["from"])
	length, _ := strconv.Atoi(params["length"])
	return &selector{uniformBase: uniformBase{name: "selector"}, from: from, length: length}, nil
}

func (t *selector) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	if t.length == 0 {
		t.length = in.ArrayLength - t.from
	}
	out := in
	out.ArrayLength = t.length
	return out, 1, nil
}

func (t *selector) Initialize() error { return nil }

func (t *selector) Execute(input, output []byte) error {
	elemSize := t.inputFormat.ElementSize()
	inFrame := t.inputFormat.ArrayLength
	for f := 0; f < t.inputFormat.Count; f++ {
		srcOff := (f*inFrame + t.from) * elemSize
		dstOff := f * t.length * elemSize
		copy(output[dstOff:dstOff+t.length*elemSize], input[srcOff:srcOff+t.length*elemSize])
	}
	return nil
}

func validateNonNegativeInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

func selectorDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "selector",
		Description: "slices a contiguous sub-range out of each frame's array",
		Params: map[string]registry.ParamSpec{
			"from":   {Description: "starting index", Default: "0", Validate: validateNonNegativeInt},
			"length": {Description: "element count, 0 means to the end", Default: "0", Validate: validateNonNegativeInt},
		},
		New: newSelector,
		AnyInputKind: true,
	}
}
