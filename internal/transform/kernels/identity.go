package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// identity copies its input straight to its output unchanged. It backs the
// synthetic root of every compiled pipeline (the node that holds the raw PCM
// capture) and is handy as a no-op probe point in diagnostics.
type identity struct {
	uniformBase
}

func newIdentity(map[string]string) (registry.Transform, error) {
	return &identity{uniformBase{name: "identity"}}, nil
}

func (t *identity) SetInputFormat(in format.BufferFormat) (format.BufferFormat, int, error) {
	t.bind(in)
	return in, 1, nil
}

func (t *identity) Initialize() error { return nil }

func (t *identity) Execute(input, output []byte) error {
	copy(output, input)
	return nil
}

func identityDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "identity",
		Description: "passes its input through unchanged",
		Params:      map[string]registry.ParamSpec{},
		New:         newIdentity,
		AnyInputKind: true,
	}
}
