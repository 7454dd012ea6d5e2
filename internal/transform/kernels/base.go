package kernels

import "github.com/sfxlab/sfxgraph/internal/format"

// uniformBase is embedded by every kernel in this package: it holds the
// registered name and the input format bound by SetInputFormat, which most
// kernels' Execute uses to iterate over inputFormat.Count sub-buffers.
type uniformBase struct {
	name        string
	inputFormat format.BufferFormat
}

func (b *uniformBase) Name() string { return b.name }

func (b *uniformBase) bind(in format.BufferFormat) {
	b.inputFormat = in
}
