package kernels

import (
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
)

// RegisterAll registers every known transform kernel and format converter
// into r. Called once at process startup.
func RegisterAll(r *registry.Registry) {
	r.Register(identityDescriptor())
	r.Register(int16ToFloatDescriptor())
	r.Register(windowDescriptor())
	r.Register(rdftDescriptor())
	r.Register(energyDescriptor())
	r.Register(squareDescriptor())
	r.Register(logDescriptor())
	r.Register(dctDescriptor())
	r.Register(selectorDescriptor())
	r.Register(bandpassFilterDescriptor())
	r.Register(centroidDescriptor())
	r.Register(fluxDescriptor())
	r.Register(rolloffDescriptor())
	r.Register(filterBankDescriptor())

	r.RegisterConverter(format.Int16, format.Float32, int16ToFloatDescriptor())
}
