// Package registry holds the process-wide directory of known transforms:
// their factories, declared parameter schemas, and the format converters
// that may be inserted automatically between incompatible edges.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

// Transform is the contract every registered transform kernel implements.
// A Transform is created already parameter-bound; SetInputFormat moves it
// through the input-format-bound and initialized lifecycle stages.
type Transform interface {
	// Name returns the registered transform name.
	Name() string

	// SetInputFormat binds the transform's input format, triggering its
	// on_format_changed hook. It returns the output buffers-count
	// multiplier (1 for most transforms; >1 for fan-out transforms like
	// windowing) and the resulting output format.
	SetInputFormat(in format.BufferFormat) (outputFormat format.BufferFormat, multiplier int, err error)

	// Initialize precomputes any tables the transform needs (FFT plans,
	// filter coefficients). Called once after formats are frozen.
	Initialize() error

	// Execute runs the transform over one input buffer, writing to output.
	// Both buffers are pre-sized by the caller to the negotiated formats.
	// Execute must not allocate.
	Execute(input, output []byte) error
}

// Validator checks a raw parameter string for one named parameter.
type Validator func(value string) error

// ParamSpec describes one recognized parameter of a transform.
type ParamSpec struct {
	Description string
	Default     string
	Validate    Validator
}

// Descriptor fully describes one registered transform: how to build it and
// what parameters and formats it accepts.
type Descriptor struct {
	Name        string
	Description string
	Params      map[string]ParamSpec
	New         func(params map[string]string) (Transform, error)

	// AnyInputKind, when true, means this transform accepts any element
	// kind on its input edge (e.g. identity, or a pure reshape). Otherwise
	// RequiredInputKind names the only kind it accepts; the graph builder
	// inserts an automatic converter when a producer's output kind differs.
	AnyInputKind    bool
	RequiredInputKind format.ElementKind
}

// ConverterKey identifies an automatically insertable format converter by
// the element kinds it bridges.
type ConverterKey struct {
	From format.ElementKind
	To   format.ElementKind
}

// Registry is the process-wide transform directory. Populated once at
// startup via Register/RegisterConverter, read-only thereafter and
// therefore safe for concurrent lookups without synchronization beyond
// the mutex guarding registration itself.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]*Descriptor
	converters map[ConverterKey]*Descriptor
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		transforms: make(map[string]*Descriptor),
		converters: make(map[ConverterKey]*Descriptor),
	}
}

// Register adds a transform descriptor. Panics on duplicate registration,
// a programmer error rather than a runtime condition.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transforms[d.Name]; exists {
		panic(fmt.Sprintf("registry: transform %q already registered", d.Name))
	}
	r.transforms[d.Name] = &d
}

// RegisterConverter adds a format converter for the given element-kind pair.
func (r *Registry) RegisterConverter(from, to format.ElementKind, d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ConverterKey{From: from, To: to}
	r.converters[key] = &d
}

// Enumerate returns all registered transform names in stable (sorted) order.
func (r *Registry) Enumerate() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the descriptor for name, or UnknownTransform.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.transforms[name]
	if !ok {
		return nil, sferrors.NewUnknownTransformError(name, "use list-transforms to see registered names")
	}
	return d, nil
}

// Known reports whether name is registered; used by the parser to reject
// unknown transform names at parse time.
func (r *Registry) Known(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// NormalizeParams fills in declared defaults for parameters absent from
// params, validates every supplied parameter against the transform's
// schema, and returns the normalized (name -> value) map used for
// DAG prefix-sharing comparisons.
func (r *Registry) NormalizeParams(name string, params map[string]string) (map[string]string, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	normalized := make(map[string]string, len(d.Params))
	for paramName, spec := range d.Params {
		normalized[paramName] = spec.Default
	}
	for paramName, value := range params {
		spec, ok := d.Params[paramName]
		if !ok {
			return nil, sferrors.NewInvalidParameterNameError(name, paramName, "check list-transforms for valid parameter names")
		}
		if spec.Validate != nil {
			if err := spec.Validate(value); err != nil {
				return nil, sferrors.NewInvalidParameterValueError(name, paramName, value, err.Error())
			}
		}
		normalized[paramName] = value
	}
	return normalized, nil
}

// Instantiate builds a new Transform Instance, normalizing and validating
// params against the transform's declared schema.
func (r *Registry) Instantiate(name string, params map[string]string) (Transform, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	normalized, err := r.NormalizeParams(name, params)
	if err != nil {
		return nil, err
	}
	return d.New(normalized)
}

// FindConverter returns the converter descriptor bridging from -> to, if one
// is registered.
func (r *Registry) FindConverter(from, to format.ElementKind) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.converters[ConverterKey{From: from, To: to}]
	return d, ok
}

// EnumerateFormatConverters returns the (from, to) element-kind pairs for
// which an automatic converter exists.
func (r *Registry) EnumerateFormatConverters() []ConverterKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]ConverterKey, 0, len(r.converters))
	for k := range r.converters {
		keys = append(keys, k)
	}
	return keys
}
