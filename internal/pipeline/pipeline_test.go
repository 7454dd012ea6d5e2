package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/registry"
	"github.com/sfxlab/sfxgraph/internal/sfconfig"
	"github.com/sfxlab/sfxgraph/internal/transform/kernels"
)

func newTestRegistry() *registry.Registry {
	r := registry.New()
	kernels.RegisterAll(r)
	return r
}

func TestCompile_LoudnessChain(t *testing.T) {
	reg := newTestRegistry()
	specs := []string{"loudness[window, rdft, energy]"}

	p, err := Compile(reg, specs, 48000, format.DefaultSamplingRate, &sfconfig.Config{MaxTransformThreads: 1})
	require.NoError(t, err)
	assert.Greater(t, p.Height, 0)
	assert.NotEmpty(t, p.ArenaNodes)

	pcm := make([]byte, format.PCM(format.DefaultSamplingRate, 48000).Size())
	result, err := p.Execute(context.Background(), pcm)
	require.NoError(t, err)
	assert.Contains(t, result.Features, "loudness")
}

func TestCompile_SharesPrefixAcrossFeatures(t *testing.T) {
	reg := newTestRegistry()
	specs := []string{
		"loudness[window, rdft, energy]",
		"brightness[window, rdft, rolloff]",
	}

	p, err := Compile(reg, specs, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)

	var rdftCount int
	for _, n := range p.ArenaNodes {
		if n.Source.TransformName == "rdft" {
			rdftCount++
		}
	}
	assert.Equal(t, 1, rdftCount, "both features share the identical window/rdft prefix, branching only at their final leaf")
}

func TestCompile_UnknownTransformFails(t *testing.T) {
	reg := newTestRegistry()
	_, err := Compile(reg, []string{"bad[nope]"}, 48000, format.DefaultSamplingRate, nil)
	assert.Error(t, err)
}

func TestCompile_MFCCChainInsertsFormatConverter(t *testing.T) {
	reg := newTestRegistry()
	specs := []string{"mfcc[window, rdft, energy, filterbank, log, square, dct, selector(length=13)]"}

	p, err := Compile(reg, specs, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)

	var sawConverter bool
	for _, n := range p.ArenaNodes {
		if n.Source.TransformName == "int16_to_float" {
			sawConverter = true
		}
	}
	assert.True(t, sawConverter, "rdft requires float32 input but window emits int16, so a converter must be inserted")

	pcm := make([]byte, format.PCM(format.DefaultSamplingRate, 48000).Size())
	result, err := p.Execute(context.Background(), pcm)
	require.NoError(t, err)
	assert.Contains(t, result.Features, "mfcc")
}

func TestPipeline_ExecuteRejectsWrongBufferLength(t *testing.T) {
	reg := newTestRegistry()
	p, err := Compile(reg, []string{"loudness[window, rdft, energy]"}, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)

	_, err = p.Execute(context.Background(), []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestPipeline_DOTRendersLeavesAndEdges(t *testing.T) {
	reg := newTestRegistry()
	p, err := Compile(reg, []string{"loudness[window, rdft, energy]"}, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)

	dot := p.DOT()
	assert.Contains(t, dot, "digraph BuffersAllocator")
	assert.Contains(t, dot, "fillcolor=green")
	assert.Contains(t, dot, p.ID.String())
}

func TestPipeline_DumpIsDeterministicAcrossCompiles(t *testing.T) {
	reg := newTestRegistry()
	specs := []string{"loudness[window, rdft, energy]", "brightness[window, rdft, rolloff]"}

	a, err := Compile(reg, specs, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)
	b, err := Compile(reg, specs, 48000, format.DefaultSamplingRate, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Dump(), b.Dump())
}

func TestListTransforms_EnumeratesRegisteredKernels(t *testing.T) {
	reg := newTestRegistry()
	infos := ListTransforms(reg)

	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}
	assert.True(t, names["window"])
	assert.True(t, names["rdft"])
	assert.True(t, names["selector"])
}
