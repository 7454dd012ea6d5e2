// Package pipeline ties the registry, parser, graph builder, format
// resolver, buffer arena planner and executor into the single
// compile/execute surface spec.md §6 describes: a feature-spec list goes in,
// a runnable Pipeline comes out, and PCM buffers go through it producing
// per-feature outputs and per-transform timings.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sfxlab/sfxgraph/internal/arena"
	"github.com/sfxlab/sfxgraph/internal/exec"
	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/graph"
	"github.com/sfxlab/sfxgraph/internal/output"
	"github.com/sfxlab/sfxgraph/internal/parser"
	"github.com/sfxlab/sfxgraph/internal/registry"
	"github.com/sfxlab/sfxgraph/internal/sfconfig"
)

// Pipeline is a compiled, immutable dataflow graph ready to run PCM buffers
// through. Every field is frozen once Compile returns; running Execute many
// times over many buffers is the expected usage.
type Pipeline struct {
	// ID identifies this compile, logged at compile time and written as a
	// comment line at the top of DOT output so repeated compiles of the
	// same specs remain distinguishable in diagnostics.
	ID uuid.UUID

	Graph      *graph.Graph
	ArenaNodes []*arena.Node
	ArenaRoot  *arena.Node
	Height     int
	Plan       *arena.Plan

	PCMLength    int
	SamplingRate int

	executor *exec.Executor
}

// Compile parses every spec string, merges the resulting chains into a
// prefix-sharing DAG, resolves buffer formats end to end, plans the byte
// arena, and validates the plan — exactly the pipeline spec.md §2 describes,
// in dependency order (R/F, T, P, G, FR, BAP).
func Compile(reg *registry.Registry, specs []string, pcmLength, samplingRate int, cfg *sfconfig.Config) (*Pipeline, error) {
	id := uuid.New()

	parsed := make([]parser.ParsedFeature, 0, len(specs))
	for _, spec := range specs {
		feature, err := parser.Parse(spec, reg.Known)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, feature)
	}

	g, err := graph.Build(reg, parsed)
	if err != nil {
		return nil, err
	}

	rootFormat := format.PCM(samplingRate, pcmLength)
	if err := g.ResolveFormats(rootFormat); err != nil {
		return nil, err
	}

	allNodes, root := arena.BuildTree(g)
	plan := arena.SlidingBlocks(allNodes, root, arena.DefaultVariantCap)

	if err := arena.ValidateOrError(allNodes, root); err != nil {
		return nil, err
	}

	output.Debug("pipeline compiled",
		"id", id.String(),
		"nodes", len(allNodes),
		"features", len(specs),
		"arena_height", plan.Height,
	)

	workers := 1
	if cfg != nil {
		workers = cfg.MaxTransformThreads
	}

	p := &Pipeline{
		ID:           id,
		Graph:        g,
		ArenaNodes:   allNodes,
		ArenaRoot:    root,
		Height:       plan.Height,
		Plan:         plan,
		PCMLength:    pcmLength,
		SamplingRate: samplingRate,
		executor:     exec.New(root, allNodes, plan.Height, workers),
	}
	return p, nil
}

// Execute runs one PCM buffer (little-endian int16 samples, byte length
// pcmLength*2) through the compiled pipeline, returning per-feature output
// buffers and per-transform timing.
func (p *Pipeline) Execute(ctx context.Context, pcm []byte) (exec.Result, error) {
	want := format.PCM(p.SamplingRate, p.PCMLength).Size()
	if len(pcm) != want {
		return exec.Result{}, fmt.Errorf("pcm buffer is %d bytes, pipeline was compiled for %d", len(pcm), want)
	}
	return p.executor.Run(ctx, pcm)
}
