// Package exec runs a planned transform tree over PCM buffers: it copies
// raw samples into the arena, executes every node in dependency order,
// optionally fanning independent subtrees out across a worker pool, and
// gathers the feature-tagged leaf outputs.
package exec

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sfxlab/sfxgraph/internal/arena"
	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

// Result is the outcome of running a compiled pipeline over one PCM buffer.
type Result struct {
	// Features maps each requested feature name to its leaf output bytes.
	Features map[string][]byte

	// Timings aggregates wall-clock time spent inside each transform name,
	// summed across every node that shares it.
	Timings map[string]time.Duration

	// Invocations counts how many nodes sharing each transform name
	// executed, so callers can derive a per-call average alongside Timings.
	Invocations map[string]int
}

// Executor runs a planned arena tree. It is built once per compiled
// pipeline and may run many buffers through Run.
type Executor struct {
	root    *arena.Node
	all     []*arena.Node
	height  int
	workers int
}

// New builds an Executor bound to a planned arena tree. workers bounds how
// many transform kernels may execute concurrently; values below 1 are
// treated as 1 (fully sequential).
func New(root *arena.Node, all []*arena.Node, height, workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{root: root, all: all, height: height, workers: workers}
}

// Run copies pcm into the root's arena slice, executes every non-root node
// once its parent has finished, and returns the feature outputs plus
// per-transform timing. Two nodes with no ancestor relationship are
// scheduled concurrently, bounded by the worker pool size; the arena
// planner already guarantees their byte ranges are disjoint whenever their
// lifetimes could overlap, so no additional locking is needed around the
// shared buffer itself.
//
// The worker-pool limit bounds concurrent *execution*, not concurrent
// goroutine fan-out: schedule spawns one unlimited errgroup goroutine per
// node (cheap — it only blocks waiting for a semaphore slot), so a node
// never sits inside the limited section while recursing into its children.
// Gating the recursive eg.Go call itself by the same limit a running node
// holds would deadlock any chain of depth ≥ 2 once workers == 1, since the
// parent's goroutine would hold the sole token while blocked acquiring a
// second one for its own child.
func (e *Executor) Run(ctx context.Context, pcm []byte) (Result, error) {
	buf := make([]byte, e.height)
	copy(buf[e.root.Offset:e.root.Offset+e.root.Size], pcm)

	var mu sync.Mutex
	timings := make(map[string]time.Duration, len(e.all))
	invocations := make(map[string]int, len(e.all))

	sem := make(chan struct{}, e.workers)
	eg, egctx := errgroup.WithContext(ctx)

	var schedule func(n *arena.Node) error
	schedule = func(n *arena.Node) error {
		if err := egctx.Err(); err != nil {
			return err
		}

		select {
		case sem <- struct{}{}:
		case <-egctx.Done():
			return egctx.Err()
		}
		err := e.executeNode(n, buf, &mu, timings, invocations)
		<-sem
		if err != nil {
			return err
		}

		for _, child := range n.Children {
			child := child
			eg.Go(func() error { return schedule(child) })
		}
		return nil
	}

	for _, child := range e.root.Children {
		child := child
		eg.Go(func() error { return schedule(child) })
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	return Result{Features: e.gatherFeatures(buf), Timings: timings, Invocations: invocations}, nil
}

func (e *Executor) executeNode(n *arena.Node, buf []byte, mu *sync.Mutex, timings map[string]time.Duration, invocations map[string]int) error {
	parent := n.Parent
	input := buf[parent.Offset : parent.Offset+parent.Size]
	output := buf[n.Offset : n.Offset+n.Size]

	start := time.Now()
	err := n.Source.Transform.Execute(input, output)
	elapsed := time.Since(start)

	mu.Lock()
	timings[n.Source.TransformName] += elapsed
	invocations[n.Source.TransformName]++
	mu.Unlock()

	if err != nil {
		return sferrors.NewExecutionError(n.Source.TransformName, err.Error())
	}
	return nil
}

func (e *Executor) gatherFeatures(buf []byte) map[string][]byte {
	out := make(map[string][]byte)
	for _, n := range e.all {
		if n.Source == nil {
			continue
		}
		for _, feature := range n.Source.Features {
			data := make([]byte, n.Size)
			copy(data, buf[n.Offset:n.Offset+n.Size])
			out[feature] = data
		}
	}
	return out
}
