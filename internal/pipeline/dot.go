package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sfxlab/sfxgraph/internal/arena"
)

// DOT renders the compiled DAG as a GraphViz DOT graph, per spec.md §6's
// pipeline_dot interface: one digraph named BuffersAllocator, one numbered
// node per DAG node labeled with its byte range, leaf nodes filled green,
// parent->child edges plain, next-pointer edges red. The pipeline's compile
// ID is embedded as a graph-level comment so repeated compiles of the same
// specs remain distinguishable when diffing dumped graphs.
func (p *Pipeline) DOT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "// pipeline %s\n", p.ID)
	b.WriteString("digraph BuffersAllocator {\n")

	ordered := make([]*arena.Node, len(p.ArenaNodes))
	copy(ordered, p.ArenaNodes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, n := range ordered {
		label := fmt.Sprintf("%s\\n[%d, %d]", n.Source.TransformName, n.Offset, n.Offset+n.Size)
		if len(n.Children) == 0 {
			fmt.Fprintf(&b, "  n%d [label=%q, style=filled, fillcolor=green];\n", n.ID, label)
		} else {
			fmt.Fprintf(&b, "  n%d [label=%q];\n", n.ID, label)
		}
	}

	for _, n := range ordered {
		for _, c := range n.Children {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", n.ID, c.ID)
		}
	}

	for _, n := range ordered {
		if n.Next != nil {
			fmt.Fprintf(&b, "  n%d -> n%d [color=red];\n", n.ID, n.Next.ID)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
