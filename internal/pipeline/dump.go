package pipeline

import (
	"sort"

	"github.com/sfxlab/sfxgraph/internal/arena"
)

// NodeDump is the serializable projection of one DAG node used for
// structural diffing between two compiled pipelines (see sfxgraph diff):
// just enough of each node's identity and planned placement to tell whether
// two compiles produced the same shape.
type NodeDump struct {
	Transform string            `yaml:"transform"`
	Params    map[string]string `yaml:"params,omitempty"`
	Offset    int               `yaml:"offset"`
	Size      int               `yaml:"size"`
	Features  []string          `yaml:"features,omitempty"`
	Children  []NodeDump        `yaml:"children,omitempty"`
}

// Dump is the YAML-serializable projection of the whole compiled pipeline:
// its arena height and the node tree rooted at the synthetic PCM root.
type Dump struct {
	ArenaHeight int      `yaml:"arena_height"`
	Root        NodeDump `yaml:"root"`
}

// Dump projects the compiled pipeline into a YAML-marshalable tree,
// consumed by sfxgraph diff to compare two compiles with dyff.
func (p *Pipeline) Dump() Dump {
	return Dump{ArenaHeight: p.Height, Root: dumpNode(p.ArenaRoot)}
}

func dumpNode(n *arena.Node) NodeDump {
	children := make([]NodeDump, len(n.Children))
	for i, c := range n.Children {
		children[i] = dumpNode(c)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].Transform != children[j].Transform {
			return children[i].Transform < children[j].Transform
		}
		return children[i].Offset < children[j].Offset
	})

	return NodeDump{
		Transform: n.Source.TransformName,
		Params:    n.Source.Params,
		Offset:    n.Offset,
		Size:      n.Size,
		Features:  append([]string(nil), n.Source.Features...),
		Children:  children,
	}
}
