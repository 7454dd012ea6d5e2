// Package arena implements the Buffer Arena Planner: it assigns every node
// of a compiled transform tree a byte offset into one contiguous arena,
// minimizing the arena's peak size (height) subject to the constraint that
// no two nodes whose lifetimes overlap may occupy overlapping byte ranges.
package arena

import (
	"github.com/sfxlab/sfxgraph/internal/graph"
)

// DefaultVariantCap bounds how many traversal variants Sliding-Blocks will
// evaluate; debug and release builds share this cap, per the open question
// resolved in DESIGN.md.
const DefaultVariantCap = 50000

// Node is one vertex of the buffer-lifetime tree the planner operates over.
// It mirrors a graph.Node one-to-one; Source lets the executor map back to
// the transform instance and bound formats once planning is done.
type Node struct {
	ID     int
	Source *graph.Node
	Size   int

	Parent   *Node
	Children []*Node

	// Offset is the assigned byte offset into the arena. Valid only after
	// a planner has run.
	Offset    int
	offsetSet bool

	// Next is the execution-order successor: the node visited immediately
	// after this one in whichever traversal the planner selected.
	Next *Node
}

func (n *Node) isLeaf() bool { return len(n.Children) == 0 }

// BuildTree converts a resolved graph into the arena's node tree, one arena
// Node per graph Node, preserving parent/child structure. Returns the full
// node list in pre-order and the root.
func BuildTree(g *graph.Graph) ([]*Node, *Node) {
	var all []*Node
	lookup := make(map[*graph.Node]*Node, len(g.Nodes))

	var build func(gn *graph.Node) *Node
	build = func(gn *graph.Node) *Node {
		n := &Node{ID: len(all), Source: gn, Size: gn.OutputFormat.AlignedSize()}
		lookup[gn] = n
		all = append(all, n)
		for _, gc := range gn.Children {
			cn := build(gc)
			cn.Parent = n
			n.Children = append(n.Children, cn)
		}
		return n
	}

	root := build(g.Root)
	return all, root
}

// Plan is the result of a planner run: every node's assigned offset, the
// arena's total height, and the next-pointer execution chain (also written
// directly onto the Node values passed in, for convenience).
type Plan struct {
	Height  int
	First   *Node
	Order   []*Node
	Offsets []int
}
