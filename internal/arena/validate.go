package arena

import (
	"fmt"

	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

// Validate is the correctness oracle for any plan, Sliding-Blocks' or
// Worst Allocator's alike. It reconstructs node order by following Next
// pointers, checks the chain visits every node exactly once, and verifies
// that every pair of nodes whose lifetimes overlap occupies disjoint byte
// ranges. The ancestor-overlap special case in the algorithm description —
// a node may not overlap an ancestor unless that ancestor's other children
// have all already executed — is just one instance of this same
// lifetime-interval-overlap check; it needs no separate code path, since an
// ancestor's lifetime by construction ends only after its last child's
// position, exactly the instant this check already reasons about.
func Validate(allNodes []*Node, first *Node) (bool, string) {
	order, err := followChain(allNodes, first)
	if err != "" {
		return false, err
	}

	total := len(order)
	positions := make(map[*Node]int, total)
	for i, n := range order {
		positions[n] = i
	}

	for _, n := range order {
		if !n.offsetSet {
			return false, fmt.Sprintf("node %d has no assigned offset", n.ID)
		}
	}

	intervals := make([][2]int, total)
	for i, n := range order {
		w := width(n, i, positions, total)
		intervals[i] = [2]int{i, i + w}
	}

	for i := 0; i < total; i++ {
		for j := i + 1; j < total; j++ {
			if !overlaps(intervals[i], intervals[j]) {
				continue
			}
			a, b := order[i], order[j]
			if rangesOverlap(a, b) {
				kind := "ranges overlap"
				if a.isLeaf() && b.isLeaf() {
					kind = "leaves overlap"
				}
				return false, fmt.Sprintf("node %d and node %d have overlapping lifetimes and %s: [%d,%d) vs [%d,%d)",
					a.ID, b.ID, kind, a.Offset, a.Offset+a.Size, b.Offset, b.Offset+b.Size)
			}
		}
	}

	return true, ""
}

func followChain(allNodes []*Node, first *Node) ([]*Node, string) {
	seen := make(map[*Node]bool, len(allNodes))
	var order []*Node
	n := first
	for n != nil {
		if seen[n] {
			return nil, fmt.Sprintf("cycle detected at node %d in next-order chain", n.ID)
		}
		seen[n] = true
		order = append(order, n)
		n = n.Next
	}
	if len(order) != len(allNodes) {
		return nil, fmt.Sprintf("next-order chain covers %d of %d nodes", len(order), len(allNodes))
	}
	return order, ""
}

func overlaps(a, b [2]int) bool {
	return a[0] < b[1] && b[0] < a[1]
}

func rangesOverlap(a, b *Node) bool {
	aStart, aEnd := a.Offset, a.Offset+a.Size
	bStart, bEnd := b.Offset, b.Offset+b.Size
	return aStart < bEnd && bStart < aEnd
}

// ValidateOrError runs Validate and converts a failure into the taxonomy's
// CorruptedTree error, for callers (the pipeline compiler) that need a
// single error return rather than a bool/reason pair.
func ValidateOrError(allNodes []*Node, first *Node) error {
	ok, reason := Validate(allNodes, first)
	if ok {
		return nil
	}
	return sferrors.NewCorruptedTreeError(reason, nil)
}
