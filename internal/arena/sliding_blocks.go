package arena

// branchPoint is a node whose children's relative visit order affects the
// packing and therefore must be enumerated: it has at least two children,
// and at least one of them is not a leaf (an all-leaf fan-out's internal
// order is interchangeable, per the leaf-merge simplification).
type branchPoint struct {
	node  *Node
	perms [][]*Node
}

// SlidingBlocks explores up to variantCap child-visit-order variants of the
// tree rooted at root, greedily packs each into a 2-D arena via the relief
// array, and returns the lowest-height plan found. Ties keep whichever
// variant was produced first.
func SlidingBlocks(allNodes []*Node, root *Node, variantCap int) *Plan {
	branches := collectBranchPoints(root)

	var best *Plan
	bestOrder := make(map[*Node][]*Node, len(branches))
	forEachVariant(branches, variantCap, func() {
		order := traverse(root)
		plan := packTraversal(order)
		if best == nil || plan.Height < best.Height {
			best = plan
			for _, b := range branches {
				bestOrder[b.node] = append([]*Node(nil), b.node.Children...)
			}
		}
	})

	if best == nil {
		// No branch points at all: a single linear chain (or empty tree).
		order := traverse(root)
		best = packTraversal(order)
	}

	// Branch nodes were left holding whichever permutation forEachVariant
	// tried last, not the winning one. Every downstream consumer of
	// Node.Children — the executor's concurrency fan-out and DOT's edge
	// rendering alike — must see the same child order the winning
	// traversal was packed for, or lifetimes the planner proved disjoint
	// stop lining up with the tree structure used to schedule them.
	for node, children := range bestOrder {
		node.Children = children
	}

	applyPlan(best)
	return best
}

func collectBranchPoints(root *Node) []*branchPoint {
	var branches []*branchPoint
	var walk func(n *Node)
	walk = func(n *Node) {
		if len(n.Children) >= 2 {
			allLeaves := true
			for _, c := range n.Children {
				if !c.isLeaf() {
					allLeaves = false
					break
				}
			}
			if !allLeaves {
				branches = append(branches, &branchPoint{node: n, perms: permutations(n.Children)})
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return branches
}

func permutations(items []*Node) [][]*Node {
	if len(items) <= 1 {
		return [][]*Node{append([]*Node(nil), items...)}
	}
	var result [][]*Node
	for i := range items {
		rest := make([]*Node, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, p := range permutations(rest) {
			perm := append([]*Node{items[i]}, p...)
			result = append(result, perm)
		}
	}
	return result
}

// forEachVariant walks the capped cartesian product of each branch point's
// permutation set, assigning the chosen order onto branch.node.Children for
// the duration of each call to fn. First-seen tie-break falls out of this
// enumeration order combined with a strict less-than comparison in the
// caller.
func forEachVariant(branches []*branchPoint, cap_ int, fn func()) {
	if len(branches) == 0 {
		fn()
		return
	}

	counters := make([]int, len(branches))
	produced := 0
	for {
		for i, b := range branches {
			b.node.Children = b.perms[counters[i]]
		}
		fn()
		produced++
		if produced >= cap_ {
			return
		}

		pos := len(counters) - 1
		for pos >= 0 {
			counters[pos]++
			if counters[pos] < len(branches[pos].perms) {
				break
			}
			counters[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}

// traverse produces the depth-first pre-order visit sequence of the tree
// rooted at root, honoring whatever child order is currently assigned.
func traverse(root *Node) []*Node {
	var order []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		order = append(order, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return order
}

// width implements the unified lifetime-width rule: a leaf stays live until
// the traversal ends (an undrained feature output); an internal node's
// lifetime ends the instant its last direct child has been visited.
func width(n *Node, x int, positions map[*Node]int, totalLength int) int {
	if n.isLeaf() {
		return totalLength - x
	}
	lastChildPos := -1
	for _, c := range n.Children {
		if p := positions[c]; p > lastChildPos {
			lastChildPos = p
		}
	}
	return lastChildPos + 1 - x
}

func packTraversal(order []*Node) *Plan {
	total := len(order)
	positions := make(map[*Node]int, total)
	for i, n := range order {
		positions[n] = i
	}

	relief := make([]int, total)
	offsets := make([]int, total)
	height := 0

	for x, n := range order {
		w := width(n, x, positions, total)
		y := 0
		for i := x; i < x+w; i++ {
			if relief[i] > y {
				y = relief[i]
			}
		}
		offsets[x] = y
		top := y + n.Size
		for i := x; i < x+w; i++ {
			relief[i] = top
		}
		if top > height {
			height = top
		}
	}

	return &Plan{
		Height:  height,
		Order:   append([]*Node(nil), order...),
		First:   order[0],
		Offsets: offsets,
	}
}

// applyPlan writes the selected plan's offsets and next-pointers onto the
// underlying nodes.
func applyPlan(plan *Plan) {
	for i, n := range plan.Order {
		n.Offset = plan.Offsets[i]
		n.offsetSet = true
		if i+1 < len(plan.Order) {
			n.Next = plan.Order[i+1]
		} else {
			n.Next = nil
		}
	}
}
