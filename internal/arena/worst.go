package arena

// WorstAllocator assigns each node a fresh, non-overlapping offset by
// accumulating sizes along a depth-first traversal and links Next along the
// same traversal. It never shares space between nodes, so it is always
// Validator-correct and upper-bounds whatever height Sliding-Blocks finds;
// useful as a fallback and as a property-test oracle.
func WorstAllocator(root *Node) *Plan {
	order := traverse(root)
	offsets := make([]int, len(order))

	offset := 0
	for i, n := range order {
		offsets[i] = offset
		offset += n.Size
	}

	plan := &Plan{Height: offset, Order: order, First: order[0], Offsets: offsets}
	applyPlan(plan)
	return plan
}
