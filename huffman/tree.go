package huffman

// node is one slot in the canonical code tree. A nil *node means no code
// uses that prefix. A leaf terminates exactly one code and holds its
// symbol value; any other node is a branch whose children cover the
// prefix extended by one bit.
//
// The tree exclusively owns its nodes. There are no back references, so
// dropping a child pointer drops the whole subtree.
type node struct {
	leaf  bool
	value uint8
	zero  *node // child for a 0 bit
	one   *node // child for a 1 bit
}

// vacantSlots appends pointers to every vacant child slot exactly depth
// bits below n, in canonical order: the zero branch before the one
// branch, recursively. This order is the canonical-code assignment
// order, so the first returned slot receives the numerically smallest
// code of that length.
//
// Branches are materialized on the way down so a returned slot can be
// claimed as a leaf in place. Slots under an existing leaf are occupied
// and never descended into. Branches materialized here but never claimed
// are removed by pruneLeafless.
func (n *node) vacantSlots(depth int, out []**node) []**node {
	for _, slot := range [2]**node{&n.zero, &n.one} {
		if depth == 1 {
			if *slot == nil {
				out = append(out, slot)
			}
			continue
		}
		if *slot == nil {
			*slot = &node{}
		}
		if !(*slot).leaf {
			out = (*slot).vacantSlots(depth-1, out)
		}
	}
	return out
}

// hasLeaves reports whether any leaf is reachable from n.
func (n *node) hasLeaves() bool {
	if n.leaf {
		return true
	}
	for _, child := range [2]*node{n.zero, n.one} {
		if child != nil && child.hasLeaves() {
			return true
		}
	}
	return false
}

// pruneLeafless removes every branch below n whose subtree contains no
// leaf. Without this, a decode could walk several bits into a dead
// branch before discovering the code is invalid; pruning makes the
// absent-child check in the decode loop fire on the first dead bit.
// Idempotent.
func (n *node) pruneLeafless() {
	for _, slot := range [2]**node{&n.zero, &n.one} {
		child := *slot
		if child == nil || child.leaf {
			continue
		}
		if !child.hasLeaves() {
			*slot = nil
			continue
		}
		child.pruneLeafless()
	}
}

// countNodes returns the number of nodes below and including n.
func (n *node) countNodes() int {
	total := 1
	for _, child := range [2]*node{n.zero, n.one} {
		if child != nil {
			total += child.countNodes()
		}
	}
	return total
}
