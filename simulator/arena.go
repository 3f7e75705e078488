package simulator

import "fmt"

// nodeArena is the bidirectional node↔axis mapping: axisNode[i] is the
// node occupying tensor axis i, nodeAxis inverts it. Both views are
// updated together on every add/remove, so the bijection and the dense
// axis range are invariants, not conventions.
//
// Axis positions are never cached by callers: measuring a node out shifts
// every later axis down by one, so resolution is always by node identity
// through axisOf.
type nodeArena struct {
	axisNode []int
	nodeAxis map[int]int
}

func newNodeArena() *nodeArena {
	return &nodeArena{nodeAxis: make(map[int]int)}
}

// size returns the number of live nodes (= tensor axes).
func (a *nodeArena) size() int {
	return len(a.axisNode)
}

// nodes returns a copy of the live nodes in axis order.
func (a *nodeArena) nodes() []int {
	cp := make([]int, len(a.axisNode))
	copy(cp, a.axisNode)
	return cp
}

// axisOf resolves a node identity to its current tensor axis.
//
// Complexity: O(1).
func (a *nodeArena) axisOf(node int) (int, error) {
	axis, ok := a.nodeAxis[node]
	if !ok {
		return 0, fmt.Errorf("%w: node %d", ErrUnknownNode, node)
	}
	return axis, nil
}

// appendNodes assigns the next axes to the given nodes, in order.
// Rejects nodes that are already live or repeated within the call;
// validation happens before any mutation, so a failed append leaves the
// arena untouched.
//
// Complexity: O(m).
func (a *nodeArena) appendNodes(nodes []int) error {
	seen := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		if _, live := a.nodeAxis[n]; live {
			return fmt.Errorf("%w: node %d", ErrDuplicateNode, n)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: node %d", ErrDuplicateNode, n)
		}
		seen[n] = struct{}{}
	}
	for _, n := range nodes {
		a.nodeAxis[n] = len(a.axisNode)
		a.axisNode = append(a.axisNode, n)
	}
	return nil
}

// remove deletes a node and compacts the axis range: every node above the
// freed axis shifts down by one position, mirroring the state vector's
// DiscardAxis.
//
// Complexity: O(k).
func (a *nodeArena) remove(node int) error {
	axis, err := a.axisOf(node)
	if err != nil {
		return err
	}
	a.axisNode = append(a.axisNode[:axis], a.axisNode[axis+1:]...)
	delete(a.nodeAxis, node)
	for i := axis; i < len(a.axisNode); i++ {
		a.nodeAxis[a.axisNode[i]] = i
	}
	return nil
}
