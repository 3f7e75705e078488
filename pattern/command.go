package pattern

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/takuji-hiraoka/graphix/ops"
)

// Command is one step of a measurement pattern. The interface is sealed:
// only the five command types in this package implement it.
type Command interface {
	// isCommand is the sealing marker; it carries no behavior.
	isCommand()
}

// AddNode (N) introduces a fresh qubit on the named node, prepared in
// |+⟩ and appended to the state.
type AddNode struct {
	Node int
}

// EntangleNodes (E) applies the controlled-Z entangler to two live nodes.
// The operation is symmetric in A and B.
type EntangleNodes struct {
	A int
	B int
}

// MeasureNode (M) measures a live node and removes it from the state.
//
// The effective measurement angle is adaptive: with s and t the sums of
// recorded outcomes over SDomain and TDomain respectively, the simulator
// measures at Angle·π·(−1)^s + π·t radians in Plane, conjugated by the
// VOp-th local Clifford (0 = identity).
type MeasureNode struct {
	Node    int
	Plane   ops.Plane
	Angle   float64 // in units of π
	SDomain mapset.Set[int]
	TDomain mapset.Set[int]
	VOp     int
}

// CorrectX (X) applies a Pauli-X byproduct correction to a live node iff
// the parity of recorded outcomes over Domain is odd.
type CorrectX struct {
	Node   int
	Domain mapset.Set[int]
}

// CorrectZ (Z) applies a Pauli-Z byproduct correction to a live node iff
// the parity of recorded outcomes over Domain is odd.
type CorrectZ struct {
	Node   int
	Domain mapset.Set[int]
}

func (AddNode) isCommand()       {}
func (EntangleNodes) isCommand() {}
func (MeasureNode) isCommand()   {}
func (CorrectX) isCommand()      {}
func (CorrectZ) isCommand()      {}

// Domain is a convenience constructor for measurement/correction domains.
func Domain(nodes ...int) mapset.Set[int] {
	return mapset.NewSet[int](nodes...)
}
