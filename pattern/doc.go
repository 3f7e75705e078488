// Package pattern models an MBQC measurement pattern: the declared input
// and output nodes, the ordered command sequence, and the per-node
// measurement result store.
//
// 🚀 Command model
//
//	Commands form a closed sum type over the five one-way-model command
//	kinds — AddNode (N), EntangleNodes (E), MeasureNode (M), CorrectX (X)
//	and CorrectZ (Z). The Command interface carries an unexported marker
//	method, so no foreign type can satisfy it: the simulator's dispatch is
//	exhaustive by construction.
//
// Nodes are opaque integers naming a logical qubit across its lifetime,
// independent of its transient position in the simulator's tensor state.
// Measurement angles are expressed in units of π (an Angle of 0.5 means
// π/2 radians), matching the usual pattern notation.
//
// Measurement and correction domains — the sets of earlier nodes whose
// recorded outcomes feed forward into an adaptive angle or a parity
// decision — are golang-set Set[int] values; signals derived from them
// are order-independent sums, so set semantics are exact.
//
// Pattern construction, compilation and optimization (graph-state
// generation, standardization, signal shifting) are deliberately outside
// this package: it defines only the surface the simulator consumes.
package pattern
