// Package clifford holds the fixed table of the 24 single-qubit local
// Clifford operations, recorded by their conjugation action on the Pauli
// axes rather than by matrix.
//
// 🚀 Why a table?
//
//	Up to global phase, a single-qubit Clifford C is fully described by the
//	signed axis permutation C·σ_j·C† = (−1)^ε · σ_p(j). Measurement-operator
//	construction only ever needs that action, so the group is stored as a
//	24-row constant — no matrix algebra at runtime.
//
// Indexing:
//
//	Index 0 is the identity. Indices 1–6 are X, Y, Z, H, S, S†. The remaining
//	rows are products of those generators, ordered by shortest decomposition
//	(see the per-row comments in clifford.go). Name reports the decomposition.
//
// The package is consumed by ops.MeasOp, which folds MeasureRow into the
// projector for an adaptively rotated measurement basis.
package clifford
