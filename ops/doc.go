// Package ops is the fixed operator library for the MBQC simulator:
// single-qubit gate matrices, the two-qubit controlled-Z entangler, and
// the measurement-operator builder MeasOp.
//
// Matrices are gonum *mat.CDense values in the computational basis
// {|0⟩, |1⟩}; two-qubit operators index their low bit on the first axis
// they are applied to. Constructors return fresh matrices on every call,
// so callers may mutate their copy freely.
//
// MeasOp encodes a measurement of the spin projection along a unit axis
// in one of three planes (XY, YZ, ZX), conjugated by one of the 24 local
// Cliffords from package clifford, as a single-qubit projector:
//
//	P = ½·I + ½·Σ_i (−1)^(choice+ε_i) · n[a_i] · σ_i
//
// where (a_i, ε_i) = clifford.MeasureRow(vop)[i]. The projector is
// generally rank-1 and non-unitary; it is intended strictly for
// single-axis application followed by renormalization and collapse.
package ops
