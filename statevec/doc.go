// Package statevec implements the mutable complex state vector the MBQC
// simulator computes on: tensor-product growth, operator application
// restricted to chosen tensor axes, normalization, and single-axis
// discard after a measurement collapse.
//
// 🚀 Representation
//
//	A Vector over k qubits stores 2^k complex128 amplitudes. Tensor axis i
//	corresponds to bit i of the amplitude index (axis 0 is the least
//	significant bit). Expand appends new axes at the high end, so existing
//	axes never move when qubits are added — they only shift down when an
//	axis is discarded.
//
// Operators are consumed as gonum mat.CMatrix values; a 2^q×2^q operator
// applied to q axes indexes its own bit 0 on the first listed axis.
//
// The package knows nothing about nodes, commands or outcomes — that
// bookkeeping lives in package simulator. Everything here is plain
// axis-level algebra.
//
// Complexity: all kernels are a single pass over the 2^k amplitudes,
// O(2^k) time (times 4^q for a q-axis operator), O(2^k) space.
package statevec
