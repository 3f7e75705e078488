// Package graphix simulates measurement-based quantum computation (MBQC):
// it executes a measurement pattern — an ordered command sequence of qubit
// preparations, entangling operations, adaptive measurements and Pauli
// byproduct corrections — against an explicit state-vector backend.
//
// 🚀 What is graphix?
//
//	A small, deterministic-by-request simulation library that brings together:
//		• Pattern model: input/output nodes + a closed command sum type (N/E/M/X/Z)
//		• State vectors: tensor products, restricted-axis evolution, collapse
//		• Operator library: Pauli/Hadamard/phase gates, CZ, measurement projectors
//		• Local Cliffords: the fixed 24-element conjugation table for measurements
//		• Interpreter: feed-forward of measurement outcomes into later commands
//
// ✨ Why choose graphix?
//
//   - Faithful semantics – adaptive angles and byproduct parity exactly as in
//     the one-way model (Raussendorf–Briegel)
//   - Reproducible – seedable RNG or fully scripted measurement outcomes
//   - Strict failures – sentinel errors, no partial results after a bad command
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	clifford/  — the 24 single-qubit local-Clifford conjugation actions
//	ops/       — fixed gate matrices + the measurement-operator builder
//	statevec/  — mutable 2^k complex state vector and its axis algebra
//	pattern/   — the Pattern object and its command sum type
//	simulator/ — the pattern interpreter: node↔axis arena, run loop, results
//
// Quick ASCII example — a one-qubit teleportation step:
//
//	0───1        N(1); E(0,1); M(0, XY, 0); X(1, {0})
//
//	measures node 0 and leaves the logical qubit on node 1, X-corrected
//	when the measurement outcome was 1.
//
// Dive into simulator/example_test.go for runnable end-to-end patterns.
//
//	go get github.com/takuji-hiraoka/graphix/simulator
package graphix
