// Package simulator executes an MBQC pattern against a state-vector
// backend: it owns the growing/shrinking tensor state, the node↔axis
// arena, the per-run measurement result store, and the command
// interpreter with outcome feed-forward.
//
// 🚀 Execution model
//
//	s, err := simulator.New(p, simulator.WithSeed(7))
//	if err != nil { ... }
//	if err = s.Run(); err != nil { ... }
//	outcomes := s.Results()   // node → measured bit
//	final := s.State()        // residual state over s.NodeIndex()
//
// Run initializes |+⟩^⊗n over the pattern's input nodes, then streams the
// command sequence strictly in order. Each measurement samples an outcome
// bit (random, seeded, or fully scripted via WithOutcomes), records it,
// folds earlier outcomes into the adaptive angle, projects, renormalizes
// and discards the measured axis. Byproduct corrections consult outcome
// parity over their domain.
//
// Node identity vs. axis position:
//
//	Nodes are resolved to tensor axes through a bidirectional arena
//	(dense axis slice + node→axis map) that is updated atomically on add
//	and remove. Axis positions shift when a qubit is measured out, so no
//	component ever caches a position — resolution is always by identity.
//
// Failure model: the first malformed command (dangling node reference,
// unmeasured domain node, zero-probability branch) aborts the run with a
// sentinel error and no partial-result salvage; a Simulator is single-use.
//
// Concurrency: execution is strictly sequential. Commands feed forward
// through the result store and mutate the arena destructively, so a
// Simulator must not be shared across goroutines.
package simulator
