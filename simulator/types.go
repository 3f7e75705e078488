package simulator

import "errors"

// Sentinel errors for pattern execution.
var (
	// ErrNilPattern indicates New was given a nil pattern.
	ErrNilPattern = errors.New("simulator: pattern must be non-nil")

	// ErrUnknownNode indicates a command referenced a node that is not
	// live in the state (never added, or already measured out).
	ErrUnknownNode = errors.New("simulator: node is not live in the state")

	// ErrDuplicateNode indicates an AddNode for a node that is already live.
	ErrDuplicateNode = errors.New("simulator: node is already live in the state")

	// ErrSelfEntangle indicates an entangling command naming one node twice.
	ErrSelfEntangle = errors.New("simulator: cannot entangle a node with itself")

	// ErrUnknownDomainNode indicates a measurement or correction domain
	// referencing a node with no recorded outcome.
	ErrUnknownDomainNode = errors.New("simulator: domain references a node with no recorded outcome")

	// ErrUnknownCommand is the dispatch default for a command outside the
	// sealed sum type; unreachable for commands built from package pattern.
	ErrUnknownCommand = errors.New("simulator: unrecognized command")

	// ErrOutcomesExhausted indicates a scripted outcome sequence shorter
	// than the number of measurement commands.
	ErrOutcomesExhausted = errors.New("simulator: scripted outcome sequence exhausted")

	// ErrBadOutcome indicates a scripted outcome other than 0 or 1.
	ErrBadOutcome = errors.New("simulator: scripted outcomes must be 0 or 1")

	// ErrInputStateDim indicates a caller-supplied initial state whose
	// qubit count does not match the pattern's input nodes.
	ErrInputStateDim = errors.New("simulator: input state dimension does not match input nodes")

	// ErrAlreadyRun indicates a second Run on a consumed simulator.
	ErrAlreadyRun = errors.New("simulator: simulator instance already consumed")
)
