package statevec

import "errors"

// Sentinel errors for state-vector algebra.
var (
	// ErrBadQubitCount indicates a negative qubit count.
	ErrBadQubitCount = errors.New("statevec: qubit count must be non-negative")

	// ErrBadDimension indicates an amplitude slice whose length is not a
	// positive power of two.
	ErrBadDimension = errors.New("statevec: amplitude count must be a positive power of two")

	// ErrAxisRange indicates a tensor-axis index outside [0, NumQubits).
	ErrAxisRange = errors.New("statevec: tensor axis out of range")

	// ErrDuplicateAxis indicates the same axis listed twice in one operation.
	ErrDuplicateAxis = errors.New("statevec: duplicate tensor axis")

	// ErrOperatorDim indicates an operator whose shape is not 2^q×2^q for
	// the q axes it is applied to.
	ErrOperatorDim = errors.New("statevec: operator dimension does not match axis count")

	// ErrZeroNorm indicates an attempt to normalize a (numerically) zero
	// vector, e.g. after projecting onto an outcome of probability zero.
	ErrZeroNorm = errors.New("statevec: state has zero norm")

	// ErrNotSeparable indicates a DiscardAxis call on an axis still
	// entangled with the rest of the state.
	ErrNotSeparable = errors.New("statevec: axis is not separable from the remaining state")
)

// normEps is the squared-norm floor below which a state counts as zero,
// and the tolerance for the DiscardAxis separability check.
const normEps = 1e-12

// Vector is a pure state over NumQubits qubits. The zero value is not
// usable; construct via NewVacuum, NewPlus or FromAmplitudes.
type Vector struct {
	amps []complex128
	n    int
}
