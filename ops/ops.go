package ops

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/takuji-hiraoka/graphix/clifford"
)

// Identity returns the 2×2 identity.
func Identity() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, 1,
	})
}

// X returns the Pauli-X (bit flip) matrix.
func X() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
}

// Y returns the Pauli-Y matrix.
func Y() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		0, -1i,
		1i, 0,
	})
}

// Z returns the Pauli-Z (phase flip) matrix.
func Z() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, -1,
	})
}

// H returns the Hadamard matrix.
func H() *mat.CDense {
	h := complex(1/math.Sqrt2, 0)
	return mat.NewCDense(2, 2, []complex128{
		h, h,
		h, -h,
	})
}

// S returns the phase gate diag(1, i).
func S() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		1, 0,
		0, 1i,
	})
}

// Pauli returns the Pauli matrix for the given axis.
// Unrecognized axes fall back to the identity; axis values come from
// package clifford, which only produces AxisX..AxisZ.
func Pauli(a clifford.Axis) *mat.CDense {
	switch a {
	case clifford.AxisX:
		return X()
	case clifford.AxisY:
		return Y()
	case clifford.AxisZ:
		return Z()
	default:
		return Identity()
	}
}

// CZ returns the 4×4 controlled-Z entangler diag(1, 1, 1, −1).
// CZ is symmetric in its two qubits, so axis ordering does not matter.
func CZ() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
}
