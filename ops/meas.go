package ops

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/takuji-hiraoka/graphix/clifford"
)

// Sentinel errors for measurement-operator construction.
var (
	// ErrBadVOp indicates a local-Clifford index outside [0, clifford.Count).
	ErrBadVOp = errors.New("ops: local-Clifford index out of range")

	// ErrBadChoice indicates a measurement outcome choice other than 0 or 1.
	ErrBadChoice = errors.New("ops: measurement choice must be 0 or 1")

	// ErrBadPlane indicates an unrecognized measurement plane.
	ErrBadPlane = errors.New("ops: unrecognized measurement plane")
)

// Plane selects the great-circle plane a measurement angle is defined on.
type Plane int

// Supported measurement planes.
const (
	// PlaneXY: axis (cos θ, sin θ, 0).
	PlaneXY Plane = iota

	// PlaneYZ: axis (0, cos θ, sin θ).
	PlaneYZ

	// PlaneZX: axis (sin θ, 0, sin θ) — see the note on MeasOp.
	PlaneZX
)

// Valid reports whether p is a supported plane.
func (p Plane) Valid() bool {
	return p == PlaneXY || p == PlaneYZ || p == PlaneZX
}

// String returns "XY", "YZ" or "ZX".
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneZX:
		return "ZX"
	default:
		return "?"
	}
}

// MeasOp builds the single-qubit projection operator for a measurement at
// the given angle (radians) in the given plane, conjugated by the vop-th
// local Clifford, selecting the (−1)^choice eigenvalue branch.
//
// Contracts:
//   - vop ∈ [0, 24)          → ErrBadVOp otherwise
//   - choice ∈ {0, 1}        → ErrBadChoice otherwise
//   - plane ∈ {XY, YZ, ZX}   → ErrBadPlane otherwise
//
// Note: the ZX-plane axis vector is (sin θ, 0, sin θ), with sin in both
// nonzero slots unlike the cos/sin pairs of XY and YZ. This mirrors the
// reference system verbatim; whether (sin θ, 0, cos θ) was intended cannot
// be settled here. TestMeasOp_ZXAxisAsymmetry documents the behavior.
//
// Complexity: O(1) — a fixed 2×2 accumulation.
func MeasOp(angle float64, vop int, plane Plane, choice int) (*mat.CDense, error) {
	if !clifford.Valid(vop) {
		return nil, ErrBadVOp
	}
	if choice != 0 && choice != 1 {
		return nil, ErrBadChoice
	}

	var vec [3]float64
	switch plane {
	case PlaneXY:
		vec = [3]float64{math.Cos(angle), math.Sin(angle), 0}
	case PlaneYZ:
		vec = [3]float64{0, math.Cos(angle), math.Sin(angle)}
	case PlaneZX:
		vec = [3]float64{math.Sin(angle), 0, math.Sin(angle)}
	default:
		return nil, ErrBadPlane
	}

	row, err := clifford.MeasureRow(vop)
	if err != nil {
		return nil, ErrBadVOp
	}

	// op = ½·I, then accumulate the three signed Pauli components.
	op := mat.NewCDense(2, 2, []complex128{
		0.5, 0,
		0, 0.5,
	})
	for i, e := range row {
		coeff := vec[e.Axis] / 2
		if (choice+e.Parity)%2 == 1 {
			coeff = -coeff
		}
		sigma := Pauli(clifford.Axis(i))
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				op.Set(r, c, op.At(r, c)+complex(coeff, 0)*sigma.At(r, c))
			}
		}
	}
	return op, nil
}
