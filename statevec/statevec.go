package statevec

import (
	"math"
	"math/bits"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// NewVacuum returns the 1-dimensional vacuum state: zero qubits, single
// amplitude 1. Expanding it with any state yields that state unchanged.
func NewVacuum() *Vector {
	return &Vector{amps: []complex128{1}, n: 0}
}

// NewPlus returns the normalized uniform superposition |+⟩^⊗n over n fresh
// qubits. n == 0 yields the vacuum. Returns ErrBadQubitCount for n < 0.
//
// Complexity: O(2^n).
func NewPlus(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrBadQubitCount
	}
	dim := 1 << n
	amp := complex(1/math.Sqrt(float64(dim)), 0)
	amps := make([]complex128, dim)
	for i := range amps {
		amps[i] = amp
	}
	return &Vector{amps: amps, n: n}, nil
}

// FromAmplitudes builds a Vector from an explicit amplitude slice
// (copied, not aliased). The length must be a positive power of two;
// no normalization is applied.
func FromAmplitudes(amps []complex128) (*Vector, error) {
	d := len(amps)
	if d == 0 || d&(d-1) != 0 {
		return nil, ErrBadDimension
	}
	cp := make([]complex128, d)
	copy(cp, amps)
	return &Vector{amps: cp, n: bits.Len(uint(d)) - 1}, nil
}

// NumQubits returns the number of live tensor axes.
func (v *Vector) NumQubits() int { return v.n }

// Dim returns the amplitude count, 2^NumQubits.
func (v *Vector) Dim() int { return len(v.amps) }

// Amplitude returns the i-th basis amplitude (axis b = bit b of i).
// Out-of-range indices return 0.
func (v *Vector) Amplitude(i int) complex128 {
	if i < 0 || i >= len(v.amps) {
		return 0
	}
	return v.amps[i]
}

// Amplitudes returns a copy of the amplitude slice.
func (v *Vector) Amplitudes() []complex128 {
	cp := make([]complex128, len(v.amps))
	copy(cp, v.amps)
	return cp
}

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{amps: v.Amplitudes(), n: v.n}
}

// Norm2 returns the squared norm Σ|a_i|².
//
// Complexity: O(2^k).
func (v *Vector) Norm2() float64 {
	var s float64
	for _, a := range v.amps {
		s += real(a)*real(a) + imag(a)*imag(a)
	}
	return s
}

// Normalize rescales the state to unit norm. Idempotent within
// floating-point tolerance. Returns ErrZeroNorm when the squared norm is
// numerically zero (probability-0 measurement branch).
//
// Complexity: O(2^k).
func (v *Vector) Normalize() error {
	nrm := v.Norm2()
	if nrm < normEps {
		return ErrZeroNorm
	}
	scale := complex(1/math.Sqrt(nrm), 0)
	for i := range v.amps {
		v.amps[i] *= scale
	}
	return nil
}

// Expand composes other onto the receiver by tensor product. The
// receiver's axes keep their positions; other's axes are appended at the
// high end. Expanding the vacuum yields a copy of other's amplitudes.
//
// Complexity: O(2^(k+m)).
func (v *Vector) Expand(other *Vector) {
	out := make([]complex128, len(v.amps)*len(other.amps))
	for j, b := range other.amps {
		base := j << v.n
		for i, a := range v.amps {
			out[base|i] = a * b
		}
	}
	v.amps = out
	v.n += other.n
}

// EvolveSingle applies a 2×2 operator to one axis, leaving all other axes
// untouched. Returns ErrOperatorDim for a non-2×2 operator and
// ErrAxisRange for an invalid axis.
//
// Complexity: O(2^k).
func (v *Vector) EvolveSingle(op mat.CMatrix, axis int) error {
	r, c := op.Dims()
	if r != 2 || c != 2 {
		return ErrOperatorDim
	}
	if axis < 0 || axis >= v.n {
		return ErrAxisRange
	}
	m00, m01 := op.At(0, 0), op.At(0, 1)
	m10, m11 := op.At(1, 0), op.At(1, 1)
	bit := 1 << axis
	for i := range v.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := v.amps[i], v.amps[j]
		v.amps[i] = m00*a0 + m01*a1
		v.amps[j] = m10*a0 + m11*a1
	}
	return nil
}

// Evolve applies a 2^q×2^q operator restricted to the q listed axes.
// The operator's own bit b indexes axes[b]. Axes must be distinct and in
// range; the operator shape must match len(axes).
//
// Complexity: O(4^q · 2^k) worst case; q is 1 or 2 in this module.
func (v *Vector) Evolve(op mat.CMatrix, axes []int) error {
	q := len(axes)
	r, c := op.Dims()
	if r != c || r != 1<<q {
		return ErrOperatorDim
	}
	var mask int
	for _, a := range axes {
		if a < 0 || a >= v.n {
			return ErrAxisRange
		}
		if mask&(1<<a) != 0 {
			return ErrDuplicateAxis
		}
		mask |= 1 << a
	}
	if q == 1 {
		return v.EvolveSingle(op, axes[0])
	}

	sub := 1 << q
	out := make([]complex128, len(v.amps))
	for base := range v.amps {
		if base&mask != 0 {
			continue
		}
		for so := 0; so < sub; so++ {
			io := base | scatter(so, axes)
			var acc complex128
			for si := 0; si < sub; si++ {
				acc += op.At(so, si) * v.amps[base|scatter(si, axes)]
			}
			out[io] = acc
		}
	}
	v.amps = out
	return nil
}

// scatter spreads the bits of sub onto the listed axes: bit b of sub
// lands on bit axes[b] of the result.
func scatter(sub int, axes []int) int {
	var idx int
	for b, a := range axes {
		if sub&(1<<b) != 0 {
			idx |= 1 << a
		}
	}
	return idx
}

// DiscardAxis removes exactly one axis from a state in which that axis is
// in a product with the rest (the situation after a rank-1 projection).
// All other axes keep their relative order; axes above the discarded one
// shift down by one position.
//
// The retained part is returned normalized. Errors:
//   - ErrAxisRange     — axis outside [0, NumQubits), or no axes left.
//   - ErrNotSeparable  — the axis is still entangled with the rest.
//   - ErrZeroNorm      — the state is numerically zero.
//
// Complexity: O(2^k).
func (v *Vector) DiscardAxis(axis int) error {
	if v.n == 0 || axis < 0 || axis >= v.n {
		return ErrAxisRange
	}
	bit := 1 << axis
	low := bit - 1
	half := len(v.amps) >> 1

	// Slice the state by the value of the discarded axis.
	s0 := make([]complex128, half)
	s1 := make([]complex128, half)
	for r := 0; r < half; r++ {
		i0 := ((r &^ low) << 1) | (r & low)
		s0[r] = v.amps[i0]
		s1[r] = v.amps[i0|bit]
	}

	var n0, n1 float64
	var inner complex128
	for r := 0; r < half; r++ {
		n0 += real(s0[r])*real(s0[r]) + imag(s0[r])*imag(s0[r])
		n1 += real(s1[r])*real(s1[r]) + imag(s1[r])*imag(s1[r])
		inner += cmplx.Conj(s0[r]) * s1[r]
	}

	// ψ = χ⊗φ iff the two slices are linearly dependent; by Cauchy–Schwarz
	// n0·n1 − |⟨s0,s1⟩|² is non-negative and zero exactly at dependence.
	if n0 > normEps && n1 > normEps {
		ip := real(inner)*real(inner) + imag(inner)*imag(inner)
		if n0*n1-ip > normEps {
			return ErrNotSeparable
		}
	}

	keep, nk := s0, n0
	if n1 > n0 {
		keep, nk = s1, n1
	}
	if nk < normEps {
		return ErrZeroNorm
	}
	scale := complex(1/math.Sqrt(nk), 0)
	for r := range keep {
		keep[r] *= scale
	}
	v.amps = keep
	v.n--
	return nil
}

// Equal reports amplitude-wise equality with other within tol.
// Vectors of different qubit counts are never equal.
func (v *Vector) Equal(other *Vector, tol float64) bool {
	if other == nil || v.n != other.n {
		return false
	}
	for i := range v.amps {
		if cmplx.Abs(v.amps[i]-other.amps[i]) > tol {
			return false
		}
	}
	return true
}
