package statevec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/takuji-hiraoka/graphix/statevec"
)

const tol = 1e-12

// invSqrt2 is the |+⟩ amplitude.
var invSqrt2 = 1 / math.Sqrt2

// mustVec builds a Vector from literal amplitudes or fails the test.
func mustVec(t *testing.T, amps ...complex128) *statevec.Vector {
	t.Helper()
	v, err := statevec.FromAmplitudes(amps)
	require.NoError(t, err)
	return v
}

// TestNewPlus_Basic checks dimensions, uniform amplitudes and unit norm.
func TestNewPlus_Basic(t *testing.T) {
	v, err := statevec.NewPlus(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.NumQubits())
	assert.Equal(t, 4, v.Dim())
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0.5, real(v.Amplitude(i)), tol, "amplitude %d", i)
		assert.InDelta(t, 0, imag(v.Amplitude(i)), tol, "amplitude %d imag", i)
	}
	assert.InDelta(t, 1.0, v.Norm2(), tol, "unit norm")
}

// TestNewPlus_ZeroIsVacuum: n=0 must equal the vacuum.
func TestNewPlus_ZeroIsVacuum(t *testing.T) {
	v, err := statevec.NewPlus(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(statevec.NewVacuum(), tol))
}

// TestNewPlus_Negative rejects n < 0.
func TestNewPlus_Negative(t *testing.T) {
	_, err := statevec.NewPlus(-1)
	assert.ErrorIs(t, err, statevec.ErrBadQubitCount)
}

// TestFromAmplitudes_Validation rejects non-power-of-two lengths and
// copies rather than aliases its input.
func TestFromAmplitudes_Validation(t *testing.T) {
	_, err := statevec.FromAmplitudes(nil)
	assert.ErrorIs(t, err, statevec.ErrBadDimension, "empty slice")
	_, err = statevec.FromAmplitudes(make([]complex128, 3))
	assert.ErrorIs(t, err, statevec.ErrBadDimension, "length 3")

	src := []complex128{1, 0}
	v, err := statevec.FromAmplitudes(src)
	require.NoError(t, err)
	src[0] = 42
	assert.Equal(t, complex128(1), v.Amplitude(0), "must copy, not alias")
	assert.Equal(t, 1, v.NumQubits())
}

// TestExpand_FromVacuum: vacuum ⊗ v == v.
func TestExpand_FromVacuum(t *testing.T) {
	v := statevec.NewVacuum()
	plus, err := statevec.NewPlus(1)
	require.NoError(t, err)

	v.Expand(plus)
	assert.True(t, v.Equal(plus, tol), "vacuum expansion must reproduce the operand")
}

// TestExpand_AxisOrder: the receiver's axes stay low, the new axes go high.
// |0⟩ (axis 0) expanded with |1⟩ puts the 1 on axis 1 → basis index 2.
func TestExpand_AxisOrder(t *testing.T) {
	v := mustVec(t, 1, 0)
	w := mustVec(t, 0, 1)
	v.Expand(w)

	require.Equal(t, 2, v.NumQubits())
	assert.InDelta(t, 1, real(v.Amplitude(2)), tol, "|axis1=1, axis0=0⟩ = index 2")
	assert.InDelta(t, 0, real(v.Amplitude(1)), tol, "index 1 must stay empty")
}

// TestEvolveSingle_PauliX flips |0⟩ to |1⟩ on the addressed axis only.
func TestEvolveSingle_PauliX(t *testing.T) {
	x := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})

	// |00⟩, flip axis 1 → |10⟩ (index 2).
	v := mustVec(t, 1, 0, 0, 0)
	require.NoError(t, v.EvolveSingle(x, 1))
	assert.InDelta(t, 1, real(v.Amplitude(2)), tol)
	assert.InDelta(t, 0, real(v.Amplitude(0)), tol)
}

// TestEvolveSingle_Validation covers shape and axis preconditions.
func TestEvolveSingle_Validation(t *testing.T) {
	v := mustVec(t, 1, 0)
	bad := mat.NewCDense(4, 4, nil)
	assert.ErrorIs(t, v.EvolveSingle(bad, 0), statevec.ErrOperatorDim)

	x := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	assert.ErrorIs(t, v.EvolveSingle(x, 1), statevec.ErrAxisRange)
	assert.ErrorIs(t, v.EvolveSingle(x, -1), statevec.ErrAxisRange)
}

// TestEvolve_CZOnPlusPlus applies diag(1,1,1,−1) to |++⟩ and expects the
// textbook graph-state amplitudes (½, ½, ½, −½).
func TestEvolve_CZOnPlusPlus(t *testing.T) {
	v, err := statevec.NewPlus(2)
	require.NoError(t, err)
	cz := mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
	require.NoError(t, v.Evolve(cz, []int{0, 1}))

	want := mustVec(t, 0.5, 0.5, 0.5, -0.5)
	assert.True(t, v.Equal(want, tol))
	assert.InDelta(t, 1, v.Norm2(), tol, "CZ is unitary")
}

// cnotLowControl is a CNOT whose control is the operator's bit 0
// (the first listed axis) and target its bit 1.
var cnotLowControl = mat.NewCDense(4, 4, []complex128{
	1, 0, 0, 0,
	0, 0, 0, 1,
	0, 0, 1, 0,
	0, 1, 0, 0,
})

// TestEvolve_AxisBinding: the operator's bit 0 must bind to axes[0].
// On |axis0=1, axis1=0⟩, CNOT(control=axes[0]) fires only when axes[0]
// names the set axis.
func TestEvolve_AxisBinding(t *testing.T) {
	// axes = [0,1]: control is axis 0 (set) → target axis 1 flips: index 1→3.
	v := mustVec(t, 0, 1, 0, 0)
	require.NoError(t, v.Evolve(cnotLowControl, []int{0, 1}))
	assert.InDelta(t, 1, real(v.Amplitude(3)), tol, "control on axis 0 must fire")

	// axes = [1,0]: control is axis 1 (clear) → state unchanged.
	w := mustVec(t, 0, 1, 0, 0)
	require.NoError(t, w.Evolve(cnotLowControl, []int{1, 0}))
	assert.InDelta(t, 1, real(w.Amplitude(1)), tol, "control on axis 1 must not fire")
}

// TestEvolve_Validation covers the dimension/axis precondition branches.
func TestEvolve_Validation(t *testing.T) {
	v, err := statevec.NewPlus(2)
	require.NoError(t, err)

	assert.ErrorIs(t, v.Evolve(mat.NewCDense(3, 3, nil), []int{0, 1}), statevec.ErrOperatorDim)
	assert.ErrorIs(t, v.Evolve(cnotLowControl, []int{0, 2}), statevec.ErrAxisRange)
	assert.ErrorIs(t, v.Evolve(cnotLowControl, []int{1, 1}), statevec.ErrDuplicateAxis)
}

// TestNormalize_Idempotent: normalizing twice changes nothing measurable.
func TestNormalize_Idempotent(t *testing.T) {
	v := mustVec(t, 3, 0, 4, 0)
	require.NoError(t, v.Normalize())
	assert.InDelta(t, 1, v.Norm2(), tol)

	snapshot := v.Clone()
	require.NoError(t, v.Normalize())
	assert.True(t, v.Equal(snapshot, tol), "second Normalize must be a no-op")
}

// TestNormalize_ZeroNorm surfaces the probability-zero branch.
func TestNormalize_ZeroNorm(t *testing.T) {
	v := mustVec(t, 0, 0)
	assert.ErrorIs(t, v.Normalize(), statevec.ErrZeroNorm)
}

// TestDiscardAxis_KeepsOrder builds |0⟩⊗|1⟩⊗|+⟩ on axes 0,1,2, discards
// axis 1, and expects |0⟩⊗|+⟩ with the survivors in their original order.
func TestDiscardAxis_KeepsOrder(t *testing.T) {
	v := mustVec(t, 1, 0)  // axis 0: |0⟩
	v.Expand(mustVec(t, 0, 1)) // axis 1: |1⟩
	plus, err := statevec.NewPlus(1)
	require.NoError(t, err)
	v.Expand(plus) // axis 2: |+⟩

	require.NoError(t, v.DiscardAxis(1))
	require.Equal(t, 2, v.NumQubits())

	want := mustVec(t, complex(invSqrt2, 0), 0, complex(invSqrt2, 0), 0)
	assert.True(t, v.Equal(want, tol), "survivors must be |0⟩ (axis 0) ⊗ |+⟩ (axis 1)")
	assert.InDelta(t, 1, v.Norm2(), tol, "result must come out normalized")
}

// TestDiscardAxis_Entangled rejects discarding half of a Bell pair.
func TestDiscardAxis_Entangled(t *testing.T) {
	bell := mustVec(t, complex(invSqrt2, 0), 0, 0, complex(invSqrt2, 0))
	assert.ErrorIs(t, bell.DiscardAxis(0), statevec.ErrNotSeparable)
}

// TestDiscardAxis_Range covers axis bounds including the vacuum.
func TestDiscardAxis_Range(t *testing.T) {
	v := mustVec(t, 1, 0)
	assert.ErrorIs(t, v.DiscardAxis(1), statevec.ErrAxisRange)
	assert.ErrorIs(t, v.DiscardAxis(-1), statevec.ErrAxisRange)
	assert.ErrorIs(t, statevec.NewVacuum().DiscardAxis(0), statevec.ErrAxisRange)
}

// TestDiscardAxis_ZeroState rejects an all-zero state.
func TestDiscardAxis_ZeroState(t *testing.T) {
	v := mustVec(t, 0, 0, 0, 0)
	assert.ErrorIs(t, v.DiscardAxis(0), statevec.ErrZeroNorm)
}

// TestEqual_Shapes: different qubit counts are never equal; tolerance is
// honored amplitude-wise.
func TestEqual_Shapes(t *testing.T) {
	a := mustVec(t, 1, 0)
	b := mustVec(t, 1, 0, 0, 0)
	assert.False(t, a.Equal(b, tol), "different shapes")
	assert.False(t, a.Equal(nil, tol), "nil operand")

	c := mustVec(t, complex(1+1e-9, 0), 0)
	assert.False(t, a.Equal(c, 1e-12), "outside tolerance")
	assert.True(t, a.Equal(c, 1e-6), "inside tolerance")
}

// TestClone_Independent verifies deep copies.
func TestClone_Independent(t *testing.T) {
	v := mustVec(t, 1, 0)
	c := v.Clone()
	x := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	require.NoError(t, v.EvolveSingle(x, 0))
	assert.InDelta(t, 1, real(c.Amplitude(0)), tol, "clone must not see mutations")
}
