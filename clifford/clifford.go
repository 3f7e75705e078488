package clifford

import "errors"

// Count is the number of recognized single-qubit local Cliffords.
const Count = 24

// ErrBadIndex indicates a local-Clifford index outside [0, Count).
var ErrBadIndex = errors.New("clifford: local-Clifford index out of range")

// Axis labels the three Pauli axes.
type Axis int

// Pauli axis indices, in σ_X, σ_Y, σ_Z order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Entry is one signed axis mapping: the source axis goes to
// (−1)^Parity · σ_Axis. Parity is 0 or 1.
type Entry struct {
	Axis   Axis
	Parity int
}

// element couples a Clifford's conjugation action with the derived
// measurement row and a human-readable generator decomposition.
//
//   - action[j]  : C σ_j C† = (−1)^action[j].Parity · σ_action[j].Axis
//   - measure[i] : coefficient of σ_i in C (n·σ) C† is
//     (−1)^measure[i].Parity · n[measure[i].Axis]
//
// measure is action inverted axis-wise; both are kept literal so each row
// is independently checkable.
type element struct {
	name    string
	action  [3]Entry
	measure [3]Entry
}

// table enumerates the 24 elements. Generated offline by composing the
// signed-permutation actions of the generators I, X, Y, Z, H, S, S†;
// ordering is breadth-first over shortest generator words, identity first.
var table = [Count]element{
	{"I", [3]Entry{{0, 0}, {1, 0}, {2, 0}}, [3]Entry{{0, 0}, {1, 0}, {2, 0}}},       // 0
	{"X", [3]Entry{{0, 0}, {1, 1}, {2, 1}}, [3]Entry{{0, 0}, {1, 1}, {2, 1}}},       // 1
	{"Y", [3]Entry{{0, 1}, {1, 0}, {2, 1}}, [3]Entry{{0, 1}, {1, 0}, {2, 1}}},       // 2
	{"Z", [3]Entry{{0, 1}, {1, 1}, {2, 0}}, [3]Entry{{0, 1}, {1, 1}, {2, 0}}},       // 3
	{"H", [3]Entry{{2, 0}, {1, 1}, {0, 0}}, [3]Entry{{2, 0}, {1, 1}, {0, 0}}},       // 4
	{"S", [3]Entry{{1, 0}, {0, 1}, {2, 0}}, [3]Entry{{1, 1}, {0, 0}, {2, 0}}},       // 5
	{"S†", [3]Entry{{1, 1}, {0, 0}, {2, 0}}, [3]Entry{{1, 0}, {0, 1}, {2, 0}}},      // 6
	{"HX", [3]Entry{{2, 0}, {1, 0}, {0, 1}}, [3]Entry{{2, 1}, {1, 0}, {0, 0}}},      // 7
	{"SX", [3]Entry{{1, 0}, {0, 0}, {2, 1}}, [3]Entry{{1, 0}, {0, 0}, {2, 1}}},      // 8
	{"S†X", [3]Entry{{1, 1}, {0, 1}, {2, 1}}, [3]Entry{{1, 1}, {0, 1}, {2, 1}}},     // 9
	{"HY", [3]Entry{{2, 1}, {1, 1}, {0, 1}}, [3]Entry{{2, 1}, {1, 1}, {0, 1}}},      // 10
	{"HZ", [3]Entry{{2, 1}, {1, 0}, {0, 0}}, [3]Entry{{2, 0}, {1, 0}, {0, 1}}},      // 11
	{"SH", [3]Entry{{2, 0}, {0, 0}, {1, 0}}, [3]Entry{{1, 0}, {2, 0}, {0, 0}}},      // 12
	{"S†H", [3]Entry{{2, 0}, {0, 1}, {1, 1}}, [3]Entry{{1, 1}, {2, 1}, {0, 0}}},     // 13
	{"HS", [3]Entry{{1, 1}, {2, 1}, {0, 0}}, [3]Entry{{2, 0}, {0, 1}, {1, 1}}},      // 14
	{"HS†", [3]Entry{{1, 0}, {2, 0}, {0, 0}}, [3]Entry{{2, 0}, {0, 0}, {1, 0}}},     // 15
	{"HSX", [3]Entry{{1, 1}, {2, 0}, {0, 1}}, [3]Entry{{2, 1}, {0, 1}, {1, 0}}},     // 16
	{"HS†X", [3]Entry{{1, 0}, {2, 1}, {0, 1}}, [3]Entry{{2, 1}, {0, 0}, {1, 1}}},    // 17
	{"SHY", [3]Entry{{2, 1}, {0, 0}, {1, 1}}, [3]Entry{{1, 0}, {2, 1}, {0, 1}}},     // 18
	{"S†HY", [3]Entry{{2, 1}, {0, 1}, {1, 0}}, [3]Entry{{1, 1}, {2, 0}, {0, 1}}},    // 19
	{"HSH", [3]Entry{{0, 0}, {2, 0}, {1, 1}}, [3]Entry{{0, 0}, {2, 1}, {1, 0}}},     // 20
	{"HS†H", [3]Entry{{0, 0}, {2, 1}, {1, 0}}, [3]Entry{{0, 0}, {2, 0}, {1, 1}}},    // 21
	{"S†HS", [3]Entry{{0, 1}, {2, 1}, {1, 1}}, [3]Entry{{0, 1}, {2, 1}, {1, 1}}},    // 22
	{"SHS†", [3]Entry{{0, 1}, {2, 0}, {1, 0}}, [3]Entry{{0, 1}, {2, 0}, {1, 0}}},    // 23
}

// Valid reports whether vop names a recognized local Clifford.
//
// Complexity: O(1).
func Valid(vop int) bool {
	return vop >= 0 && vop < Count
}

// Name returns the generator decomposition of the vop-th Clifford
// (e.g. "I", "H", "HS†"). Returns ErrBadIndex for an out-of-range vop.
//
// Complexity: O(1).
func Name(vop int) (string, error) {
	if !Valid(vop) {
		return "", ErrBadIndex
	}
	return table[vop].name, nil
}

// Action returns the conjugation action of the vop-th Clifford:
// for each Pauli axis j, C σ_j C† = (−1)^Parity · σ_Axis.
//
// Complexity: O(1).
func Action(vop int) ([3]Entry, error) {
	if !Valid(vop) {
		return [3]Entry{}, ErrBadIndex
	}
	return table[vop].action, nil
}

// MeasureRow returns the row consumed by the measurement-operator builder:
// for each Pauli axis i, which component of the measurement-axis vector
// multiplies σ_i and with which sign parity.
//
// Complexity: O(1).
func MeasureRow(vop int) ([3]Entry, error) {
	if !Valid(vop) {
		return [3]Entry{}, ErrBadIndex
	}
	return table[vop].measure, nil
}
