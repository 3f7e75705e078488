package pattern

import (
	"errors"
	"sort"
)

// Sentinel errors for pattern validation.
var (
	// ErrNoInputNodes indicates a pattern with an empty input-node set.
	ErrNoInputNodes = errors.New("pattern: input nodes must be non-empty")

	// ErrNoOutputNodes indicates a pattern with an empty output-node set.
	ErrNoOutputNodes = errors.New("pattern: output nodes must be non-empty")
)

// Pattern is a complete MBQC computation: command sequence plus declared
// input/output node sets.
//
// Results may be used by callers to stash measurement outcomes alongside
// the pattern; the simulator keeps its own result store for a run and
// never writes here (see simulator.Results).
type Pattern struct {
	// InputNodes are the nodes carrying the input state, in tensor-axis
	// order at initialization. Must be non-empty.
	InputNodes []int

	// OutputNodes are the nodes that survive the run unmeasured.
	// Must be non-empty.
	OutputNodes []int

	// Seq is the ordered command sequence.
	Seq []Command

	// Results maps node → outcome bit for callers that record outcomes
	// on the pattern itself. Never touched by the simulator.
	Results map[int]int

	outputSorted bool
}

// New constructs a Pattern with the given input and output nodes
// (slices are copied) and an empty command sequence.
func New(inputs, outputs []int) *Pattern {
	p := &Pattern{
		InputNodes:  make([]int, len(inputs)),
		OutputNodes: make([]int, len(outputs)),
		Results:     make(map[int]int),
	}
	copy(p.InputNodes, inputs)
	copy(p.OutputNodes, outputs)
	return p
}

// Add appends commands to the sequence and returns the pattern for
// chaining.
func (p *Pattern) Add(cmds ...Command) *Pattern {
	p.Seq = append(p.Seq, cmds...)
	return p
}

// SortOutput puts OutputNodes into ascending order so runs over the same
// pattern enumerate output axes deterministically. Idempotent.
//
// Complexity: O(m log m) on first call, O(1) afterwards.
func (p *Pattern) SortOutput() {
	if p.outputSorted {
		return
	}
	sort.Ints(p.OutputNodes)
	p.outputSorted = true
}

// OutputSorted reports whether SortOutput has been applied.
func (p *Pattern) OutputSorted() bool {
	return p.outputSorted
}

// Validate checks the structural preconditions the simulator relies on:
// non-empty input and output node sets.
func (p *Pattern) Validate() error {
	if len(p.InputNodes) == 0 {
		return ErrNoInputNodes
	}
	if len(p.OutputNodes) == 0 {
		return ErrNoOutputNodes
	}
	return nil
}
