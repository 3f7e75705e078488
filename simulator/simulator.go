package simulator

import (
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/takuji-hiraoka/graphix/ops"
	"github.com/takuji-hiraoka/graphix/pattern"
	"github.com/takuji-hiraoka/graphix/statevec"
)

// Simulator executes one pattern run. It owns the state vector, the
// node↔axis arena and the run's result store. Single-use: after Run
// (successful or not) a fresh Simulator is required for another run.
type Simulator struct {
	pat     *pattern.Pattern
	opt     options
	sv      *statevec.Vector
	arena   *nodeArena
	results map[int]int
	ran     bool
}

// New validates the pattern (non-empty input and output node sets,
// per-option invariants), applies SortOutput if the pattern has not been
// sorted yet, and returns a ready-to-run Simulator.
//
// Errors: ErrNilPattern, pattern.ErrNoInputNodes, pattern.ErrNoOutputNodes,
// ErrBadOutcome, ErrInputStateDim.
func New(p *pattern.Pattern, opts ...Option) (*Simulator, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.OutputSorted() {
		p.SortOutput()
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	for _, b := range o.outcomes {
		if b != 0 && b != 1 {
			return nil, ErrBadOutcome
		}
	}
	if o.input != nil && o.input.NumQubits() != len(p.InputNodes) {
		return nil, ErrInputStateDim
	}

	return &Simulator{
		pat:     p,
		opt:     o,
		arena:   newNodeArena(),
		results: make(map[int]int),
	}, nil
}

// Run drives the full interpreter loop: initialize the state over the
// input nodes, then stream the command sequence strictly in order.
// The first failing command aborts the run; no partial result is valid
// afterwards.
func (s *Simulator) Run() error {
	if s.ran {
		return ErrAlreadyRun
	}
	s.ran = true

	if err := s.InitializeStatevector(); err != nil {
		return err
	}
	for i, cmd := range s.pat.Seq {
		var err error
		switch c := cmd.(type) {
		case pattern.AddNode:
			err = s.AddNodes([]int{c.Node})
		case pattern.EntangleNodes:
			err = s.EntangleNodes(c.A, c.B)
		case pattern.MeasureNode:
			err = s.Measure(c)
		case pattern.CorrectX, pattern.CorrectZ:
			err = s.CorrectByproduct(cmd)
		default:
			// Unreachable for commands built from package pattern; the
			// sum type is sealed.
			err = ErrUnknownCommand
		}
		if err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	return nil
}

// InitializeStatevector prepares the initial state over the pattern's
// input nodes — |+⟩^⊗n by default, or the WithInputState vector — and
// seeds the arena with the input nodes in their declared order.
func (s *Simulator) InitializeStatevector() error {
	if s.opt.input != nil {
		s.sv = s.opt.input.Clone()
	} else {
		sv, err := statevec.NewPlus(len(s.pat.InputNodes))
		if err != nil {
			return err
		}
		s.sv = sv
	}
	if err := s.arena.appendNodes(s.pat.InputNodes); err != nil {
		return err
	}
	s.opt.logger.Debug("state initialized", "qubits", s.sv.NumQubits())
	return nil
}

// AddNodes introduces fresh |+⟩ qubits on the given nodes, appended to
// the state; the arena assigns them the next tensor axes in order.
// A node that is already live fails with ErrDuplicateNode before any
// state mutation.
func (s *Simulator) AddNodes(nodes []int) error {
	if err := s.arena.appendNodes(nodes); err != nil {
		return err
	}
	fresh, err := statevec.NewPlus(len(nodes))
	if err != nil {
		return err
	}
	s.sv.Expand(fresh)
	s.opt.logger.Debug("nodes added", "nodes", nodes)
	return nil
}

// EntangleNodes applies the controlled-Z entangler to the two named live
// nodes. Symmetric in its arguments.
//
// Errors: ErrSelfEntangle, ErrUnknownNode.
func (s *Simulator) EntangleNodes(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: node %d", ErrSelfEntangle, a)
	}
	axA, err := s.arena.axisOf(a)
	if err != nil {
		return err
	}
	axB, err := s.arena.axisOf(b)
	if err != nil {
		return err
	}
	if err = s.sv.Evolve(ops.CZ(), []int{axA, axB}); err != nil {
		return err
	}
	s.opt.logger.Debug("entangled", "a", a, "b", b)
	return nil
}

// Measure performs the adaptive measurement of a live node and removes
// it from the state.
//
// Order of operations: resolve the node, fold the s/t domains into the
// effective angle, draw the outcome, record it, project, renormalize,
// discard the measured axis, drop the node from the arena. Preconditions
// fail before the result store or the state is touched.
func (s *Simulator) Measure(cmd pattern.MeasureNode) error {
	axis, err := s.arena.axisOf(cmd.Node)
	if err != nil {
		return err
	}
	sSig, err := s.domainSum(cmd.SDomain)
	if err != nil {
		return err
	}
	tSig, err := s.domainSum(cmd.TDomain)
	if err != nil {
		return err
	}
	outcome, err := s.nextOutcome()
	if err != nil {
		return err
	}
	s.results[cmd.Node] = outcome

	// Adaptive angle from the raw domain sums: each recorded 1 in the
	// t-domain shifts by π, the s-domain sum flips the sign via (−1)^s.
	sign := 1.0
	if sSig%2 == 1 {
		sign = -1
	}
	angle := cmd.Angle*math.Pi*sign + math.Pi*float64(tSig)

	proj, err := ops.MeasOp(angle, cmd.VOp, cmd.Plane, outcome)
	if err != nil {
		return err
	}
	if err = s.sv.EvolveSingle(proj, axis); err != nil {
		return err
	}
	if err = s.sv.Normalize(); err != nil {
		return fmt.Errorf("collapse of node %d: %w", cmd.Node, err)
	}
	if err = s.sv.DiscardAxis(axis); err != nil {
		return fmt.Errorf("collapse of node %d: %w", cmd.Node, err)
	}
	if err = s.arena.remove(cmd.Node); err != nil {
		return err
	}
	s.opt.logger.Debug("measured",
		"node", cmd.Node, "plane", cmd.Plane.String(), "angle", angle, "outcome", outcome)
	return nil
}

// CorrectByproduct applies the X or Z byproduct correction carried by
// cmd iff the parity of recorded outcomes over its domain is odd; even
// parity is a no-op. Commands other than CorrectX/CorrectZ return
// ErrUnknownCommand.
func (s *Simulator) CorrectByproduct(cmd pattern.Command) error {
	switch c := cmd.(type) {
	case pattern.CorrectX:
		return s.correct(c.Node, c.Domain, ops.X(), "X")
	case pattern.CorrectZ:
		return s.correct(c.Node, c.Domain, ops.Z(), "Z")
	default:
		return ErrUnknownCommand
	}
}

func (s *Simulator) correct(node int, domain mapset.Set[int], op *mat.CDense, kind string) error {
	sum, err := s.domainSum(domain)
	if err != nil {
		return err
	}
	if sum%2 == 0 {
		s.opt.logger.Debug("byproduct skipped", "kind", kind, "node", node)
		return nil
	}
	axis, err := s.arena.axisOf(node)
	if err != nil {
		return err
	}
	if err = s.sv.EvolveSingle(op, axis); err != nil {
		return err
	}
	s.opt.logger.Debug("byproduct applied", "kind", kind, "node", node)
	return nil
}

// domainSum adds up the recorded outcomes over a feed-forward domain.
// A nil domain counts as empty. A domain node with no recorded outcome
// fails with ErrUnknownDomainNode.
func (s *Simulator) domainSum(domain mapset.Set[int]) (int, error) {
	if domain == nil {
		return 0, nil
	}
	sum, missing := 0, -1
	domain.Each(func(j int) bool {
		r, ok := s.results[j]
		if !ok {
			missing = j
			return true // stop iteration
		}
		sum += r
		return false
	})
	if missing >= 0 {
		return 0, fmt.Errorf("%w: node %d", ErrUnknownDomainNode, missing)
	}
	return sum, nil
}

// nextOutcome draws the next measurement outcome bit: from the scripted
// sequence when WithOutcomes was given, from the RNG otherwise.
func (s *Simulator) nextOutcome() (int, error) {
	if s.opt.scripted {
		if len(s.opt.outcomes) == 0 {
			return 0, ErrOutcomesExhausted
		}
		b := s.opt.outcomes[0]
		s.opt.outcomes = s.opt.outcomes[1:]
		return b, nil
	}
	return s.opt.rng.Intn(2), nil
}

// Results returns a copy of the run's result store (node → outcome bit).
// The simulator owns the store; the pattern's own Results map is never
// written.
func (s *Simulator) Results() map[int]int {
	cp := make(map[int]int, len(s.results))
	for k, v := range s.results {
		cp[k] = v
	}
	return cp
}

// State returns the residual state vector. The pointer is the live
// internal state: read it after Run, or clone before mutating.
func (s *Simulator) State() *statevec.Vector {
	return s.sv
}

// NodeIndex returns a copy of the live nodes in tensor-axis order.
func (s *Simulator) NodeIndex() []int {
	return s.arena.nodes()
}
