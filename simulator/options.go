package simulator

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/takuji-hiraoka/graphix/statevec"
)

// Option mutates the simulator configuration. Options are applied in
// order at New time; later options win.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	rng      *rand.Rand
	outcomes []int
	scripted bool
	logger   *log.Logger
	input    *statevec.Vector
}

// defaultOptions: fresh deterministic RNG (seed==0 policy), no scripted
// outcomes, discarded logging, |+⟩^⊗n input preparation.
func defaultOptions() options {
	return options{
		rng:    rngFromSeed(0),
		logger: log.New(io.Discard),
	}
}

// WithSeed derives the outcome RNG from a fixed seed. Two simulators
// built with the same seed over the same pattern produce identical
// outcome streams. seed==0 selects the package's fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rngFromSeed(seed) }
}

// WithRand supplies the outcome RNG directly. A nil r restores the
// default deterministic stream.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.rng = rngFromSeed(0)
			return
		}
		o.rng = r
	}
}

// WithOutcomes scripts the measurement outcomes: the i-th measurement
// command consumes bits[i] instead of sampling. Exhausting the script
// fails the run with ErrOutcomesExhausted; bits outside {0,1} fail New
// with ErrBadOutcome.
func WithOutcomes(bits ...int) Option {
	return func(o *options) {
		o.outcomes = make([]int, len(bits))
		copy(o.outcomes, bits)
		o.scripted = true
	}
}

// WithLogger enables per-command debug tracing on the given logger.
// A nil logger restores the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.logger = log.New(io.Discard)
			return
		}
		o.logger = l
	}
}

// WithInputState replaces the default |+⟩^⊗n input preparation with a
// caller-supplied state over the pattern's input nodes (cloned at New
// time). The state's qubit count must equal the number of input nodes,
// checked at New with ErrInputStateDim.
func WithInputState(v *statevec.Vector) Option {
	return func(o *options) { o.input = v }
}
