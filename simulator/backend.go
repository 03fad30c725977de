package simulator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/varqus/varqus/circuit"
	"github.com/varqus/varqus/operators"
)

// TargetStatevector is the exact amplitude-vector simulation target.
const TargetStatevector = "statevector"

// hermitianTol bounds the imaginary residue tolerated when contracting a
// nominally Hermitian operator.
const hermitianTol = 1e-7

var (
	// ErrUnknownTarget indicates the requested backend target name is not
	// registered.
	ErrUnknownTarget = errors.New("simulator: unknown backend target")

	// ErrBadShots indicates a negative shot count.
	ErrBadShots = errors.New("simulator: shot count must be non-negative")

	// ErrNoiseNeedsShots indicates a noise model was configured for exact
	// (shot-free) simulation, where it has no meaning.
	ErrNoiseNeedsShots = errors.New("simulator: noise model requires a shot count")

	// ErrBadNoise indicates a depolarizing probability outside [0, 1].
	ErrBadNoise = errors.New("simulator: depolarizing probability must lie in [0,1]")

	// ErrUnknownGate indicates a circuit gate the kernel cannot execute.
	ErrUnknownGate = errors.New("simulator: unknown gate")

	// ErrRegisterMismatch indicates an operator term references a qubit
	// outside the circuit register.
	ErrRegisterMismatch = errors.New("simulator: operator term outside circuit register")

	// ErrNotHermitian indicates the contracted operator left an imaginary
	// residue beyond tolerance.
	ErrNotHermitian = errors.New("simulator: expectation value has imaginary residue")
)

// NoiseModel configures stochastic errors for sampling-mode simulation.
type NoiseModel struct {
	// Depolarizing is the probability, per executed gate, of injecting a
	// uniformly random X, Y or Z on the gate's target qubit.
	Depolarizing float64
}

// Options selects and configures a backend.
type Options struct {
	// Target names the simulation backend. Empty selects TargetStatevector.
	Target string
	// Shots is the per-term measurement count; zero means exact
	// expectation values.
	Shots int
	// Noise, when non-nil, enables the noise model (sampling mode only).
	Noise *NoiseModel
	// Seed fixes the sampling RNG; zero seeds from the wall clock.
	Seed int64
}

// DefaultOptions returns the exact statevector configuration.
func DefaultOptions() Options {
	return Options{Target: TargetStatevector}
}

// Backend executes circuits and contracts qubit operators against the
// resulting state.
type Backend struct {
	target string
	shots  int
	noise  *NoiseModel
	rng    *rand.Rand
}

// New validates opts and constructs the backend.
func New(opts Options) (*Backend, error) {
	target := strings.ToLower(opts.Target)
	if target == "" {
		target = TargetStatevector
	}
	if target != TargetStatevector {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, opts.Target)
	}
	if opts.Shots < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadShots, opts.Shots)
	}
	if opts.Noise != nil {
		if opts.Shots == 0 {
			return nil, ErrNoiseNeedsShots
		}
		if opts.Noise.Depolarizing < 0 || opts.Noise.Depolarizing > 1 {
			return nil, fmt.Errorf("%w: %v", ErrBadNoise, opts.Noise.Depolarizing)
		}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Backend{
		target: target,
		shots:  opts.Shots,
		noise:  opts.Noise,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Target reports the backend's target name.
func (b *Backend) Target() string { return b.target }

// Shots reports the configured per-term measurement count.
func (b *Backend) Shots() int { return b.shots }

// ExpectationValue runs c from |0…0⟩ and returns ⟨ψ|op|ψ⟩.
func (b *Backend) ExpectationValue(op *operators.QubitOperator, c *circuit.Circuit) (float64, error) {
	if span := op.CountQubits(); span > c.Width() {
		return 0, fmt.Errorf("%w: operator spans %d qubits, circuit width %d", ErrRegisterMismatch, span, c.Width())
	}

	st := newState(c.Width())
	for _, g := range c.Gates() {
		if err := st.applyGate(g); err != nil {
			return 0, err
		}
		if b.noise != nil && b.rng.Float64() < b.noise.Depolarizing {
			switch b.rng.Intn(3) {
			case 0:
				st.x(g.Target)
			case 1:
				st.y(g.Target)
			default:
				st.z(g.Target)
			}
		}
	}

	total, residue := 0.0, 0.0
	for _, term := range op.Terms() {
		coeff := op.Coefficient(term)
		var ev float64
		switch {
		case len(term) == 0:
			ev = 1
		case b.shots == 0:
			ev = st.expectation(term)
		default:
			ev = st.sample(term, b.shots, b.rng)
		}
		total += real(coeff) * ev
		residue += imag(coeff) * ev
	}
	if math.Abs(residue) > hermitianTol {
		return 0, fmt.Errorf("%w: %g", ErrNotHermitian, residue)
	}
	return total, nil
}
