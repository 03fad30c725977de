package vqe

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/varqus/varqus/ansatz"
	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/mapping"
	"github.com/varqus/varqus/operators"
	"github.com/varqus/varqus/simulator"
)

// Solver runs the hybrid classical-quantum loop for one molecular system.
// It is built once, then evaluated any number of times; it must not be
// shared across goroutines.
type Solver struct {
	opts   Options
	logger *zap.Logger

	mf       *chem.MeanField
	space    *chem.ActiveSpace
	fermionH *operators.FermionOperator
	qubitH   *operators.QubitOperator
	ansatz   ansatz.Ansatz
	backend  *simulator.Backend
	params   []float64

	built bool
	evals int

	optimalEnergy float64
	optimalParams []float64
}

// NewSolver validates opts and returns an unbuilt solver. Configuration
// errors surface here; collaborator work is deferred to Build.
func NewSolver(opts Options) (*Solver, error) {
	opts.normalize()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Solver{opts: opts, logger: opts.Logger}, nil
}

// Build assembles the pipeline: mean field, fermionic and qubit
// Hamiltonians, ansatz circuit, and backend. It is idempotent; a failed
// Build leaves the solver unbuilt with no partial state.
func (s *Solver) Build() error {
	if s.built {
		return nil
	}

	mf := s.opts.MeanField
	if mf == nil {
		var err error
		mf, err = chem.RunRHF(s.opts.Molecule)
		if err != nil {
			return err
		}
	}

	fermionH, space, err := chem.BuildHamiltonian(s.opts.Molecule, mf, s.opts.FrozenOrbitals)
	if err != nil {
		return err
	}
	anz, err := s.resolveAnsatz(space, mf)
	if err != nil {
		return err
	}
	qubitH, err := mapping.Transform(fermionH, s.opts.QubitMapping, space.NSpinOrbitals(), space.NElectrons, s.opts.UpThenDown)
	if err != nil {
		return err
	}

	params := anz.DefaultParameters()
	if s.opts.InitialParams != nil {
		if len(s.opts.InitialParams) != anz.ParameterCount() {
			return fmt.Errorf("%w: got %d, ansatz wants %d", ErrParamCount, len(s.opts.InitialParams), anz.ParameterCount())
		}
		params = append([]float64(nil), s.opts.InitialParams...)
	}
	if err := anz.BuildCircuit(); err != nil {
		return err
	}

	backend, err := simulator.New(s.opts.Backend)
	if err != nil {
		return err
	}

	s.mf = mf
	s.space = space
	s.fermionH = fermionH
	s.qubitH = qubitH
	s.ansatz = anz
	s.backend = backend
	s.params = params
	s.built = true

	s.logger.Info("solver built",
		zap.String("molecule", s.opts.Molecule.Name),
		zap.Int("qubits", space.NSpinOrbitals()),
		zap.Int("hamiltonian_terms", qubitH.Len()),
		zap.Int("parameters", len(params)))
	return nil
}

// resolveAnsatz turns the configured kind or custom object into a concrete
// ansatz, enforcing the reduced-UCC preconditions.
func (s *Solver) resolveAnsatz(space *chem.ActiveSpace, mf *chem.MeanField) (ansatz.Ansatz, error) {
	if s.opts.CustomAnsatz != nil {
		return s.opts.CustomAnsatz, nil
	}
	switch s.opts.Ansatz {
	case AnsatzUCCSD:
		return ansatz.NewUCCSD(space, s.opts.QubitMapping, mf, s.opts.UpThenDown)
	case AnsatzUCC1, AnsatzUCC3:
		if s.opts.QubitMapping != mapping.SchemeJW {
			return nil, fmt.Errorf("%w: ansatz %s, mapping %q", ErrAnsatzMapping, s.opts.Ansatz, s.opts.QubitMapping)
		}
		if !s.opts.UpThenDown {
			return nil, fmt.Errorf("%w: ansatz %s", ErrAnsatzOrdering, s.opts.Ansatz)
		}
		if n := space.NSpinOrbitals(); n != 4 {
			return nil, fmt.Errorf("%w: ansatz %s, %d qubits", ErrAnsatzActiveSpace, s.opts.Ansatz, n)
		}
		if s.opts.Ansatz == AnsatzUCC1 {
			return ansatz.NewRUCC(1)
		}
		return ansatz.NewRUCC(3)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnsatz, s.opts.Ansatz)
	}
}

// EnergyEstimation writes theta into the ansatz circuit and returns the
// backend's expectation value of the active Hamiltonian. The parameter
// write is an intentional side effect: the backend always evaluates the
// circuit's current state.
func (s *Solver) EnergyEstimation(theta []float64) (float64, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	if err := s.ansatz.UpdateParameters(theta); err != nil {
		return 0, err
	}
	energy, err := s.backend.ExpectationValue(s.qubitH, s.ansatz.Circuit())
	if err != nil {
		return 0, err
	}
	s.evals++
	if s.opts.Verbose {
		s.logger.Info("energy evaluation",
			zap.String("energy", fmt.Sprintf("%.7f", energy)),
			zap.Int("evaluation", s.evals))
	}
	return energy, nil
}

// Simulate runs the classical optimizer from the configured initial
// parameters and returns the minimized energy. The optimal energy and
// parameters are recorded on the solver, overwritten on each call.
func (s *Solver) Simulate() (float64, error) {
	if !s.built {
		return 0, ErrNotBuilt
	}
	initial := append([]float64(nil), s.params...)
	result, err := s.opts.Optimizer.Minimize(s.EnergyEstimation, initial)
	if err != nil {
		return 0, err
	}
	s.optimalEnergy = result.Energy
	s.optimalParams = result.Params
	if s.opts.Verbose {
		s.logger.Info("optimization finished",
			zap.String("energy", fmt.Sprintf("%.7f", result.Energy)),
			zap.Int("function_evaluations", result.Evaluations))
	}
	return result.Energy, nil
}

// OptimalEnergy reports the best energy found by the last Simulate call.
func (s *Solver) OptimalEnergy() float64 { return s.optimalEnergy }

// OptimalParams reports the parameters of the last Simulate call. The
// slice is a copy.
func (s *Solver) OptimalParams() []float64 {
	return append([]float64(nil), s.optimalParams...)
}
