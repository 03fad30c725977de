package vqe

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/varqus/varqus/ansatz"
	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/mapping"
	"github.com/varqus/varqus/simulator"
)

var (
	// ErrNoMolecule indicates Options carried no molecule.
	ErrNoMolecule = errors.New("vqe: molecule is required")

	// ErrUnknownAnsatz indicates an ansatz kind outside the built-in set.
	ErrUnknownAnsatz = errors.New("vqe: unknown ansatz kind")

	// ErrAnsatzConflict indicates both a built-in kind and a custom ansatz
	// were supplied.
	ErrAnsatzConflict = errors.New("vqe: built-in ansatz kind conflicts with custom ansatz")

	// ErrAnsatzMapping indicates a reduced UCC ansatz was requested under a
	// mapping scheme other than Jordan-Wigner.
	ErrAnsatzMapping = errors.New("vqe: reduced UCC requires the jw mapping")

	// ErrAnsatzOrdering indicates a reduced UCC ansatz was requested with
	// interleaved spin ordering.
	ErrAnsatzOrdering = errors.New("vqe: reduced UCC requires up-then-down spin ordering")

	// ErrAnsatzActiveSpace indicates a reduced UCC ansatz was requested on
	// an active space that does not map to exactly four qubits.
	ErrAnsatzActiveSpace = errors.New("vqe: reduced UCC requires a four-qubit active space")

	// ErrParamCount indicates initial parameters whose length does not
	// match the ansatz's parameter count.
	ErrParamCount = errors.New("vqe: initial parameter count mismatch")

	// ErrNotBuilt indicates an operation that requires a completed Build.
	ErrNotBuilt = errors.New("vqe: solver not built, call Build first")
)

// AnsatzKind names a built-in ansatz.
type AnsatzKind string

const (
	// AnsatzUCCSD is the unitary coupled-cluster singles-and-doubles
	// ansatz over the full active space.
	AnsatzUCCSD AnsatzKind = "uccsd"

	// AnsatzUCC1 is the one-parameter reduced UCC ansatz for a four-qubit
	// HOMO-LUMO active space.
	AnsatzUCC1 AnsatzKind = "ucc1"

	// AnsatzUCC3 is the three-parameter reduced UCC ansatz for a
	// four-qubit HOMO-LUMO active space.
	AnsatzUCC3 AnsatzKind = "ucc3"
)

// Options configures a Solver. Molecule is required; every other field has
// a working default.
type Options struct {
	// Molecule is the system to solve. Required.
	Molecule *chem.Molecule

	// MeanField is a precomputed reference solution. When nil, Build runs
	// restricted Hartree-Fock on the molecule.
	MeanField *chem.MeanField

	// FrozenOrbitals lists spatial orbitals excluded from the active
	// space. Empty means all orbitals are active.
	FrozenOrbitals []int

	// QubitMapping selects the fermion-to-qubit encoding scheme.
	QubitMapping string

	// Ansatz selects a built-in ansatz. Must be left empty when
	// CustomAnsatz is set.
	Ansatz AnsatzKind

	// CustomAnsatz supplies a caller-built ansatz in place of the
	// built-in kinds.
	CustomAnsatz ansatz.Ansatz

	// Optimizer is the classical minimization strategy. Nil selects the
	// default quasi-Newton routine.
	Optimizer Optimizer

	// InitialParams overrides the ansatz's default starting parameters.
	// Length must match the ansatz's parameter count.
	InitialParams []float64

	// Backend configures the simulation backend.
	Backend simulator.Options

	// UpThenDown selects blocked spin ordering: all spin-up orbitals
	// first, then all spin-down. False keeps interleaved ordering.
	UpThenDown bool

	// Verbose enables per-evaluation progress logging.
	Verbose bool

	// Logger overrides the logger used for progress output. Nil selects
	// a development logger when Verbose is set, a no-op logger otherwise.
	Logger *zap.Logger
}

// DefaultOptions returns the baseline configuration: Jordan-Wigner mapping,
// UCCSD ansatz, exact statevector backend, interleaved spin ordering.
// Molecule must still be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		QubitMapping: mapping.SchemeJW,
		Ansatz:       AnsatzUCCSD,
		Backend:      simulator.DefaultOptions(),
	}
}

// normalize fills zero-valued fields with their defaults and canonicalizes
// the scheme string, so later comparisons are case-stable.
func (o *Options) normalize() {
	o.QubitMapping = strings.ToLower(o.QubitMapping)
	if o.QubitMapping == "" {
		o.QubitMapping = mapping.SchemeJW
	}
	if o.Ansatz == "" && o.CustomAnsatz == nil {
		o.Ansatz = AnsatzUCCSD
	}
	if o.Optimizer == nil {
		o.Optimizer = DefaultOptimizer()
	}
	if o.Logger == nil {
		if o.Verbose {
			o.Logger = zap.Must(zap.NewDevelopment())
		} else {
			o.Logger = zap.NewNop()
		}
	}
}

// validate rejects configurations that can never build.
func (o *Options) validate() error {
	if o.Molecule == nil {
		return ErrNoMolecule
	}
	if o.CustomAnsatz != nil && o.Ansatz != "" {
		return ErrAnsatzConflict
	}
	if o.CustomAnsatz == nil {
		switch o.Ansatz {
		case AnsatzUCCSD, AnsatzUCC1, AnsatzUCC3:
		default:
			return ErrUnknownAnsatz
		}
	}
	return nil
}
