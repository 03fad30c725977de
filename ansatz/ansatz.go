package ansatz

import (
	"errors"

	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/circuit"
)

var (
	// ErrParamCount indicates a parameter vector whose length does not
	// match the ansatz's declared parameter count.
	ErrParamCount = errors.New("ansatz: parameter count mismatch")

	// ErrNotBuilt indicates a parameter update before BuildCircuit.
	ErrNotBuilt = errors.New("ansatz: circuit not built")

	// ErrUnsupportedSystem indicates the ansatz cannot be constructed for
	// the given active space (open shell, no virtual orbitals, wrong
	// register size).
	ErrUnsupportedSystem = errors.New("ansatz: unsupported system for this ansatz")
)

// Ansatz is the capability set a parametrized circuit generator exposes to
// the solver: default parameters, a one-time circuit build, in-place
// parameter updates, access to the circuit, and the underlying mean-field
// reference (nil when the ansatz carries none).
type Ansatz interface {
	// ParameterCount reports the fixed variational parameter count.
	ParameterCount() int
	// DefaultParameters returns a fresh copy of the ansatz's default
	// initial parameters.
	DefaultParameters() []float64
	// BuildCircuit constructs the circuit structure. The first call
	// builds; subsequent calls are no-ops.
	BuildCircuit() error
	// UpdateParameters rewrites the circuit's variational angles in place.
	UpdateParameters(theta []float64) error
	// Circuit returns the built circuit, nil before BuildCircuit.
	Circuit() *circuit.Circuit
	// MeanField returns the mean-field reference the ansatz was built
	// from, nil when it has none.
	MeanField() *chem.MeanField
}
