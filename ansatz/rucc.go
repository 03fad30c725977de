package ansatz

import (
	"fmt"
	"math"

	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/circuit"
)

// ruccQubits is the fixed register width the reduced ansatz is defined on.
const ruccQubits = 4

// RUCC is the reduced unitary coupled-cluster ansatz for a two-electron,
// two-orbital system on four qubits with spin-up channels first. UCC1
// carries the single double-excitation amplitude; UCC3 adds one single
// excitation per spin channel.
type RUCC struct {
	nParams int
	circ    *circuit.Circuit
}

// NewRUCC builds the reduced ansatz with n amplitudes, n ∈ {1, 3}.
func NewRUCC(n int) (*RUCC, error) {
	if n != 1 && n != 3 {
		return nil, fmt.Errorf("%w: reduced UCC has 1 or 3 parameters, got %d", ErrUnsupportedSystem, n)
	}
	return &RUCC{nParams: n}, nil
}

// ParameterCount reports the amplitude count fixed at construction.
func (r *RUCC) ParameterCount() int { return r.nParams }

// DefaultParameters starts every amplitude at zero, the Hartree-Fock point.
func (r *RUCC) DefaultParameters() []float64 { return make([]float64, r.nParams) }

// MeanField returns nil: the reduced ansatz carries no reference solution.
func (r *RUCC) MeanField() *chem.MeanField { return nil }

// Circuit returns the built circuit, nil before BuildCircuit.
func (r *RUCC) Circuit() *circuit.Circuit { return r.circ }

// UpdateParameters rewrites the excitation rotations in place.
func (r *RUCC) UpdateParameters(theta []float64) error {
	if r.circ == nil {
		return ErrNotBuilt
	}
	if len(theta) != r.nParams {
		return fmt.Errorf("%w: got %d, want %d", ErrParamCount, len(theta), r.nParams)
	}
	return r.circ.SetParameters(theta)
}

// BuildCircuit prepares |1010⟩ and appends the excitation blocks. With
// three parameters the two single excitations precede the double; the
// double amplitude is always the last parameter.
func (r *RUCC) BuildCircuit() error {
	if r.circ != nil {
		return nil
	}
	circ := circuit.New(ruccQubits)
	if err := circ.X(0); err != nil {
		return err
	}
	if err := circ.X(2); err != nil {
		return err
	}

	param := 0
	if r.nParams == 3 {
		if err := ruccSingle(circ, 0, 1, param); err != nil {
			return err
		}
		param++
		if err := ruccSingle(circ, 2, 3, param); err != nil {
			return err
		}
		param++
	}
	if err := ruccDouble(circ, param); err != nil {
		return err
	}

	r.circ = circ
	return nil
}

// ruccSingle appends exp(-iθ/2·Y_a X_b): RX/H pre-rotations, an entangling
// CNOT, the variational RZ, and the mirrored unrotations.
func ruccSingle(circ *circuit.Circuit, a, b, param int) error {
	if err := circ.RX(a, math.Pi/2); err != nil {
		return err
	}
	if err := circ.H(b); err != nil {
		return err
	}
	if err := circ.CNOT(a, b); err != nil {
		return err
	}
	if err := circ.VarRZ(b, param, 1); err != nil {
		return err
	}
	if err := circ.CNOT(a, b); err != nil {
		return err
	}
	if err := circ.H(b); err != nil {
		return err
	}
	return circ.RX(a, -math.Pi/2)
}

// ruccDouble appends exp(-iθ/2·Y₀X₁X₂X₃) across the full register.
func ruccDouble(circ *circuit.Circuit, param int) error {
	if err := circ.RX(0, math.Pi/2); err != nil {
		return err
	}
	for q := 1; q < ruccQubits; q++ {
		if err := circ.H(q); err != nil {
			return err
		}
	}
	for q := 0; q+1 < ruccQubits; q++ {
		if err := circ.CNOT(q, q+1); err != nil {
			return err
		}
	}
	if err := circ.VarRZ(ruccQubits-1, param, 1); err != nil {
		return err
	}
	for q := ruccQubits - 2; q >= 0; q-- {
		if err := circ.CNOT(q, q+1); err != nil {
			return err
		}
	}
	for q := 1; q < ruccQubits; q++ {
		if err := circ.H(q); err != nil {
			return err
		}
	}
	return circ.RX(0, -math.Pi/2)
}
