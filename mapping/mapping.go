package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/varqus/varqus/operators"
)

// SchemeJW is the Jordan-Wigner encoding identifier.
const SchemeJW = "jw"

var (
	// ErrUnknownScheme indicates the requested encoding scheme name is not
	// registered.
	ErrUnknownScheme = errors.New("mapping: unknown qubit mapping scheme")

	// ErrOddSpinOrbitals indicates an up-then-down relabeling was requested
	// for an odd spin-orbital count, which has no spin-blocked form.
	ErrOddSpinOrbitals = errors.New("mapping: up-then-down ordering requires an even spin-orbital count")

	// ErrOrbitalRange indicates a ladder operator references a spin-orbital
	// outside [0, nSpinOrbitals).
	ErrOrbitalRange = errors.New("mapping: ladder operator orbital out of range")
)

// Transform maps a fermionic operator onto qubits under the named scheme.
// nSpinOrbitals fixes the register size, nElectrons is part of the mapping
// contract (occupation-dependent schemes need it; Jordan-Wigner does not),
// and upThenDown selects spin-blocked instead of interleaved qubit labels.
// The result is compressed with the default tolerance before return.
func Transform(op *operators.FermionOperator, scheme string, nSpinOrbitals, nElectrons int, upThenDown bool) (*operators.QubitOperator, error) {
	if upThenDown && nSpinOrbitals%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSpinOrbitals, nSpinOrbitals)
	}
	_ = nElectrons

	switch strings.ToLower(scheme) {
	case SchemeJW:
		return jordanWigner(op, nSpinOrbitals, upThenDown)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// QubitIndex maps an interleaved spin-orbital label onto its qubit under
// the chosen spin ordering. With upThenDown false this is the identity;
// otherwise spin-up orbitals occupy qubits [0, n/2) and spin-down orbitals
// [n/2, n). Ansatz reference-state preparation uses the same relabeling the
// Hamiltonian mapping does.
func QubitIndex(p, nSpinOrbitals int, upThenDown bool) int {
	if !upThenDown {
		return p
	}
	return p/2 + (p%2)*(nSpinOrbitals/2)
}

// relabel applies the spin-ordering convention to an interleaved
// spin-orbital index.
func relabel(p, nSpinOrbitals int, upThenDown bool) int {
	return QubitIndex(p, nSpinOrbitals, upThenDown)
}
