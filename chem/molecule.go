package chem

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIntegrals indicates integral arrays inconsistent with the
	// declared orbital count.
	ErrBadIntegrals = errors.New("chem: integral dimensions do not match orbital count")

	// ErrOpenShell indicates an odd electron count, which the restricted
	// mean-field procedure cannot treat.
	ErrOpenShell = errors.New("chem: restricted Hartree-Fock requires an even electron count")

	// ErrSCFNoConvergence indicates the self-consistent field loop hit its
	// iteration cap before the energy settled.
	ErrSCFNoConvergence = errors.New("chem: SCF did not converge")

	// ErrFrozenOrbital indicates an invalid frozen-orbital specification:
	// out of range, duplicated, or freezing every electron away.
	ErrFrozenOrbital = errors.New("chem: invalid frozen orbital list")
)

// Atom is one nucleus of a molecular geometry, coordinates in Ångström.
type Atom struct {
	Symbol  string
	X, Y, Z float64
}

// Molecule describes a molecular system in a real orthonormal orbital
// basis: geometry and charge bookkeeping plus the electron integrals the
// Hamiltonian build consumes. Instances are read-only once constructed; the
// solver never mutates a molecule it is handed.
type Molecule struct {
	Name     string
	Geometry []Atom
	Charge   int
	// Spin is 2S, zero for closed-shell singlets.
	Spin int

	NElectrons int
	// NOrbitals is the spatial orbital count; the qubit register size is
	// twice this.
	NOrbitals int

	NuclearRepulsion float64
	// OneBody holds h[p][q], row-major, NOrbitals² entries.
	OneBody []float64
	// TwoBody holds (pq|rs) in chemist notation, NOrbitals⁴ entries,
	// index ((p·n+q)·n+r)·n+s.
	TwoBody []float64
}

// NSpinOrbitals reports the spin-orbital (qubit register) size.
func (m *Molecule) NSpinOrbitals() int { return 2 * m.NOrbitals }

// OneBodyAt returns h[p][q].
func (m *Molecule) OneBodyAt(p, q int) float64 {
	return m.OneBody[p*m.NOrbitals+q]
}

// TwoBodyAt returns (pq|rs).
func (m *Molecule) TwoBodyAt(p, q, r, s int) float64 {
	n := m.NOrbitals
	return m.TwoBody[((p*n+q)*n+r)*n+s]
}

// Validate checks the integral arrays against the declared orbital count.
func (m *Molecule) Validate() error {
	n := m.NOrbitals
	if n <= 0 {
		return fmt.Errorf("%w: NOrbitals=%d", ErrBadIntegrals, n)
	}
	if len(m.OneBody) != n*n {
		return fmt.Errorf("%w: one-body has %d entries, want %d", ErrBadIntegrals, len(m.OneBody), n*n)
	}
	if len(m.TwoBody) != n*n*n*n {
		return fmt.Errorf("%w: two-body has %d entries, want %d", ErrBadIntegrals, len(m.TwoBody), n*n*n*n)
	}
	return nil
}
