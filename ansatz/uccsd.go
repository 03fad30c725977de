package ansatz

import (
	"fmt"
	"math"

	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/circuit"
	"github.com/varqus/varqus/mapping"
	"github.com/varqus/varqus/operators"
)

// uccsdDefaultAmplitude seeds every cluster amplitude away from the
// Hartree-Fock stationary point.
const uccsdDefaultAmplitude = 1e-2

// amplitudes below this produce no Trotter block.
const generatorTol = 1e-12

type single struct{ occ, vir int }

type double struct{ occ1, occ2, vir1, vir2 int }

// UCCSD is the unitary coupled-cluster singles-and-doubles ansatz over an
// active space: one variational amplitude per spatial single excitation
// i→a and per spatial double excitation (i,j)→(a,b), shared across spin
// channels.
type UCCSD struct {
	space      *chem.ActiveSpace
	scheme     string
	mf         *chem.MeanField
	upThenDown bool

	singles []single
	doubles []double
	circ    *circuit.Circuit
}

// NewUCCSD enumerates the excitations of the active space and prepares the
// ansatz. The circuit itself is assembled by BuildCircuit.
func NewUCCSD(space *chem.ActiveSpace, scheme string, mf *chem.MeanField, upThenDown bool) (*UCCSD, error) {
	if space.NElectrons%2 != 0 {
		return nil, fmt.Errorf("%w: UCCSD needs a closed shell, %d active electrons", ErrUnsupportedSystem, space.NElectrons)
	}
	n := space.NOrbitals()
	nocc := space.NElectrons / 2
	if nocc == 0 || nocc >= n {
		return nil, fmt.Errorf("%w: UCCSD needs occupied and virtual orbitals, got %d/%d", ErrUnsupportedSystem, nocc, n)
	}

	u := &UCCSD{space: space, scheme: scheme, mf: mf, upThenDown: upThenDown}
	for i := 0; i < nocc; i++ {
		for a := nocc; a < n; a++ {
			u.singles = append(u.singles, single{occ: i, vir: a})
		}
	}
	for i := 0; i < nocc; i++ {
		for j := i; j < nocc; j++ {
			for a := nocc; a < n; a++ {
				for b := a; b < n; b++ {
					u.doubles = append(u.doubles, double{occ1: i, occ2: j, vir1: a, vir2: b})
				}
			}
		}
	}
	return u, nil
}

// ParameterCount reports singles first, doubles after.
func (u *UCCSD) ParameterCount() int { return len(u.singles) + len(u.doubles) }

// DefaultParameters seeds every amplitude with a small constant.
func (u *UCCSD) DefaultParameters() []float64 {
	p := make([]float64, u.ParameterCount())
	for i := range p {
		p[i] = uccsdDefaultAmplitude
	}
	return p
}

// MeanField returns the reference the amplitudes are defined against.
func (u *UCCSD) MeanField() *chem.MeanField { return u.mf }

// Circuit returns the built circuit, nil before BuildCircuit.
func (u *UCCSD) Circuit() *circuit.Circuit { return u.circ }

// UpdateParameters rewrites every Trotter block's rotation in place.
func (u *UCCSD) UpdateParameters(theta []float64) error {
	if u.circ == nil {
		return ErrNotBuilt
	}
	if len(theta) != u.ParameterCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrParamCount, len(theta), u.ParameterCount())
	}
	return u.circ.SetParameters(theta)
}

// BuildCircuit prepares the Hartree-Fock reference and appends one Trotter
// block per Pauli string of each mapped excitation generator.
func (u *UCCSD) BuildCircuit() error {
	if u.circ != nil {
		return nil
	}
	nSpin := u.space.NSpinOrbitals()
	circ := circuit.New(nSpin)

	// Reference determinant: occupied interleaved spin-orbitals, relabeled
	// to match the Hamiltonian's qubit ordering.
	for p := 0; p < u.space.NElectrons; p++ {
		if err := circ.X(mapping.QubitIndex(p, nSpin, u.upThenDown)); err != nil {
			return err
		}
	}

	for k := 0; k < u.ParameterCount(); k++ {
		gen, err := u.generator(k)
		if err != nil {
			return err
		}
		if err := appendEvolution(circ, gen, k); err != nil {
			return err
		}
	}

	u.circ = circ
	return nil
}

// generator maps the anti-Hermitian excitation generator T_k − T_k† of
// parameter k onto qubits.
func (u *UCCSD) generator(k int) (*operators.QubitOperator, error) {
	f := operators.NewFermionOperator()
	if k < len(u.singles) {
		s := u.singles[k]
		for spin := 0; spin < 2; spin++ {
			addExcitation(f,
				[]int{2*s.vir + spin},
				[]int{2*s.occ + spin})
		}
	} else {
		d := u.doubles[k-len(u.singles)]
		for sigma := 0; sigma < 2; sigma++ {
			for tau := 0; tau < 2; tau++ {
				addExcitation(f,
					[]int{2*d.vir1 + sigma, 2*d.vir2 + tau},
					[]int{2*d.occ2 + tau, 2*d.occ1 + sigma})
			}
		}
	}
	return mapping.Transform(f, u.scheme, u.space.NSpinOrbitals(), u.space.NElectrons, u.upThenDown)
}

// addExcitation accumulates a†…a… − its Hermitian conjugate. Excitations
// touching the same spin-orbital twice vanish under the fermionic algebra
// and are skipped up front.
func addExcitation(f *operators.FermionOperator, create, annihilate []int) {
	if hasDuplicate(create) || hasDuplicate(annihilate) {
		return
	}
	term := make(operators.FermionTerm, 0, len(create)+len(annihilate))
	for _, p := range create {
		term = append(term, operators.LadderOp{Orbital: p, Creation: true})
	}
	for _, p := range annihilate {
		term = append(term, operators.LadderOp{Orbital: p})
	}
	f.Add(term, 1)
	f.Add(term.Adjoint(), -1)
}

func hasDuplicate(idx []int) bool {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if idx[i] == idx[j] {
				return true
			}
		}
	}
	return false
}

// appendEvolution adds exp(θ_k·G) to the circuit, one block per Pauli
// string of the anti-Hermitian generator G. Each string carries a purely
// imaginary coefficient i·g; its block implements exp(i·g·θ_k·P) as basis
// pre-rotations, a CNOT parity ladder, RZ(−2g·θ_k) on the last qubit, and
// the mirrored unrotations.
func appendEvolution(circ *circuit.Circuit, gen *operators.QubitOperator, k int) error {
	for _, term := range gen.Terms() {
		if len(term) == 0 {
			continue
		}
		g := imag(gen.Coefficient(term))
		if math.Abs(g) < generatorTol {
			continue
		}

		for _, op := range term {
			switch op.Axis {
			case operators.X:
				if err := circ.H(op.Qubit); err != nil {
					return err
				}
			case operators.Y:
				if err := circ.RX(op.Qubit, math.Pi/2); err != nil {
					return err
				}
			}
		}
		for i := 0; i+1 < len(term); i++ {
			if err := circ.CNOT(term[i].Qubit, term[i+1].Qubit); err != nil {
				return err
			}
		}
		if err := circ.VarRZ(term[len(term)-1].Qubit, k, -2*g); err != nil {
			return err
		}
		for i := len(term) - 2; i >= 0; i-- {
			if err := circ.CNOT(term[i].Qubit, term[i+1].Qubit); err != nil {
				return err
			}
		}
		for _, op := range term {
			switch op.Axis {
			case operators.X:
				if err := circ.H(op.Qubit); err != nil {
					return err
				}
			case operators.Y:
				if err := circ.RX(op.Qubit, -math.Pi/2); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
