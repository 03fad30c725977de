package chem

import (
	"fmt"
	"math"

	"github.com/varqus/varqus/operators"
)

// coefficient magnitudes below this are not worth a Hamiltonian term.
const termTol = 1e-12

// ActiveSpace is the frozen-orbital reduction of a mean field: the integral
// set over the remaining (active) orbitals, with the frozen-core
// interaction folded into a constant shift and a dressed one-body part.
type ActiveSpace struct {
	// Orbitals lists the active spatial orbitals as indices into the full
	// MO set, ascending.
	Orbitals []int
	// NElectrons is the active electron count after removing frozen pairs.
	NElectrons int
	// CoreConstant is the energy of the frozen core, excluding nuclear
	// repulsion.
	CoreConstant float64
	// OneBody and TwoBody are the dressed integrals over active orbitals,
	// laid out like Molecule's.
	OneBody []float64
	TwoBody []float64
}

// NOrbitals reports the active spatial orbital count.
func (a *ActiveSpace) NOrbitals() int { return len(a.Orbitals) }

// NSpinOrbitals reports the active spin-orbital (qubit register) size.
func (a *ActiveSpace) NSpinOrbitals() int { return 2 * len(a.Orbitals) }

// BuildActiveSpace folds the frozen orbitals of mf into a core constant and
// dressed one-body integrals, returning the active-space integral set.
// Frozen orbitals below the occupation level surrender their electron pair
// to the core; frozen virtuals are simply dropped. An empty frozen list
// returns the full space unchanged (zero core constant).
func BuildActiveSpace(mf *MeanField, nElectrons int, frozen []int) (*ActiveSpace, error) {
	n := mf.NOrbitals
	seen := make(map[int]bool, len(frozen))
	var frozenOcc []int
	for _, f := range frozen {
		if f < 0 || f >= n {
			return nil, fmt.Errorf("%w: orbital %d outside [0,%d)", ErrFrozenOrbital, f, n)
		}
		if seen[f] {
			return nil, fmt.Errorf("%w: orbital %d listed twice", ErrFrozenOrbital, f)
		}
		seen[f] = true
		if f < mf.NOccupied {
			frozenOcc = append(frozenOcc, f)
		}
	}

	active := make([]int, 0, n-len(frozen))
	for p := 0; p < n; p++ {
		if !seen[p] {
			active = append(active, p)
		}
	}
	nActElectrons := nElectrons - 2*len(frozenOcc)
	if nActElectrons <= 0 || len(active) == 0 {
		return nil, fmt.Errorf("%w: %d active electrons in %d active orbitals", ErrFrozenOrbital, nActElectrons, len(active))
	}

	core := 0.0
	for _, f := range frozenOcc {
		core += 2 * mf.OneBodyMOAt(f, f)
		for _, g := range frozenOcc {
			core += 2*mf.TwoBodyMOAt(f, f, g, g) - mf.TwoBodyMOAt(f, g, f, g)
		}
	}

	na := len(active)
	one := make([]float64, na*na)
	for i, p := range active {
		for j, q := range active {
			v := mf.OneBodyMOAt(p, q)
			for _, f := range frozenOcc {
				v += 2*mf.TwoBodyMOAt(p, q, f, f) - mf.TwoBodyMOAt(p, f, f, q)
			}
			one[i*na+j] = v
		}
	}

	two := make([]float64, na*na*na*na)
	for i, p := range active {
		for j, q := range active {
			for k, r := range active {
				for l, s := range active {
					two[((i*na+j)*na+k)*na+l] = mf.TwoBodyMOAt(p, q, r, s)
				}
			}
		}
	}

	return &ActiveSpace{
		Orbitals:     active,
		NElectrons:   nActElectrons,
		CoreConstant: core,
		OneBody:      one,
		TwoBody:      two,
	}, nil
}

// BuildHamiltonian assembles the second-quantized molecular Hamiltonian of
// mol over the active space:
//
//	H = E_nuc + E_core + Σ h'_pq a†_pσ a_qσ + ½ Σ (ps|qr) a†_pσ a†_qτ a_rτ a_sσ
//
// with interleaved spin-orbital labels. The returned active space carries
// the electron and register counts the qubit mapping needs.
func BuildHamiltonian(mol *Molecule, mf *MeanField, frozen []int) (*operators.FermionOperator, *ActiveSpace, error) {
	space, err := BuildActiveSpace(mf, mol.NElectrons, frozen)
	if err != nil {
		return nil, nil, err
	}

	n := space.NOrbitals()
	h := operators.NewFermionOperator()
	h.Add(operators.FermionTerm{}, complex(mol.NuclearRepulsion+space.CoreConstant, 0))

	oneAt := func(p, q int) float64 { return space.OneBody[p*n+q] }
	twoAt := func(p, q, r, s int) float64 { return space.TwoBody[((p*n+q)*n+r)*n+s] }

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			v := oneAt(p, q)
			if math.Abs(v) < termTol {
				continue
			}
			for spin := 0; spin < 2; spin++ {
				h.Add(operators.FermionTerm{
					{Orbital: 2*p + spin, Creation: true},
					{Orbital: 2*q + spin},
				}, complex(v, 0))
			}
		}
	}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					v := 0.5 * twoAt(p, s, q, r)
					if math.Abs(v) < termTol {
						continue
					}
					for sigma := 0; sigma < 2; sigma++ {
						for tau := 0; tau < 2; tau++ {
							c, a1, a2, d := 2*p+sigma, 2*q+tau, 2*r+tau, 2*s+sigma
							if c == a1 || a2 == d {
								continue
							}
							h.Add(operators.FermionTerm{
								{Orbital: c, Creation: true},
								{Orbital: a1, Creation: true},
								{Orbital: a2},
								{Orbital: d},
							}, complex(v, 0))
						}
					}
				}
			}
		}
	}

	return h, space, nil
}
