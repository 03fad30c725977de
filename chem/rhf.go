package chem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	scfMaxIterations = 128
	scfEnergyTol     = 1e-10
)

// MeanField is a converged restricted Hartree-Fock solution together with
// the electron integrals rotated into the molecular-orbital basis. It is
// the reference the ansatz and the Hamiltonian build both consume.
type MeanField struct {
	// MOEnergies are the orbital energies, ascending.
	MOEnergies []float64
	// MOCoeffs holds the orbital coefficients, one molecular orbital per
	// column.
	MOCoeffs *mat.Dense
	// Energy is the total RHF energy including nuclear repulsion.
	Energy float64
	// NOccupied is the number of doubly occupied spatial orbitals.
	NOccupied int

	// NOrbitals and the MO-basis integrals, laid out like Molecule's.
	NOrbitals int
	OneBodyMO []float64
	TwoBodyMO []float64
}

// OneBodyMOAt returns the MO-basis h[p][q].
func (mf *MeanField) OneBodyMOAt(p, q int) float64 {
	return mf.OneBodyMO[p*mf.NOrbitals+q]
}

// TwoBodyMOAt returns the MO-basis (pq|rs).
func (mf *MeanField) TwoBodyMOAt(p, q, r, s int) float64 {
	n := mf.NOrbitals
	return mf.TwoBodyMO[((p*n+q)*n+r)*n+s]
}

// RunRHF solves the closed-shell Roothaan equations for mol by direct
// Fock-matrix diagonalization in the molecule's orthonormal orbital basis,
// iterating density rebuilds until the electronic energy moves by less than
// 1e-10 Ha.
func RunRHF(mol *Molecule) (*MeanField, error) {
	if err := mol.Validate(); err != nil {
		return nil, err
	}
	if mol.NElectrons%2 != 0 || mol.Spin != 0 {
		return nil, fmt.Errorf("%w: %d electrons, spin %d", ErrOpenShell, mol.NElectrons, mol.Spin)
	}
	n := mol.NOrbitals
	nocc := mol.NElectrons / 2
	if nocc > n {
		return nil, fmt.Errorf("%w: %d electrons exceed %d orbitals", ErrBadIntegrals, mol.NElectrons, n)
	}

	density := mat.NewDense(n, n, nil)
	coeffs := mat.NewDense(n, n, nil)
	energies := make([]float64, n)
	prev := math.Inf(1)
	electronic := 0.0

	converged := false
	for iter := 0; iter < scfMaxIterations; iter++ {
		fock := buildFock(mol, density)

		var es mat.EigenSym
		if ok := es.Factorize(fock, true); !ok {
			return nil, fmt.Errorf("%w: Fock diagonalization failed", ErrSCFNoConvergence)
		}
		es.Values(energies)
		es.VectorsTo(coeffs)

		// D = 2 C_occ C_occᵀ, aufbau over the ascending eigenvalues.
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				d := 0.0
				for i := 0; i < nocc; i++ {
					d += 2 * coeffs.At(p, i) * coeffs.At(q, i)
				}
				density.Set(p, q, d)
			}
		}

		electronic = 0.0
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				electronic += 0.5 * density.At(p, q) * (mol.OneBodyAt(p, q) + fock.At(p, q))
			}
		}
		if math.Abs(electronic-prev) < scfEnergyTol {
			converged = true
			break
		}
		prev = electronic
	}
	if !converged {
		return nil, fmt.Errorf("%w after %d iterations", ErrSCFNoConvergence, scfMaxIterations)
	}

	mf := &MeanField{
		MOEnergies: energies,
		MOCoeffs:   coeffs,
		Energy:     electronic + mol.NuclearRepulsion,
		NOccupied:  nocc,
		NOrbitals:  n,
	}
	mf.OneBodyMO, mf.TwoBodyMO = rotateIntegrals(mol, coeffs)
	return mf, nil
}

// buildFock assembles F = h + G(D) with
// G_pq = Σ_rs D_rs [(pq|rs) − ½(pr|qs)].
func buildFock(mol *Molecule, density *mat.Dense) *mat.SymDense {
	n := mol.NOrbitals
	fock := mat.NewSymDense(n, nil)
	for p := 0; p < n; p++ {
		for q := p; q < n; q++ {
			v := mol.OneBodyAt(p, q)
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					v += density.At(r, s) * (mol.TwoBodyAt(p, q, r, s) - 0.5*mol.TwoBodyAt(p, r, q, s))
				}
			}
			fock.SetSym(p, q, v)
		}
	}
	return fock
}

// rotateIntegrals transforms the molecule's integrals into the MO basis.
func rotateIntegrals(mol *Molecule, coeffs *mat.Dense) ([]float64, []float64) {
	n := mol.NOrbitals

	oneMO := make([]float64, n*n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			v := 0.0
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					v += coeffs.At(a, p) * coeffs.At(b, q) * mol.OneBodyAt(a, b)
				}
			}
			oneMO[p*n+q] = v
		}
	}

	// Four quarter-transforms; each pass contracts the leading index and
	// cycles it to the back, so four passes restore (pq|rs) ordering.
	twoMO := append([]float64(nil), mol.TwoBody...)
	for pass := 0; pass < 4; pass++ {
		next := make([]float64, len(twoMO))
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				for d := 0; d < n; d++ {
					for p := 0; p < n; p++ {
						v := 0.0
						for a := 0; a < n; a++ {
							v += coeffs.At(a, p) * twoMO[((a*n+b)*n+c)*n+d]
						}
						next[((b*n+c)*n+d)*n+p] = v
					}
				}
			}
		}
		twoMO = next
	}
	return oneMO, twoMO
}
