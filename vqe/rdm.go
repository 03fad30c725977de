package vqe

import (
	"gonum.org/v1/gonum/mat"

	"github.com/varqus/varqus/mapping"
	"github.com/varqus/varqus/operators"
)

// RDM2 is the two-particle reduced density matrix, a rank-4 tensor over
// spatial orbitals stored flat.
type RDM2 struct {
	n    int
	data []float64
}

func newRDM2(n int) *RDM2 {
	return &RDM2{n: n, data: make([]float64, n*n*n*n)}
}

// N reports the spatial orbital count of each index.
func (t *RDM2) N() int { return t.n }

// At reads element (p,q,r,s).
func (t *RDM2) At(p, q, r, s int) float64 {
	return t.data[t.index(p, q, r, s)]
}

func (t *RDM2) add(p, q, r, s int, v float64) {
	t.data[t.index(p, q, r, s)] += v
}

func (t *RDM2) index(p, q, r, s int) int {
	return ((p*t.n+q)*t.n+r)*t.n + s
}

// GetRDM computes the one- and two-particle reduced density matrices at
// the given parameters by probing the state with each Hamiltonian term in
// isolation. Each fermionic term is re-mapped with unit coefficient, its
// expectation value measured, and the result accumulated at the term's
// spatial-orbital indices. Structurally identical probes share one backend
// evaluation through a canonical-key cache.
//
// The solver's active Hamiltonian is swapped out per probe and restored on
// every exit path; the solver is not reentrant during this call.
func (s *Solver) GetRDM(theta []float64) (*mat.Dense, *RDM2, error) {
	if !s.built {
		return nil, nil, ErrNotBuilt
	}

	n := s.space.NOrbitals()
	rdm1 := mat.NewDense(n, n, nil)
	rdm2 := newRDM2(n)

	active := s.qubitH
	defer func() { s.qubitH = active }()

	cache := make(map[string]float64)
	for _, term := range s.fermionH.Terms() {
		if len(term) == 0 {
			continue
		}

		// The isolated term alone maps to a non-Hermitian qubit operator;
		// averaging it with its adjoint measures its real part and lets
		// conjugate term pairs share one cache entry.
		isolated := s.fermionH.Isolate(term)
		isolated.Add(term.Adjoint(), 1)

		probe, err := mapping.Transform(
			isolated,
			s.opts.QubitMapping,
			s.space.NSpinOrbitals(),
			s.space.NElectrons,
			s.opts.UpThenDown)
		if err != nil {
			return nil, nil, err
		}
		probe.Scale(0.5)
		probe.Compress(operators.DefaultCompressTol)

		key := probe.CanonicalKey()
		energy, hit := cache[key]
		if !hit {
			s.qubitH = probe
			energy, err = s.EnergyEstimation(theta)
			if err != nil {
				return nil, nil, err
			}
			cache[key] = energy
		}

		switch len(term) {
		case 2:
			i := term[0].Orbital / 2
			j := term[1].Orbital / 2
			rdm1.Set(i, j, rdm1.At(i, j)+energy)
		case 4:
			i := term[0].Orbital / 2
			j := term[1].Orbital / 2
			k := term[2].Orbital / 2
			l := term[3].Orbital / 2
			if i != l || j != k {
				rdm2.add(l, i, k, j, 0.5*energy)
				rdm2.add(i, l, j, k, 0.5*energy)
			} else {
				rdm2.add(i, l, j, k, energy)
			}
		}
	}

	return rdm1, rdm2, nil
}
