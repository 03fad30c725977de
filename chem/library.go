package chem

// Fixture molecules used across the test suite and examples. Integrals are
// given in the molecular-orbital basis (Hartree atomic units), so RunRHF
// converges onto the identity coefficient matrix and the values below feed
// the Hamiltonian unchanged.

// H2STO3G is minimal-basis dihydrogen at its 0.7414 Å equilibrium bond
// length: two electrons in two spatial orbitals (bonding σg, antibonding
// σu). Reference energies: E(RHF) = −1.116684 Ha, E(FCI) = −1.137270 Ha.
func H2STO3G() *Molecule {
	const (
		enuc = 0.7137539936876182
		h11  = -1.25246357
		h22  = -0.47594871
		j11  = 0.67448877 // (11|11)
		j22  = 0.69739747 // (22|22)
		j12  = 0.66346650 // (11|22)
		k12  = 0.18128881 // (12|12)
	)

	m := &Molecule{
		Name: "H2 / STO-3G",
		Geometry: []Atom{
			{Symbol: "H"},
			{Symbol: "H", Z: 0.7414},
		},
		NElectrons:       2,
		NOrbitals:        2,
		NuclearRepulsion: enuc,
		OneBody: []float64{
			h11, 0,
			0, h22,
		},
		TwoBody: make([]float64, 16),
	}

	set := func(p, q, r, s int, v float64) {
		m.TwoBody[((p*2+q)*2+r)*2+s] = v
	}
	set(0, 0, 0, 0, j11)
	set(1, 1, 1, 1, j22)
	set(0, 0, 1, 1, j12)
	set(1, 1, 0, 0, j12)
	set(0, 1, 0, 1, k12)
	set(1, 0, 1, 0, k12)
	set(0, 1, 1, 0, k12)
	set(1, 0, 0, 1, k12)
	return m
}

// H2Reduced is the dihydrogen system restricted to its bonding orbital
// only, a one-orbital (two-qubit) toy used to exercise active-space errors
// and small-register paths. It is H2STO3G with the antibonding orbital
// integrals projected out.
func H2Reduced() *Molecule {
	full := H2STO3G()
	m := &Molecule{
		Name:             "H2 / STO-3G (bonding orbital only)",
		Geometry:         full.Geometry,
		NElectrons:       2,
		NOrbitals:        1,
		NuclearRepulsion: full.NuclearRepulsion,
		OneBody:          []float64{full.OneBodyAt(0, 0)},
		TwoBody:          []float64{full.TwoBodyAt(0, 0, 0, 0)},
	}
	return m
}
