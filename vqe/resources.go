package vqe

// Resources reports the quantum cost of a built solver.
type Resources struct {
	// HamiltonianTerms counts Pauli strings in the active Hamiltonian.
	HamiltonianTerms int

	// Qubits is the circuit register width.
	Qubits int

	// Gates is the total gate count.
	Gates int

	// TwoQubitGates counts entangling gates.
	TwoQubitGates int

	// VariationalGates counts parameter-bound gates.
	VariationalGates int

	// Parameters is the variational parameter count.
	Parameters int
}

// Resources introspects the built circuit and Hamiltonian. Read-only.
func (s *Solver) Resources() (*Resources, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	circ := s.ansatz.Circuit()
	return &Resources{
		HamiltonianTerms: s.qubitH.Len(),
		Qubits:           circ.Width(),
		Gates:            circ.Size(),
		TwoQubitGates:    circ.TwoQubitCount(),
		VariationalGates: circ.VariationalCount(),
		Parameters:       len(s.params),
	}, nil
}
