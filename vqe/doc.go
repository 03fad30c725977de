// Package vqe orchestrates the variational quantum eigensolver loop: it
// builds a qubit Hamiltonian from a molecule, resolves an ansatz circuit,
// and drives a classical optimizer over backend expectation values to
// approximate the molecular ground-state energy.
//
// What lives here:
//
//   - Options / DefaultOptions — the typed configuration surface: molecule,
//     mean field, frozen orbitals, mapping scheme, ansatz choice, optimizer,
//     initial parameters, backend options, spin ordering, verbosity.
//   - Solver — the orchestrator. Build wires the pipeline, Simulate runs
//     the optimization, EnergyEstimation evaluates a single parameter
//     vector, GetRDM extracts reduced density matrices, Resources reports
//     circuit and Hamiltonian statistics.
//   - Optimizer — the pluggable minimization strategy; the default is a
//     gradient-based quasi-Newton routine over finite-difference gradients.
//
// Typical session:
//
//	solver, err := vqe.NewSolver(vqe.Options{Molecule: chem.H2STO3G()})
//	if err != nil { ... }
//	if err := solver.Build(); err != nil { ... }
//	energy, err := solver.Simulate()
//
// A Solver is not safe for concurrent use: energy evaluation rewrites the
// ansatz circuit in place, and GetRDM temporarily swaps the active
// Hamiltonian while it probes individual terms.
package vqe
