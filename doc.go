// Package varqus is a variational quantum eigensolver (VQE) toolkit for
// molecular electronic-structure problems: build a qubit Hamiltonian from
// molecular integrals, pick a parametrized ansatz circuit, and drive a
// classical optimizer against a simulated quantum backend until the
// ground-state energy converges.
//
// 🚀 What is varqus?
//
//	A self-contained hybrid classical-quantum solver that brings together:
//		• Operators: fermionic and Pauli-string operator algebra
//		• Mappings: Jordan-Wigner fermion→qubit encoding, spin reordering
//		• Chemistry: molecule fixtures, restricted Hartree-Fock mean field,
//		  frozen-orbital active spaces, second-quantized Hamiltonians
//		• Circuits: gate-level circuits with in-place variational parameters
//		• Simulation: exact and shot-based statevector expectation values
//		• Ansätze: UCCSD and restricted UCC (1- and 3-parameter) templates
//		• VQE: the solver loop, RDM extraction and resource estimation
//
// ✨ Why choose varqus?
//
//   - Deterministic – sorted term iteration, seedable sampling, no globals
//   - Explicit errors – sentinel errors per package, matched via errors.Is
//   - Pluggable – custom ansätze and optimizer strategies drop in through
//     small interfaces; collaborator failures surface to the caller untouched
//   - Pure Go – gonum for the numerics, no cgo, no external simulators
//
// Everything is organized under flat subpackages:
//
//	operators/ — fermionic ladder terms & Pauli-string operators
//	mapping/   — fermion-to-qubit transforms ("jw")
//	chem/      — molecules, mean field, molecular Hamiltonians
//	circuit/   — gates, circuits, variational bookkeeping
//	simulator/ — statevector backend (exact, shots, noise)
//	ansatz/    — UCCSD & restricted UCC circuit generators
//	vqe/       — the solver: build, simulate, RDMs, resources
//
// Quick sketch of the data flow:
//
//	molecule ─→ mean field ─→ fermionic H ─→ qubit H
//	                                           │
//	     optimizer ⇄ energy estimation ⇄ backend + ansatz circuit
//	                                           │
//	                        optimal energy, parameters, RDMs
//
// Dive into examples/ for end-to-end scenarios, starting with the minimal
// dihydrogen ground-state workflow.
//
//	go get github.com/varqus/varqus/vqe
package varqus
