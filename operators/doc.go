// Package operators implements the two operator representations the solver
// works with: second-quantized fermionic operators (ordered products of
// creation/annihilation ladder operators with complex coefficients) and
// qubit operators (weighted sums of Pauli strings).
//
// Both types are term maps with canonical, hashable text keys, so terms can
// be looked up, deduplicated and iterated in a deterministic sorted order.
// QubitOperator additionally carries the full single-qubit Pauli product
// algebra (X·Y = iZ and friends), which is what the Jordan-Wigner expansion
// in package mapping is built on.
//
// Conventions:
//   - Fermionic term keys render ladder operators in application order,
//     creation marked with a caret: "2^ 0" is a†₂a₀. The empty term is the
//     scalar (constant) term.
//   - Pauli term keys list factors sorted by qubit: "X0 Z3". The empty term
//     is the identity.
//   - Term lengths of a molecular Hamiltonian are 0 (constant), 2 (one-body)
//     or 4 (two-body); the container itself does not enforce this.
package operators
