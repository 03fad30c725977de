// Package ansatz defines the parametrized-circuit generators the solver
// optimizes over.
//
// An Ansatz owns one circuit, built exactly once; subsequent parameter
// updates rewrite the circuit's variational gate angles in place. The
// solver treats any value satisfying the Ansatz interface uniformly, so
// user-defined circuit generators plug in next to the built-ins:
//
//   - UCCSD — unitary coupled-cluster singles and doubles over the active
//     space, with one shared amplitude per spatial excitation. Each Pauli
//     string of the Jordan-Wigner-mapped cluster generator becomes a
//     first-order Trotter block: basis pre-rotations, a CNOT parity
//     ladder, a variational RZ, and the mirrored unrotations.
//   - RUCC(1), RUCC(3) — fixed four-qubit, reduced ("HOMO-LUMO") unitary
//     coupled-cluster templates. RUCC(1) applies the double-excitation
//     entangler only; RUCC(3) precedes it with both single-excitation
//     blocks. Both assume Jordan-Wigner encoding with up-then-down spin
//     ordering; the solver enforces those preconditions before
//     construction.
package ansatz
