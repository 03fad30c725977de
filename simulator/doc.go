// Package simulator provides the quantum-circuit execution backend the
// solver queries for expectation values.
//
// The only target shipped today is "statevector": an exact amplitude-vector
// simulation over complex128. With Shots set to zero it returns exact
// expectation values term by term; with Shots > 0 it emulates a sampling
// device — per Pauli term the state is rotated into the Z eigenbasis (H for
// X factors, S†·H for Y factors) and bitstring eigenvalues are drawn from
// the amplitude distribution. An optional depolarizing noise model injects
// a random Pauli after each gate and is only meaningful in sampling mode.
//
// Backends are cheap and stateless between calls; every ExpectationValue
// run re-executes the circuit from |0…0⟩, so in-place parameter updates on
// the circuit are picked up naturally.
package simulator
