// Package chem supplies the molecular-side inputs of the solver: molecule
// descriptions with electron-integral data, a restricted Hartree-Fock (RHF)
// mean-field procedure, frozen-orbital active-space reduction, and the
// second-quantized molecular Hamiltonian build.
//
// Integral conventions:
//   - One-body integrals h[p][q] and two-body integrals (pq|rs) in chemist
//     notation, over a real orthonormal orbital basis.
//   - Spin-orbitals are labeled interleaved: spin-orbital 2·p+σ is spatial
//     orbital p with spin σ ∈ {0 up, 1 down}. Spin reordering, when wanted,
//     happens later in package mapping.
//
// H2STO3G (minimal-basis dihydrogen at 0.7414 Å) is the canonical
// end-to-end system with Hartree-Fock energy −1.116684 Ha and full-CI
// ground-state energy −1.137270 Ha.
package chem
