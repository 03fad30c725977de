// Package mapping converts second-quantized fermionic operators into qubit
// operators under a named encoding scheme.
//
// The only scheme shipped today is Jordan-Wigner ("jw"):
//
//	a_p  → ½ · Z₀…Z_{p-1} (X_p + iY_p)
//	a†_p → ½ · Z₀…Z_{p-1} (X_p − iY_p)
//
// Transform also owns the spin-ordering convention. Fermionic operators are
// always labeled interleaved (spin-orbital 2·orb+σ); when the caller asks
// for up-then-down ordering, spin-orbital p is relabeled orb + σ·(n/2)
// before the ladder expansion, so all spin-up orbitals occupy the low qubit
// indices followed by all spin-down orbitals.
//
// Unknown scheme names fail with ErrUnknownScheme; the solver surfaces that
// as a configuration error.
package mapping
