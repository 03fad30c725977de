package simulator

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/varqus/varqus/circuit"
	"github.com/varqus/varqus/operators"
)

// state is an n-qubit amplitude vector; index bit q is the computational
// value of qubit q.
type state struct {
	n    int
	amps []complex128
}

func newState(n int) *state {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &state{n: n, amps: amps}
}

// apply1 applies a single-qubit unitary u to qubit q.
func (s *state) apply1(q int, u [2][2]complex128) {
	mask := 1 << q
	for i := range s.amps {
		if i&mask == 0 {
			j := i | mask
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = u[0][0]*a + u[0][1]*b
			s.amps[j] = u[1][0]*a + u[1][1]*b
		}
	}
}

func (s *state) h(q int) {
	inv := complex(1/math.Sqrt2, 0)
	s.apply1(q, [2][2]complex128{{inv, inv}, {inv, -inv}})
}

func (s *state) x(q int) {
	s.apply1(q, [2][2]complex128{{0, 1}, {1, 0}})
}

func (s *state) y(q int) {
	s.apply1(q, [2][2]complex128{{0, -1i}, {1i, 0}})
}

func (s *state) z(q int) {
	s.apply1(q, [2][2]complex128{{1, 0}, {0, -1}})
}

// sdg applies S† = diag(1, −i), used to rotate Y measurements into Z.
func (s *state) sdg(q int) {
	s.apply1(q, [2][2]complex128{{1, 0}, {0, -1i}})
}

func (s *state) rx(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(0, -math.Sin(theta/2))
	s.apply1(q, [2][2]complex128{{c, sn}, {sn, c}})
}

func (s *state) ry(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	s.apply1(q, [2][2]complex128{{c, -sn}, {sn, c}})
}

func (s *state) rz(q int, theta float64) {
	s.apply1(q, [2][2]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
}

func (s *state) cnot(control, target int) {
	cmask, tmask := 1<<control, 1<<target
	for i := range s.amps {
		if i&cmask != 0 && i&tmask == 0 {
			j := i | tmask
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *state) applyGate(g circuit.Gate) error {
	switch g.Name {
	case circuit.GateH:
		s.h(g.Target)
	case circuit.GateX:
		s.x(g.Target)
	case circuit.GateRX:
		s.rx(g.Target, g.Angle)
	case circuit.GateRY:
		s.ry(g.Target, g.Angle)
	case circuit.GateRZ:
		s.rz(g.Target, g.Angle)
	case circuit.GateCNOT:
		s.cnot(g.Control, g.Target)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGate, g.Name)
	}
	return nil
}

func (s *state) clone() *state {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &state{n: s.n, amps: amps}
}

// expectation computes ⟨ψ|P|ψ⟩ exactly for one Pauli term. A Pauli string
// acts on a basis state as P|i⟩ = phase(i)·|i⊕flip⟩, with X and Y factors
// flipping bits and Y and Z factors contributing phases.
func (s *state) expectation(term operators.PauliTerm) float64 {
	flip := 0
	for _, op := range term {
		if op.Axis != operators.Z {
			flip |= 1 << op.Qubit
		}
	}
	total := complex128(0)
	for i, amp := range s.amps {
		if amp == 0 {
			continue
		}
		phase := complex128(1)
		for _, op := range term {
			bit := i >> op.Qubit & 1
			switch op.Axis {
			case operators.Y:
				if bit == 0 {
					phase *= 1i
				} else {
					phase *= -1i
				}
			case operators.Z:
				if bit == 1 {
					phase = -phase
				}
			}
		}
		total += phase * cmplx.Conj(s.amps[i^flip]) * amp
	}
	return real(total)
}

// sample estimates ⟨ψ|P|ψ⟩ from shots measurement draws: rotate a copy of
// the state into the Z eigenbasis of every factor, then sample bitstrings
// and average the ±1 parities.
func (s *state) sample(term operators.PauliTerm, shots int, rng *rand.Rand) float64 {
	rotated := s.clone()
	zmask := 0
	for _, op := range term {
		zmask |= 1 << op.Qubit
		switch op.Axis {
		case operators.X:
			rotated.h(op.Qubit)
		case operators.Y:
			rotated.sdg(op.Qubit)
			rotated.h(op.Qubit)
		}
	}

	probs := make([]float64, len(rotated.amps))
	for i, amp := range rotated.amps {
		probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	sum := 0
	for shot := 0; shot < shots; shot++ {
		r := rng.Float64()
		idx := len(probs) - 1
		acc := 0.0
		for i, p := range probs {
			acc += p
			if r < acc {
				idx = i
				break
			}
		}
		if parity(idx&zmask) == 0 {
			sum++
		} else {
			sum--
		}
	}
	return float64(sum) / float64(shots)
}

func parity(x int) int {
	p := 0
	for x != 0 {
		p ^= x & 1
		x >>= 1
	}
	return p
}
