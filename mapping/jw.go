package mapping

import (
	"fmt"

	"github.com/varqus/varqus/operators"
)

// jordanWigner expands every fermionic term into its Pauli-string form and
// sums the results.
func jordanWigner(op *operators.FermionOperator, nSpinOrbitals int, upThenDown bool) (*operators.QubitOperator, error) {
	out := operators.NewQubitOperator()
	for _, term := range op.Terms() {
		coeff := op.Coefficient(term)
		mapped := operators.Identity(coeff)
		for _, ladder := range term {
			if ladder.Orbital < 0 || ladder.Orbital >= nSpinOrbitals {
				return nil, fmt.Errorf("%w: orbital %d, register %d", ErrOrbitalRange, ladder.Orbital, nSpinOrbitals)
			}
			q := relabel(ladder.Orbital, nSpinOrbitals, upThenDown)
			mapped = mapped.Mul(jwLadder(q, ladder.Creation))
		}
		out.AddOperator(mapped)
	}
	out.Compress(0)
	return out, nil
}

// jwLadder is the single ladder operator on qubit q:
// ½·Z₀…Z_{q-1}(X_q ∓ iY_q), minus for creation.
func jwLadder(q int, creation bool) *operators.QubitOperator {
	zs := make(operators.PauliTerm, q)
	for i := 0; i < q; i++ {
		zs[i] = operators.PauliOp{Qubit: i, Axis: operators.Z}
	}

	xTerm := append(zs.Clone(), operators.PauliOp{Qubit: q, Axis: operators.X})
	yTerm := append(zs.Clone(), operators.PauliOp{Qubit: q, Axis: operators.Y})

	yCoeff := complex(0, 0.5)
	if creation {
		yCoeff = -yCoeff
	}

	op := operators.NewQubitOperator()
	op.Add(xTerm, 0.5)
	op.Add(yTerm, yCoeff)
	return op
}
