package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varqus/varqus/operators"
)

// TestFermionTerm_Key verifies the canonical text rendering of ladder terms.
func TestFermionTerm_Key(t *testing.T) {
	assert.Equal(t, "", operators.FermionTerm{}.Key(), "scalar term renders empty")

	oneBody := operators.FermionTerm{
		{Orbital: 2, Creation: true},
		{Orbital: 0},
	}
	assert.Equal(t, "2^ 0", oneBody.Key())

	twoBody := operators.FermionTerm{
		{Orbital: 3, Creation: true},
		{Orbital: 1, Creation: true},
		{Orbital: 0},
		{Orbital: 2},
	}
	assert.Equal(t, "3^ 1^ 0 2", twoBody.Key())
}

// TestFermionOperator_AddAccumulates checks that repeated Add calls on the
// same term accumulate into one coefficient.
func TestFermionOperator_AddAccumulates(t *testing.T) {
	f := operators.NewFermionOperator()
	term := operators.FermionTerm{{Orbital: 1, Creation: true}, {Orbital: 1}}

	f.Add(term, 0.5)
	f.Add(term, 0.25)

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, complex(0.75, 0), f.Coefficient(term))
}

// TestFermionOperator_TermOrder verifies the deterministic iteration order:
// scalar first, then by length, then by key.
func TestFermionOperator_TermOrder(t *testing.T) {
	f := operators.NewFermionOperator()
	f.Add(operators.FermionTerm{
		{Orbital: 1, Creation: true}, {Orbital: 1, Creation: true},
		{Orbital: 0}, {Orbital: 0},
	}, 0.1)
	f.Add(operators.FermionTerm{{Orbital: 1, Creation: true}, {Orbital: 0}}, 0.2)
	f.Add(operators.FermionTerm{}, 0.3)
	f.Add(operators.FermionTerm{{Orbital: 0, Creation: true}, {Orbital: 1}}, 0.4)

	terms := f.Terms()
	require.Len(t, terms, 4)
	assert.Equal(t, "", terms[0].Key())
	assert.Equal(t, "0^ 1", terms[1].Key())
	assert.Equal(t, "1^ 0", terms[2].Key())
	assert.Equal(t, "1^ 1^ 0 0", terms[3].Key())
}

// TestFermionOperator_Isolate checks that Isolate keeps only the requested
// term and resets its coefficient to one.
func TestFermionOperator_Isolate(t *testing.T) {
	f := operators.NewFermionOperator()
	term := operators.FermionTerm{{Orbital: 0, Creation: true}, {Orbital: 1}}
	f.Add(term, -7.25)
	f.Add(operators.FermionTerm{}, 0.5)

	iso := f.Isolate(term)
	assert.Equal(t, 1, iso.Len())
	assert.Equal(t, complex(1, 0), iso.Coefficient(term))
	// The source operator is untouched.
	assert.Equal(t, complex(-7.25, 0), f.Coefficient(term))
}

// TestPauliAlgebra_Products exercises the cyclic Pauli products through
// operator multiplication: X·Y = iZ and Y·X = -iZ.
func TestPauliAlgebra_Products(t *testing.T) {
	x0 := operators.NewQubitOperator()
	x0.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.X}}, 1)
	y0 := operators.NewQubitOperator()
	y0.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.Y}}, 1)

	xy := x0.Mul(y0)
	require.Equal(t, 1, xy.Len())
	assert.Equal(t, complex(0, 1), xy.Coefficient(operators.PauliTerm{{Qubit: 0, Axis: operators.Z}}))

	yx := y0.Mul(x0)
	assert.Equal(t, complex(0, -1), yx.Coefficient(operators.PauliTerm{{Qubit: 0, Axis: operators.Z}}))
}

// TestPauliAlgebra_SelfInverse verifies X·X = I and that disjoint qubits
// merge into a sorted product term.
func TestPauliAlgebra_SelfInverse(t *testing.T) {
	x0 := operators.NewQubitOperator()
	x0.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.X}}, 1)

	sq := x0.Mul(x0)
	require.Equal(t, 1, sq.Len())
	assert.Equal(t, complex(1, 0), sq.Coefficient(operators.PauliTerm{}))

	z3 := operators.NewQubitOperator()
	z3.Add(operators.PauliTerm{{Qubit: 3, Axis: operators.Z}}, 2)
	prod := x0.Mul(z3)
	assert.Equal(t, complex(2, 0), prod.Coefficient(operators.PauliTerm{
		{Qubit: 0, Axis: operators.X},
		{Qubit: 3, Axis: operators.Z},
	}))
}

// TestQubitOperator_CompressDropsCancellations checks that exact
// cancellations disappear after compression.
func TestQubitOperator_CompressDropsCancellations(t *testing.T) {
	q := operators.NewQubitOperator()
	term := operators.PauliTerm{{Qubit: 1, Axis: operators.Z}}
	q.Add(term, 0.5)
	q.Add(term, -0.5)
	q.Add(operators.PauliTerm{}, 1)

	assert.Equal(t, 2, q.Len())
	q.Compress(0)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, complex(1, 0), q.Coefficient(operators.PauliTerm{}))
}

// TestQubitOperator_CountQubits reports the qubit span, not the term count.
func TestQubitOperator_CountQubits(t *testing.T) {
	q := operators.NewQubitOperator()
	assert.Equal(t, 0, q.CountQubits(), "empty operator spans no qubits")

	q.Add(operators.PauliTerm{}, 1)
	assert.Equal(t, 0, q.CountQubits(), "scalar operator spans no qubits")

	q.Add(operators.PauliTerm{{Qubit: 5, Axis: operators.X}}, 1)
	q.Add(operators.PauliTerm{{Qubit: 2, Axis: operators.Y}}, 1)
	assert.Equal(t, 6, q.CountQubits())
}

// TestQubitOperator_CanonicalKey verifies that structurally identical
// operators share a key and that coefficients participate in it.
func TestQubitOperator_CanonicalKey(t *testing.T) {
	a := operators.NewQubitOperator()
	a.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.Z}}, 0.5)
	a.Add(operators.PauliTerm{{Qubit: 1, Axis: operators.X}}, -0.25)

	b := operators.NewQubitOperator()
	// Insertion order must not matter.
	b.Add(operators.PauliTerm{{Qubit: 1, Axis: operators.X}}, -0.25)
	b.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.Z}}, 0.5)

	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())

	b.Add(operators.PauliTerm{{Qubit: 0, Axis: operators.Z}}, 0.125)
	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey(), "coefficients are part of the key")
}

// TestQubitOperator_AddNormalizesFactorOrder ensures externally built terms
// with unsorted factors land on the same canonical term.
func TestQubitOperator_AddNormalizesFactorOrder(t *testing.T) {
	q := operators.NewQubitOperator()
	q.Add(operators.PauliTerm{
		{Qubit: 3, Axis: operators.Z},
		{Qubit: 0, Axis: operators.X},
	}, 1)

	assert.Equal(t, complex(1, 0), q.Coefficient(operators.PauliTerm{
		{Qubit: 0, Axis: operators.X},
		{Qubit: 3, Axis: operators.Z},
	}))
	require.Len(t, q.Terms(), 1)
	assert.Equal(t, "X0 Z3", q.Terms()[0].Key())
}
