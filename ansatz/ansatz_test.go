package ansatz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/circuit"
	"github.com/varqus/varqus/mapping"
	"github.com/varqus/varqus/operators"
	"github.com/varqus/varqus/simulator"
)

func h2ActiveSpace(t *testing.T) (*chem.ActiveSpace, *chem.MeanField) {
	t.Helper()
	mol := chem.H2STO3G()
	mf, err := chem.RunRHF(mol)
	require.NoError(t, err)
	space, err := chem.BuildActiveSpace(mf, mol.NElectrons, nil)
	require.NoError(t, err)
	return space, mf
}

func TestUCCSD_ParameterCount(t *testing.T) {
	space, mf := h2ActiveSpace(t)
	u, err := NewUCCSD(space, mapping.SchemeJW, mf, false)
	require.NoError(t, err)

	// one spatial single (0→1) plus one spatial double (00→11)
	assert.Equal(t, 2, u.ParameterCount())

	big := &chem.ActiveSpace{Orbitals: []int{0, 1, 2, 3}, NElectrons: 4}
	u, err = NewUCCSD(big, mapping.SchemeJW, nil, false)
	require.NoError(t, err)
	// 2·2 singles, 3·3 doubles
	assert.Equal(t, 13, u.ParameterCount())
}

func TestUCCSD_RejectsDegenerateSpaces(t *testing.T) {
	openShell := &chem.ActiveSpace{Orbitals: []int{0, 1}, NElectrons: 3}
	_, err := NewUCCSD(openShell, mapping.SchemeJW, nil, false)
	assert.ErrorIs(t, err, ErrUnsupportedSystem)

	noVirtuals := &chem.ActiveSpace{Orbitals: []int{0}, NElectrons: 2}
	_, err = NewUCCSD(noVirtuals, mapping.SchemeJW, nil, false)
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}

func TestUCCSD_DefaultParameters(t *testing.T) {
	space, mf := h2ActiveSpace(t)
	u, err := NewUCCSD(space, mapping.SchemeJW, mf, false)
	require.NoError(t, err)

	for _, p := range u.DefaultParameters() {
		assert.Equal(t, 1e-2, p)
	}
}

func TestUCCSD_BuildCircuit(t *testing.T) {
	space, mf := h2ActiveSpace(t)
	u, err := NewUCCSD(space, mapping.SchemeJW, mf, false)
	require.NoError(t, err)
	assert.Nil(t, u.Circuit())

	require.NoError(t, u.BuildCircuit())
	circ := u.Circuit()
	require.NotNil(t, circ)

	assert.Equal(t, 4, circ.Width())
	assert.Equal(t, 2, circ.Counts()[circuit.GateX], "reference determinant flips two qubits")
	// singles generator contributes 4 Pauli strings, the double 8
	assert.Equal(t, 12, circ.VariationalCount())

	// second build is a no-op
	size := circ.Size()
	require.NoError(t, u.BuildCircuit())
	assert.Equal(t, size, u.Circuit().Size())
	assert.Same(t, circ, u.Circuit())
}

func TestUCCSD_UpdateParameters(t *testing.T) {
	space, mf := h2ActiveSpace(t)
	u, err := NewUCCSD(space, mapping.SchemeJW, mf, false)
	require.NoError(t, err)

	assert.ErrorIs(t, u.UpdateParameters([]float64{0, 0}), ErrNotBuilt)

	require.NoError(t, u.BuildCircuit())
	assert.ErrorIs(t, u.UpdateParameters([]float64{0.1}), ErrParamCount)
	assert.NoError(t, u.UpdateParameters([]float64{0.1, 0.2}))
}

func TestUCCSD_ReferenceState(t *testing.T) {
	space, mf := h2ActiveSpace(t)
	u, err := NewUCCSD(space, mapping.SchemeJW, mf, false)
	require.NoError(t, err)
	require.NoError(t, u.BuildCircuit())
	require.NoError(t, u.UpdateParameters([]float64{0, 0}))

	// at θ = 0 every block is the identity and the reference determinant
	// survives: interleaved labeling occupies qubits 0 and 1.
	backend, err := simulator.New(simulator.DefaultOptions())
	require.NoError(t, err)
	for q, want := range []float64{-1, -1, 1, 1} {
		z := operators.NewQubitOperator()
		z.Add(operators.PauliTerm{{Qubit: q, Axis: operators.Z}}, 1)
		got, err := backend.ExpectationValue(z, u.Circuit())
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "qubit %d", q)
	}
}

func TestRUCC_ParameterValidation(t *testing.T) {
	_, err := NewRUCC(2)
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
	_, err = NewRUCC(0)
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}

func TestRUCC_UCC1Structure(t *testing.T) {
	r, err := NewRUCC(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ParameterCount())
	assert.Equal(t, []float64{0}, r.DefaultParameters())
	assert.Nil(t, r.MeanField())

	require.NoError(t, r.BuildCircuit())
	circ := r.Circuit()
	require.NotNil(t, circ)
	assert.Equal(t, 4, circ.Width())
	assert.Equal(t, 2, circ.Counts()[circuit.GateX])
	assert.Equal(t, 6, circ.TwoQubitCount())
	assert.Equal(t, 1, circ.VariationalCount())
}

func TestRUCC_UCC3Structure(t *testing.T) {
	r, err := NewRUCC(3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.ParameterCount())

	require.NoError(t, r.BuildCircuit())
	circ := r.Circuit()
	// two single blocks with one entangler each side, one double with three
	assert.Equal(t, 10, circ.TwoQubitCount())
	assert.Equal(t, 3, circ.VariationalCount())
}

func TestRUCC_UpdateParameters(t *testing.T) {
	r, err := NewRUCC(1)
	require.NoError(t, err)
	assert.ErrorIs(t, r.UpdateParameters([]float64{0}), ErrNotBuilt)

	require.NoError(t, r.BuildCircuit())
	assert.ErrorIs(t, r.UpdateParameters([]float64{0, 0}), ErrParamCount)
	require.NoError(t, r.UpdateParameters([]float64{0.3}))

	var varGate *circuit.Gate
	gates := r.Circuit().Gates()
	for i := range gates {
		if gates[i].ParamIndex == 0 {
			varGate = &gates[i]
			break
		}
	}
	require.NotNil(t, varGate)
	assert.InDelta(t, 0.3, varGate.Angle, 1e-15)
}

func TestRUCC_ReferenceState(t *testing.T) {
	r, err := NewRUCC(3)
	require.NoError(t, err)
	require.NoError(t, r.BuildCircuit())
	require.NoError(t, r.UpdateParameters([]float64{0, 0, 0}))

	backend, err := simulator.New(simulator.DefaultOptions())
	require.NoError(t, err)
	for q, want := range []float64{-1, 1, -1, 1} {
		z := operators.NewQubitOperator()
		z.Add(operators.PauliTerm{{Qubit: q, Axis: operators.Z}}, 1)
		got, err := backend.ExpectationValue(z, r.Circuit())
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "qubit %d", q)
	}
}
