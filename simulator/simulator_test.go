package simulator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varqus/varqus/circuit"
	"github.com/varqus/varqus/operators"
	"github.com/varqus/varqus/simulator"
)

func pauli(axis operators.Axis, qubits ...int) operators.PauliTerm {
	term := make(operators.PauliTerm, len(qubits))
	for i, q := range qubits {
		term[i] = operators.PauliOp{Qubit: q, Axis: axis}
	}
	return term
}

func singleTerm(term operators.PauliTerm, coeff complex128) *operators.QubitOperator {
	op := operators.NewQubitOperator()
	op.Add(term, coeff)
	return op
}

func exactBackend(t *testing.T) *simulator.Backend {
	t.Helper()
	b, err := simulator.New(simulator.DefaultOptions())
	require.NoError(t, err)
	return b
}

// TestExpectation_FlippedQubit verifies ⟨Z₀⟩ = −1 after an X gate.
func TestExpectation_FlippedQubit(t *testing.T) {
	c := circuit.New(1)
	require.NoError(t, c.X(0))

	ev, err := exactBackend(t).ExpectationValue(singleTerm(pauli(operators.Z, 0), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, ev, 1e-12)
}

// TestExpectation_BellState checks the Bell-state correlations after
// H + CNOT: ⟨Z₀Z₁⟩ = ⟨X₀X₁⟩ = 1 while ⟨Z₀⟩ = 0.
func TestExpectation_BellState(t *testing.T) {
	c := circuit.New(2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))
	b := exactBackend(t)

	zz, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 0, 1), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, zz, 1e-12)

	xx, err := b.ExpectationValue(singleTerm(pauli(operators.X, 0, 1), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, xx, 1e-12)

	z0, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 0), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, z0, 1e-12)
}

// TestExpectation_RotationAngles verifies ⟨Z⟩ = cos θ and ⟨X⟩ = sin θ after
// RY(θ), and the Y-eigenstate produced by RX(−π/2).
func TestExpectation_RotationAngles(t *testing.T) {
	const theta = 0.37
	b := exactBackend(t)

	c := circuit.New(1)
	require.NoError(t, c.RY(0, theta))
	z, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 0), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(theta), z, 1e-12)
	x, err := b.ExpectationValue(singleTerm(pauli(operators.X, 0), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(theta), x, 1e-12)

	c = circuit.New(1)
	require.NoError(t, c.RX(0, -math.Pi/2))
	y, err := b.ExpectationValue(singleTerm(pauli(operators.Y, 0), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-12)
}

// TestExpectation_IdentityOffset checks that the identity term contributes
// its coefficient directly.
func TestExpectation_IdentityOffset(t *testing.T) {
	op := operators.Identity(complex(2.5, 0))
	op.Add(pauli(operators.Z, 0), -1)

	c := circuit.New(1)
	require.NoError(t, c.X(0))
	ev, err := exactBackend(t).ExpectationValue(op, c)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, ev, 1e-12)
}

// TestSampling_DeterministicOutcome: a Bell state always measures even
// Z₀Z₁ parity, so sampling reproduces the exact value shot-noise free.
func TestSampling_DeterministicOutcome(t *testing.T) {
	b, err := simulator.New(simulator.Options{Shots: 256, Seed: 7})
	require.NoError(t, err)

	c := circuit.New(2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))

	zz, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 0, 1), 1), c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, zz, 1e-12)
}

// TestSampling_Statistics: ⟨Z₀⟩ of |+⟩ is 0; with 10k shots the estimate
// stays well inside a loose statistical band, and a fixed seed makes the
// draw reproducible.
func TestSampling_Statistics(t *testing.T) {
	c := circuit.New(1)
	require.NoError(t, c.H(0))
	op := singleTerm(pauli(operators.Z, 0), 1)

	b1, err := simulator.New(simulator.Options{Shots: 10000, Seed: 42})
	require.NoError(t, err)
	ev1, err := b1.ExpectationValue(op, c)
	require.NoError(t, err)
	assert.Less(t, math.Abs(ev1), 0.15)

	b2, err := simulator.New(simulator.Options{Shots: 10000, Seed: 42})
	require.NoError(t, err)
	ev2, err := b2.ExpectationValue(op, c)
	require.NoError(t, err)
	assert.Equal(t, ev1, ev2, "same seed, same draw")
}

// TestNew_OptionValidation covers the construction failure modes.
func TestNew_OptionValidation(t *testing.T) {
	_, err := simulator.New(simulator.Options{Target: "qulacs"})
	assert.ErrorIs(t, err, simulator.ErrUnknownTarget)

	_, err = simulator.New(simulator.Options{Shots: -1})
	assert.ErrorIs(t, err, simulator.ErrBadShots)

	_, err = simulator.New(simulator.Options{Noise: &simulator.NoiseModel{Depolarizing: 0.01}})
	assert.ErrorIs(t, err, simulator.ErrNoiseNeedsShots)

	_, err = simulator.New(simulator.Options{Shots: 100, Noise: &simulator.NoiseModel{Depolarizing: 1.5}})
	assert.ErrorIs(t, err, simulator.ErrBadNoise)
}

// TestExpectationValue_Failures covers register mismatch and non-Hermitian
// contraction.
func TestExpectationValue_Failures(t *testing.T) {
	b := exactBackend(t)

	c := circuit.New(1)
	_, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 3), 1), c)
	assert.ErrorIs(t, err, simulator.ErrRegisterMismatch)

	_, err = b.ExpectationValue(operators.Identity(complex(0, 1)), circuit.New(1))
	assert.ErrorIs(t, err, simulator.ErrNotHermitian)
}

// TestNoise_SamplingStaysPhysical: a noisy trajectory is still a valid
// quantum state, so the sampled expectation stays inside [−1, 1] whatever
// Pauli the model injects.
func TestNoise_SamplingStaysPhysical(t *testing.T) {
	b, err := simulator.New(simulator.Options{
		Shots: 2000,
		Noise: &simulator.NoiseModel{Depolarizing: 1.0},
		Seed:  11,
	})
	require.NoError(t, err)

	c := circuit.New(2)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))

	zz, err := b.ExpectationValue(singleTerm(pauli(operators.Z, 0, 1), 1), c)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, zz, -1.0)
	assert.LessOrEqual(t, zz, 1.0)
}
