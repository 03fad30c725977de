// Package circuit models gate-level quantum circuits with explicit
// bookkeeping for variational gates: rotation gates whose angle is bound to
// an external parameter vector and rewritten in place between evaluations.
// That in-place rewrite is the side channel the VQE loop relies on — the
// backend always simulates the circuit's current state.
package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrQubitRange indicates a gate references a qubit outside the
	// circuit's width.
	ErrQubitRange = errors.New("circuit: qubit index out of range")

	// ErrParamIndex indicates a variational gate references a parameter
	// slot that the supplied parameter vector does not cover.
	ErrParamIndex = errors.New("circuit: variational parameter index out of range")
)

// Gate names used by this package. The simulator dispatches on these.
const (
	GateH    = "H"
	GateX    = "X"
	GateRX   = "RX"
	GateRY   = "RY"
	GateRZ   = "RZ"
	GateCNOT = "CNOT"
)

// Gate is one circuit operation. Control is -1 for single-qubit gates.
// A negative ParamIndex marks a fixed gate; otherwise the gate is
// variational and its Angle is Scale·θ[ParamIndex] after SetParameters.
type Gate struct {
	Name       string
	Target     int
	Control    int
	Angle      float64
	ParamIndex int
	Scale      float64
}

// Circuit is an ordered gate list over a fixed-width qubit register.
type Circuit struct {
	width    int
	gates    []Gate
	counts   map[string]int
	varGates []int // positions of variational gates, in insertion order
}

// New returns an empty circuit over width qubits.
func New(width int) *Circuit {
	return &Circuit{width: width, counts: make(map[string]int)}
}

// Width reports the qubit register size.
func (c *Circuit) Width() int { return c.width }

// Size reports the total gate count.
func (c *Circuit) Size() int { return len(c.gates) }

// Counts returns the per-gate-name tallies. The map is a copy.
func (c *Circuit) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// TwoQubitCount reports the number of entangling gates.
func (c *Circuit) TwoQubitCount() int { return c.counts[GateCNOT] }

// VariationalCount reports the number of parameter-bound gates.
func (c *Circuit) VariationalCount() int { return len(c.varGates) }

// Gates returns the gate list. The slice is shared; callers iterate, they
// do not mutate.
func (c *Circuit) Gates() []Gate { return c.gates }

func (c *Circuit) add(g Gate) error {
	if g.Target < 0 || g.Target >= c.width || g.Control >= c.width {
		return fmt.Errorf("%w: gate %s target %d control %d width %d", ErrQubitRange, g.Name, g.Target, g.Control, c.width)
	}
	if g.ParamIndex >= 0 {
		c.varGates = append(c.varGates, len(c.gates))
	}
	c.gates = append(c.gates, g)
	c.counts[g.Name]++
	return nil
}

// H appends a Hadamard gate.
func (c *Circuit) H(q int) error {
	return c.add(Gate{Name: GateH, Target: q, Control: -1, ParamIndex: -1})
}

// X appends a Pauli-X gate.
func (c *Circuit) X(q int) error {
	return c.add(Gate{Name: GateX, Target: q, Control: -1, ParamIndex: -1})
}

// RX appends a fixed X-rotation by angle.
func (c *Circuit) RX(q int, angle float64) error {
	return c.add(Gate{Name: GateRX, Target: q, Control: -1, Angle: angle, ParamIndex: -1})
}

// RY appends a fixed Y-rotation by angle.
func (c *Circuit) RY(q int, angle float64) error {
	return c.add(Gate{Name: GateRY, Target: q, Control: -1, Angle: angle, ParamIndex: -1})
}

// RZ appends a fixed Z-rotation by angle.
func (c *Circuit) RZ(q int, angle float64) error {
	return c.add(Gate{Name: GateRZ, Target: q, Control: -1, Angle: angle, ParamIndex: -1})
}

// CNOT appends a controlled-X gate.
func (c *Circuit) CNOT(control, target int) error {
	if control < 0 || control == target {
		return fmt.Errorf("%w: CNOT control %d target %d", ErrQubitRange, control, target)
	}
	return c.add(Gate{Name: GateCNOT, Target: target, Control: control, ParamIndex: -1})
}

// VarRZ appends a variational Z-rotation bound to parameter slot
// paramIndex with the given scale: angle = scale·θ[paramIndex].
func (c *Circuit) VarRZ(q, paramIndex int, scale float64) error {
	if paramIndex < 0 {
		return fmt.Errorf("%w: negative slot %d", ErrParamIndex, paramIndex)
	}
	return c.add(Gate{Name: GateRZ, Target: q, Control: -1, ParamIndex: paramIndex, Scale: scale})
}

// SetParameters rewrites every variational gate's angle in place from θ.
func (c *Circuit) SetParameters(theta []float64) error {
	for _, pos := range c.varGates {
		g := &c.gates[pos]
		if g.ParamIndex >= len(theta) {
			return fmt.Errorf("%w: slot %d, %d parameters", ErrParamIndex, g.ParamIndex, len(theta))
		}
		g.Angle = g.Scale * theta[g.ParamIndex]
	}
	return nil
}
