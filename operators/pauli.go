package operators

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Axis identifies a single-qubit Pauli factor.
type Axis byte

const (
	// X is the Pauli-X axis.
	X Axis = 'X'
	// Y is the Pauli-Y axis.
	Y Axis = 'Y'
	// Z is the Pauli-Z axis.
	Z Axis = 'Z'
)

// PauliOp is one Pauli factor acting on one qubit.
type PauliOp struct {
	Qubit int
	Axis  Axis
}

// PauliTerm is a product of Pauli factors on distinct qubits, kept sorted by
// qubit index. The empty term is the identity.
type PauliTerm []PauliOp

// Key renders the term in canonical text form, e.g. "X0 Z3". The identity
// term renders as the empty string.
func (t PauliTerm) Key() string {
	if len(t) == 0 {
		return ""
	}
	var b strings.Builder
	for i, op := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(op.Axis))
		b.WriteString(strconv.Itoa(op.Qubit))
	}
	return b.String()
}

// Clone returns an independent copy of the term.
func (t PauliTerm) Clone() PauliTerm {
	out := make(PauliTerm, len(t))
	copy(out, t)
	return out
}

// normalize sorts factors by qubit index. Terms built by this package are
// already sorted; this guards externally constructed terms.
func (t PauliTerm) normalize() PauliTerm {
	sort.Slice(t, func(i, j int) bool { return t[i].Qubit < t[j].Qubit })
	return t
}

// mulAxis multiplies two Pauli axes on the same qubit, returning the
// resulting axis (0 for identity) and the accumulated phase.
func mulAxis(a, b Axis) (Axis, complex128) {
	if a == b {
		return 0, 1
	}
	// Cyclic products: XY=iZ, YZ=iX, ZX=iY; reversed order picks up -i.
	switch {
	case a == X && b == Y:
		return Z, 1i
	case a == Y && b == X:
		return Z, -1i
	case a == Y && b == Z:
		return X, 1i
	case a == Z && b == Y:
		return X, -1i
	case a == Z && b == X:
		return Y, 1i
	case a == X && b == Z:
		return Y, -1i
	}
	panic(fmt.Sprintf("operators: invalid pauli axes %q %q", a, b))
}

// mulTerm multiplies two sorted Pauli terms, returning the resulting sorted
// term and the overall phase.
func mulTerm(a, b PauliTerm) (PauliTerm, complex128) {
	out := make(PauliTerm, 0, len(a)+len(b))
	phase := complex128(1)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Qubit < b[j].Qubit:
			out = append(out, a[i])
			i++
		case a[i].Qubit > b[j].Qubit:
			out = append(out, b[j])
			j++
		default:
			axis, ph := mulAxis(a[i].Axis, b[j].Axis)
			phase *= ph
			if axis != 0 {
				out = append(out, PauliOp{Qubit: a[i].Qubit, Axis: axis})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out, phase
}
