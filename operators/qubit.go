package operators

import (
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// DefaultCompressTol is the coefficient magnitude below which Compress
// discards a term.
const DefaultCompressTol = 1e-10

type qubitEntry struct {
	ops   PauliTerm
	coeff complex128
}

// QubitOperator is a weighted sum of Pauli strings, stored as a map from
// canonical term key to coefficient. The zero value is not usable; create
// instances with NewQubitOperator or Identity.
type QubitOperator struct {
	terms map[string]qubitEntry
}

// NewQubitOperator returns an empty qubit operator.
func NewQubitOperator() *QubitOperator {
	return &QubitOperator{terms: make(map[string]qubitEntry)}
}

// Identity returns coeff·I.
func Identity(coeff complex128) *QubitOperator {
	q := NewQubitOperator()
	q.Add(PauliTerm{}, coeff)
	return q
}

// Add accumulates coeff onto the given term.
func (q *QubitOperator) Add(term PauliTerm, coeff complex128) {
	term = term.Clone().normalize()
	key := term.Key()
	e, ok := q.terms[key]
	if !ok {
		e = qubitEntry{ops: term}
	}
	e.coeff += coeff
	q.terms[key] = e
}

// AddOperator accumulates every term of other into q.
func (q *QubitOperator) AddOperator(other *QubitOperator) {
	for _, e := range other.terms {
		q.Add(e.ops, e.coeff)
	}
}

// Mul returns the operator product q·other with full Pauli phase
// bookkeeping.
func (q *QubitOperator) Mul(other *QubitOperator) *QubitOperator {
	out := NewQubitOperator()
	for _, a := range q.terms {
		for _, b := range other.terms {
			term, phase := mulTerm(a.ops, b.ops)
			out.Add(term, a.coeff*b.coeff*phase)
		}
	}
	return out
}

// Scale multiplies every coefficient by c in place.
func (q *QubitOperator) Scale(c complex128) {
	for k, e := range q.terms {
		e.coeff *= c
		q.terms[k] = e
	}
}

// Compress removes terms whose coefficient magnitude is below tol.
// A non-positive tol falls back to DefaultCompressTol.
func (q *QubitOperator) Compress(tol float64) {
	if tol <= 0 {
		tol = DefaultCompressTol
	}
	for k, e := range q.terms {
		if cmplx.Abs(e.coeff) < tol {
			delete(q.terms, k)
		}
	}
}

// Coefficient returns the coefficient of term, zero when absent.
func (q *QubitOperator) Coefficient(term PauliTerm) complex128 {
	return q.terms[term.Clone().normalize().Key()].coeff
}

// Len reports the number of stored terms.
func (q *QubitOperator) Len() int { return len(q.terms) }

// Terms returns every term sorted by canonical key (identity first). The
// returned slices alias internal storage and must not be mutated.
func (q *QubitOperator) Terms() []PauliTerm {
	keys := q.sortedKeys()
	out := make([]PauliTerm, len(keys))
	for i, k := range keys {
		out[i] = q.terms[k].ops
	}
	return out
}

// CountQubits reports the qubit span of the operator: highest qubit index
// plus one, or zero for a scalar operator.
func (q *QubitOperator) CountQubits() int {
	n := 0
	for _, e := range q.terms {
		for _, op := range e.ops {
			if op.Qubit+1 > n {
				n = op.Qubit + 1
			}
		}
	}
	return n
}

// Clone returns a deep copy of the operator.
func (q *QubitOperator) Clone() *QubitOperator {
	out := NewQubitOperator()
	for k, e := range q.terms {
		out.terms[k] = qubitEntry{ops: e.ops.Clone(), coeff: e.coeff}
	}
	return out
}

// CanonicalKey renders the whole operator as a single reproducible string:
// terms in sorted key order, each with its coefficient at 12 significant
// digits. Two operators with identical term structure and coefficients
// produce identical keys, which is what the RDM dedup cache hashes on.
func (q *QubitOperator) CanonicalKey() string {
	keys := q.sortedKeys()
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		c := q.terms[k].coeff
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(real(c), 'g', 12, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(imag(c), 'g', 12, 64))
	}
	return b.String()
}

func (q *QubitOperator) sortedKeys() []string {
	keys := make([]string, 0, len(q.terms))
	for k := range q.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
