package operators

import (
	"sort"
	"strconv"
	"strings"
)

// LadderOp is a single fermionic creation or annihilation operator acting on
// one spin-orbital.
type LadderOp struct {
	// Orbital is the spin-orbital index the operator acts on (≥ 0).
	Orbital int
	// Creation marks a creation operator a†; false is annihilation a.
	Creation bool
}

// FermionTerm is an ordered product of ladder operators. Valid Hamiltonian
// terms have length 0 (scalar), 2 (one-body) or 4 (two-body), but the type
// itself is length-agnostic.
type FermionTerm []LadderOp

// Key renders the term in its canonical text form, e.g. "2^ 0" for a†₂a₀.
// The scalar term renders as the empty string. Keys are stable and usable
// as map keys.
func (t FermionTerm) Key() string {
	if len(t) == 0 {
		return ""
	}
	var b strings.Builder
	for i, op := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(op.Orbital))
		if op.Creation {
			b.WriteByte('^')
		}
	}
	return b.String()
}

// Adjoint returns the Hermitian conjugate: factors reversed, creation and
// annihilation swapped.
func (t FermionTerm) Adjoint() FermionTerm {
	out := make(FermionTerm, 0, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		out = append(out, LadderOp{Orbital: t[i].Orbital, Creation: !t[i].Creation})
	}
	return out
}

// Clone returns an independent copy of the term.
func (t FermionTerm) Clone() FermionTerm {
	out := make(FermionTerm, len(t))
	copy(out, t)
	return out
}

type fermionEntry struct {
	ops   FermionTerm
	coeff complex128
}

// FermionOperator is a sum of fermionic terms, stored as a map from
// canonical term key to coefficient. The zero value is not usable; create
// instances with NewFermionOperator.
type FermionOperator struct {
	terms map[string]fermionEntry
}

// NewFermionOperator returns an empty fermionic operator.
func NewFermionOperator() *FermionOperator {
	return &FermionOperator{terms: make(map[string]fermionEntry)}
}

// Add accumulates coeff onto the given term.
func (f *FermionOperator) Add(term FermionTerm, coeff complex128) {
	key := term.Key()
	e, ok := f.terms[key]
	if !ok {
		e = fermionEntry{ops: term.Clone()}
	}
	e.coeff += coeff
	f.terms[key] = e
}

// Coefficient returns the coefficient of term, zero when absent.
func (f *FermionOperator) Coefficient(term FermionTerm) complex128 {
	return f.terms[term.Key()].coeff
}

// Len reports the number of stored terms.
func (f *FermionOperator) Len() int { return len(f.terms) }

// Terms returns every term in deterministic order: the scalar term first,
// then ascending by term length, then lexicographically by canonical key.
// The returned slices alias internal storage and must not be mutated.
func (f *FermionOperator) Terms() []FermionTerm {
	keys := make([]string, 0, len(f.terms))
	for k := range f.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := f.terms[keys[i]].ops, f.terms[keys[j]].ops
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return keys[i] < keys[j]
	})
	out := make([]FermionTerm, len(keys))
	for i, k := range keys {
		out[i] = f.terms[k].ops
	}
	return out
}

// Clone returns a deep copy of the operator.
func (f *FermionOperator) Clone() *FermionOperator {
	out := NewFermionOperator()
	for k, e := range f.terms {
		out.terms[k] = fermionEntry{ops: e.ops.Clone(), coeff: e.coeff}
	}
	return out
}

// Isolate returns a new operator holding only the given term with unit
// coefficient. The original coefficient is deliberately ignored: RDM
// extraction probes term structure, not magnitude.
func (f *FermionOperator) Isolate(term FermionTerm) *FermionOperator {
	out := NewFermionOperator()
	out.Add(term, 1)
	return out
}
