package fol

import (
	"fmt"
	"strings"
)

// A Subst maps variables to terms. Substitutions are kept idempotent: no
// variable of the domain appears in any range term. Bind and Compose
// preserve this invariant; Apply relies on it to terminate in one pass.
type Subst map[Var]Term

// Apply returns t with every bound variable replaced by its image. The
// input term is never mutated.
func (s Subst) Apply(t Term) Term {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case Var:
		if img, ok := s[t]; ok {
			return img
		}
		return t
	case Fn:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = s.Apply(a)
		}
		return Fn{Sym: t.Sym, Args: args}
	default:
		panic("invalid term type")
	}
}

// ApplyAtom applies the substitution pointwise to the atom's arguments.
func (s Subst) ApplyAtom(a Atom) Atom {
	if len(s) == 0 || len(a.Args) == 0 {
		return a
	}
	args := make([]Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = s.Apply(t)
	}
	return Atom{Pred: a.Pred, Args: args}
}

// ApplyLiteral applies the substitution to the literal's atom.
func (s Subst) ApplyLiteral(l Literal) Literal {
	return Literal{Neg: l.Neg, Atom: s.ApplyAtom(l.Atom)}
}

// Bind extends the substitution with v := t and returns false when the
// binding would violate idempotence: v already bound, or v occurring in t
// after applying the current substitution. On success the existing range
// terms are rewritten so the invariant keeps holding.
func (s Subst) Bind(v Var, t Term) bool {
	if _, ok := s[v]; ok {
		return false
	}
	t = s.Apply(t)
	if Occurs(v, t) {
		return false
	}
	one := Subst{v: t}
	for w, img := range s {
		s[w] = one.Apply(img)
	}
	s[v] = t
	return true
}

// Compose returns the substitution equivalent to applying s, then t.
func (s Subst) Compose(t Subst) Subst {
	out := make(Subst, len(s)+len(t))
	for v, img := range s {
		out[v] = t.Apply(img)
	}
	for v, img := range t {
		if _, ok := out[v]; !ok {
			out[v] = img
		}
	}
	return out
}

// Clone returns a shallow copy of the substitution. Terms are immutable, so
// sharing them is safe.
func (s Subst) Clone() Subst {
	out := make(Subst, len(s))
	for v, img := range s {
		out[v] = img
	}
	return out
}

// String renders the substitution as {x = t, ...} with variables in
// lexicographic order, so traces are reproducible.
func (s Subst) String() string {
	if len(s) == 0 {
		return "{}"
	}
	vs := make(map[Var]struct{}, len(s))
	for v := range s {
		vs[v] = struct{}{}
	}
	strs := make([]string, 0, len(s))
	for _, v := range SortedVars(vs) {
		strs = append(strs, fmt.Sprintf("%s = %s", v, s[v]))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
