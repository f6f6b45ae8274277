package form

import (
	"strings"

	"github.com/fregelab/entail/fol"
)

// A Formula is any kind of formula over predicates and equalities, not
// necessarily in any normal form.
type Formula interface {
	nnf() Formula
	String() string
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) nnf() Formula   { return t }
func (t trueConst) String() string { return "*" }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) nnf() Formula   { return f }
func (f falseConst) String() string { return "~" }

// An atom is a possibly negated predicate application or equality. It is
// the only kind of leaf carrying terms.
type atom struct {
	lit fol.Literal
}

// Atom wraps a predicate application or equality as a formula.
func Atom(a fol.Atom) Formula {
	return atom{lit: fol.Pos(a)}
}

func (a atom) nnf() Formula   { return a }
func (a atom) String() string { return a.lit.String() }

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case atom:
		return atom{lit: f.lit.Negated()}
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("invalid formula type")
	}
}

func (n not) String() string {
	return "!(" + n[0].String() + ")"
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case and: // "and"s in the "and" get to the higher level
			res = append(res, nnf...)
		case trueConst: // x & * == x
		case falseConst: // x & ~ == ~
			return False
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return True
	}
	return res
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = "(" + f.String() + ")"
	}
	return strings.Join(strs, " & ")
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case or: // "or"s in the "or" get to the higher level
			res = append(res, nnf...)
		case falseConst: // x | ~ == x
		case trueConst: // x | * == *
			return True
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return False
	}
	return res
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = "(" + f.String() + ")"
	}
	return strings.Join(strs, " | ")
}

// Implies indicates a subformula implies another one: a -> b == !a | b.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// RevImplies is the converse implication: a <- b == a | !b.
func RevImplies(f1, f2 Formula) Formula {
	return or{f1, not{f2}}
}

// Equiv indicates a subformula is equivalent to another one.
func Equiv(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// Xor indicates exactly one of the two given subformulas is true:
// a ^ b == (a & !b) | (!a & b).
func Xor(f1, f2 Formula) Formula {
	return or{and{f1, not{f2}}, and{not{f1}, f2}}
}
