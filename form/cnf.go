package form

import (
	"fmt"
	"sort"

	"github.com/fregelab/entail/fol"
)

// DefaultDistributionCap bounds the number of clauses a single disjunction
// may expand to before defining predicates are introduced instead.
const DefaultDistributionCap = 64

// A RawClause is a clause as emitted by the normaliser: a disjunction of
// literals, tagged when it stems from the negated goal.
type RawClause struct {
	Lits        []fol.Literal
	NegatedGoal bool
}

// Clausify converts a sequent into an equisatisfiable set of clauses: the
// goal conjunction is negated and appended to the premises, free variables
// originating from the goal side are Skolemised into fresh constants, the
// whole conjunction is brought into negation normal form and distributed
// into clauses. If any equality atom occurs, the equality axioms
// (reflexivity, symmetry, transitivity and per-position congruence schemas
// for every observed symbol) are appended.
//
// cap bounds direct distribution; values < 1 select
// DefaultDistributionCap.
func Clausify(seq *Sequent, cap int) []RawClause {
	if cap < 1 {
		cap = DefaultDistributionCap
	}
	c := &clausifier{cap: cap}

	goal := And(seq.Conclusions...)
	goal = skolemise(Not(goal))

	var out []RawClause
	for _, prem := range seq.Premises {
		for _, lits := range c.cnf(prem.nnf()) {
			if clause, ok := cleanClause(lits); ok {
				out = append(out, RawClause{Lits: clause})
			}
		}
	}
	for _, lits := range c.cnf(goal.nnf()) {
		if clause, ok := cleanClause(lits); ok {
			out = append(out, RawClause{Lits: clause, NegatedGoal: true})
		}
	}
	if hasEquality(out) {
		out = append(out, equalityAxioms(out)...)
	}
	return out
}

type clausifier struct {
	cap    int
	nbDefs int
}

// cnf transforms an NNF formula into a set of clauses. Disjunctions whose
// direct distribution would exceed the cap are translated with fresh
// defining predicates instead, which keeps the expansion polynomial at the
// price of auxiliary symbols.
func (c *clausifier) cnf(f Formula) [][]fol.Literal {
	switch f := f.(type) {
	case atom:
		return [][]fol.Literal{{f.lit}}
	case trueConst:
		return nil
	case falseConst:
		return [][]fol.Literal{{}}
	case and:
		var res [][]fol.Literal
		for _, sub := range f {
			res = append(res, c.cnf(sub)...)
		}
		return res
	case or:
		subs := make([][][]fol.Literal, len(f))
		product := 1
		for i, sub := range f {
			subs[i] = c.cnf(sub)
			product *= len(subs[i])
		}
		if product <= c.cap {
			res := [][]fol.Literal{{}}
			for _, cnf := range subs {
				var next [][]fol.Literal
				for _, acc := range res {
					for _, clause := range cnf {
						merged := make([]fol.Literal, 0, len(acc)+len(clause))
						merged = append(merged, acc...)
						merged = append(merged, clause...)
						next = append(next, merged)
					}
				}
				res = next
			}
			return res
		}
		// Too many clauses: name each conjunctive branch with a defining
		// predicate over its free variables.
		var lits []fol.Literal
		var res [][]fol.Literal
		for i, cnf := range subs {
			if len(cnf) == 1 {
				lits = append(lits, cnf[0]...)
				continue
			}
			def := c.freshDef(f[i])
			lits = append(lits, fol.Pos(def))
			for _, clause := range cnf {
				named := make([]fol.Literal, 0, len(clause)+1)
				named = append(named, clause...)
				named = append(named, fol.Neg(def))
				res = append(res, named)
			}
		}
		return append(res, lits)
	default:
		panic("invalid NNF formula")
	}
}

// freshDef builds a new defining atom for the given subformula, carrying
// its free variables as arguments.
func (c *clausifier) freshDef(sub Formula) fol.Atom {
	c.nbDefs++
	vs := map[fol.Var]struct{}{}
	formulaVars(sub, vs)
	vars := fol.SortedVars(vs)
	args := make([]fol.Term, len(vars))
	for i, v := range vars {
		args[i] = v
	}
	return fol.Atom{Pred: fol.Symbol(fmt.Sprintf("def-%d", c.nbDefs)), Args: args}
}

// cleanClause drops duplicate literals and reports false when the clause is
// a tautology: it contains a literal and its negation, or a trivial
// positive equality.
func cleanClause(lits []fol.Literal) ([]fol.Literal, bool) {
	seen := make(map[string]struct{}, len(lits))
	out := make([]fol.Literal, 0, len(lits))
	for _, l := range lits {
		if l.IsTrivial() {
			return nil, false
		}
		if _, dup := seen[l.Key()]; dup {
			continue
		}
		if _, compl := seen[l.Negated().Key()]; compl {
			return nil, false
		}
		seen[l.Key()] = struct{}{}
		out = append(out, l)
	}
	return out, true
}

// skolemise replaces every free variable of the negated goal by a fresh
// Skolem constant. The surface has no binders, so goal-side variables are
// existential after negation and no function-valued Skolem terms are ever
// needed.
func skolemise(f Formula) Formula {
	vs := map[fol.Var]struct{}{}
	formulaVars(f, vs)
	if len(vs) == 0 {
		return f
	}
	s := fol.Subst{}
	for i, v := range fol.SortedVars(vs) {
		s[v] = fol.Const(fol.Symbol(fmt.Sprintf("sk-%d", i+1)))
	}
	return applySubst(f, s)
}

func applySubst(f Formula, s fol.Subst) Formula {
	switch f := f.(type) {
	case trueConst, falseConst:
		return f
	case atom:
		return atom{lit: s.ApplyLiteral(f.lit)}
	case not:
		return not{applySubst(f[0], s)}
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = applySubst(sub, s)
		}
		return and(subs)
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = applySubst(sub, s)
		}
		return or(subs)
	default:
		panic("invalid formula type")
	}
}

func formulaVars(f Formula, vs map[fol.Var]struct{}) {
	switch f := f.(type) {
	case trueConst, falseConst:
	case atom:
		f.lit.Vars(vs)
	case not:
		formulaVars(f[0], vs)
	case and:
		for _, sub := range f {
			formulaVars(sub, vs)
		}
	case or:
		for _, sub := range f {
			formulaVars(sub, vs)
		}
	default:
		panic("invalid formula type")
	}
}

func hasEquality(clauses []RawClause) bool {
	for _, c := range clauses {
		for _, l := range c.Lits {
			if l.Atom.IsEq() {
				return true
			}
		}
	}
	return false
}

// equalityAxioms builds reflexivity, symmetry, transitivity and the
// congruence schemas for every function and predicate symbol observed in
// the clause set, one clause per argument position.
func equalityAxioms(clauses []RawClause) []RawClause {
	x, y, z := fol.Var("x"), fol.Var("y"), fol.Var("z")
	out := []RawClause{
		{Lits: []fol.Literal{fol.Pos(fol.Eq(x, x))}},
		{Lits: []fol.Literal{fol.Neg(fol.Eq(x, y)), fol.Pos(fol.Eq(y, x))}},
		{Lits: []fol.Literal{fol.Neg(fol.Eq(x, y)), fol.Neg(fol.Eq(y, z)), fol.Pos(fol.Eq(x, z))}},
	}

	funs := map[fol.Symbol]int{}
	preds := map[fol.Symbol]int{}
	for _, c := range clauses {
		for _, l := range c.Lits {
			if !l.Atom.IsEq() {
				preds[l.Atom.Pred] = len(l.Atom.Args)
			}
			for _, t := range l.Atom.Args {
				collectFuns(t, funs)
			}
		}
	}

	for _, sym := range sortedSyms(funs) {
		arity := funs[sym]
		for i := 0; i < arity; i++ {
			lhs, rhs := congruenceArgs(arity, i, x, y)
			out = append(out, RawClause{Lits: []fol.Literal{
				fol.Neg(fol.Eq(x, y)),
				fol.Pos(fol.Eq(fol.Fn{Sym: sym, Args: lhs}, fol.Fn{Sym: sym, Args: rhs})),
			}})
		}
	}
	for _, sym := range sortedSyms(preds) {
		arity := preds[sym]
		for i := 0; i < arity; i++ {
			lhs, rhs := congruenceArgs(arity, i, x, y)
			out = append(out, RawClause{Lits: []fol.Literal{
				fol.Neg(fol.Eq(x, y)),
				fol.Neg(fol.Atom{Pred: sym, Args: lhs}),
				fol.Pos(fol.Atom{Pred: sym, Args: rhs}),
			}})
		}
	}
	return out
}

// congruenceArgs builds two argument lists differing only at position i,
// where they hold x and y respectively; every other position holds a shared
// fresh variable.
func congruenceArgs(arity, i int, x, y fol.Var) ([]fol.Term, []fol.Term) {
	lhs := make([]fol.Term, arity)
	rhs := make([]fol.Term, arity)
	for j := 0; j < arity; j++ {
		if j == i {
			lhs[j], rhs[j] = x, y
			continue
		}
		v := fol.Var(fmt.Sprintf("v%d", j+1))
		lhs[j], rhs[j] = v, v
	}
	return lhs, rhs
}

func collectFuns(t fol.Term, funs map[fol.Symbol]int) {
	fn, ok := t.(fol.Fn)
	if !ok {
		return
	}
	funs[fn.Sym] = len(fn.Args)
	for _, a := range fn.Args {
		collectFuns(a, funs)
	}
}

func sortedSyms(m map[fol.Symbol]int) []fol.Symbol {
	syms := make([]fol.Symbol, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
