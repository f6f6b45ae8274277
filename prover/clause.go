package prover

import (
	"fmt"
	"strings"

	"github.com/fregelab/entail/fol"
)

// Origin says where a clause entered the search.
type Origin byte

const (
	// OriginPremise marks clauses stemming from the premise list or from
	// the automatically added equality axioms.
	OriginPremise = Origin(iota)
	// OriginNegatedGoal marks clauses stemming from the negated goal.
	OriginNegatedGoal
	// OriginDerived marks clauses generated by an inference rule.
	OriginDerived
)

func (o Origin) String() string {
	switch o {
	case OriginPremise:
		return "premise"
	case OriginNegatedGoal:
		return "negated-goal"
	case OriginDerived:
		return "derived"
	default:
		panic("invalid origin")
	}
}

// state tracks the clause lifecycle: passive -> active, or discarded.
type state byte

const (
	statePassive = state(iota)
	stateActive
	stateDiscarded
)

// A Clause is an unordered disjunction of literals together with its
// provenance and metrics cached at creation. Clauses are immutable after
// construction.
type Clause struct {
	ID      int
	Lits    []fol.Literal
	Origin  Origin
	Rule    string    // inference rule, or the origin tag for initial clauses
	Parents []int     // parent clause identifiers
	Mgu     fol.Subst // unifier used by the inference, nil for initial clauses
	Depth   int       // 1 + max parent depth; initial clauses have depth 0
	SymCnt  int       // total symbol occurrences across all literals

	state state
	prio  int // heuristic priority, fixed at insertion into passive
}

// newClause builds a clause, eagerly dropping duplicate literals and
// caching the derived metrics.
func newClause(id int, lits []fol.Literal, origin Origin, rule string, parents []int, mgu fol.Subst, depth int) *Clause {
	seen := make(map[string]struct{}, len(lits))
	kept := make([]fol.Literal, 0, len(lits))
	symCnt := 0
	for _, l := range lits {
		if _, dup := seen[l.Key()]; dup {
			continue
		}
		seen[l.Key()] = struct{}{}
		kept = append(kept, l)
		symCnt += l.Size()
	}
	return &Clause{
		ID:      id,
		Lits:    kept,
		Origin:  origin,
		Rule:    rule,
		Parents: parents,
		Mgu:     mgu,
		Depth:   depth,
		SymCnt:  symCnt,
	}
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.Lits) }

// IsEmpty reports whether c is the empty clause.
func (c *Clause) IsEmpty() bool { return len(c.Lits) == 0 }

// IsTautology reports whether the clause contains a literal and its
// negation, or a trivial positive equality.
func (c *Clause) IsTautology() bool {
	keys := make(map[string]struct{}, len(c.Lits))
	for _, l := range c.Lits {
		keys[l.Key()] = struct{}{}
	}
	for _, l := range c.Lits {
		if l.IsTrivial() {
			return true
		}
		if _, ok := keys[l.Negated().Key()]; ok {
			return true
		}
	}
	return false
}

func (c *Clause) String() string {
	if len(c.Lits) == 0 {
		return "~"
	}
	strs := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		strs[i] = l.String()
	}
	return strings.Join(strs, " | ")
}

// subsumes reports whether some instance of d is a sub-multiset of c.
func subsumes(d, c *Clause) bool {
	if len(d.Lits) > len(c.Lits) {
		return false
	}
	used := make([]bool, len(c.Lits))
	return subsumeRec(d.Lits, 0, c, used, fol.Subst{})
}

func subsumeRec(lits []fol.Literal, i int, c *Clause, used []bool, s fol.Subst) bool {
	if i == len(lits) {
		return true
	}
	for j, cl := range c.Lits {
		if used[j] {
			continue
		}
		ext := s.Clone()
		if !fol.MatchLiteral(lits[i], cl, ext) {
			continue
		}
		used[j] = true
		if subsumeRec(lits, i+1, c, used, ext) {
			return true
		}
		used[j] = false
	}
	return false
}

// renameApart returns the clause literals with every variable replaced by a
// fresh one drawn from the prover-wide counter, so two parents of an
// inference never share variable names.
func renameApart(lits []fol.Literal, nbFresh *int) []fol.Literal {
	vs := map[fol.Var]struct{}{}
	for _, l := range lits {
		l.Vars(vs)
	}
	if len(vs) == 0 {
		return lits
	}
	s := make(fol.Subst, len(vs))
	for _, v := range fol.SortedVars(vs) {
		*nbFresh++
		s[v] = fol.Var(fmt.Sprintf("_%d", *nbFresh))
	}
	out := make([]fol.Literal, len(lits))
	for i, l := range lits {
		out[i] = s.ApplyLiteral(l)
	}
	return out
}
