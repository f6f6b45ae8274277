package prover

import "github.com/fregelab/entail/fol"

// A clauseSet holds the two clause stores of the given-clause algorithm:
// the passive queue of candidates and the active set of clauses available
// as inference partners. Active clauses are additionally indexed by the
// predicate names they use, split by polarity, so resolution only ever
// pairs clauses that share a predicate in complementary form.
//
// Discarding is lazy: backward subsumption marks a clause and every reader
// filters on the state, which keeps the heap and the index free of delete
// operations.
type clauseSet struct {
	passive queue
	active  []*Clause
	byPos   map[fol.Symbol][]*Clause
	byNeg   map[fol.Symbol][]*Clause
}

func newClauseSet() *clauseSet {
	return &clauseSet{
		byPos: map[fol.Symbol][]*Clause{},
		byNeg: map[fol.Symbol][]*Clause{},
	}
}

// insertPassive adds a clause to the passive queue. Redundancy checks are
// the caller's responsibility.
func (cs *clauseSet) insertPassive(c *Clause) {
	c.state = statePassive
	cs.passive.insert(c)
}

// popGiven removes and returns the lowest-priority live passive clause, or
// nil when the passive set is exhausted.
func (cs *clauseSet) popGiven() *Clause {
	for !cs.passive.empty() {
		c := cs.passive.removeMin()
		if c.state == statePassive {
			return c
		}
	}
	return nil
}

// activate moves a given clause into the active set and indexes its
// predicates.
func (cs *clauseSet) activate(c *Clause) {
	c.state = stateActive
	cs.active = append(cs.active, c)
	seenPos := map[fol.Symbol]struct{}{}
	seenNeg := map[fol.Symbol]struct{}{}
	for _, l := range c.Lits {
		if l.Neg {
			if _, ok := seenNeg[l.Atom.Pred]; ok {
				continue
			}
			seenNeg[l.Atom.Pred] = struct{}{}
			cs.byNeg[l.Atom.Pred] = append(cs.byNeg[l.Atom.Pred], c)
		} else {
			if _, ok := seenPos[l.Atom.Pred]; ok {
				continue
			}
			seenPos[l.Atom.Pred] = struct{}{}
			cs.byPos[l.Atom.Pred] = append(cs.byPos[l.Atom.Pred], c)
		}
	}
}

// liveActive calls fn for every active clause that has not been discarded.
func (cs *clauseSet) liveActive(fn func(*Clause)) {
	for _, c := range cs.active {
		if c.state == stateActive {
			fn(c)
		}
	}
}

// partners returns the live active clauses holding a literal over pred with
// the given polarity.
func (cs *clauseSet) partners(pred fol.Symbol, neg bool) []*Clause {
	idx := cs.byPos
	if neg {
		idx = cs.byNeg
	}
	var out []*Clause
	for _, c := range idx[pred] {
		if c.state == stateActive {
			out = append(out, c)
		}
	}
	return out
}

// forwardSubsumed reports whether some live clause in active or passive
// subsumes the candidate.
func (cs *clauseSet) forwardSubsumed(cand *Clause) bool {
	for _, c := range cs.active {
		if c.state == stateActive && subsumes(c, cand) {
			return true
		}
	}
	for _, c := range cs.passive.content {
		if c.state == statePassive && subsumes(c, cand) {
			return true
		}
	}
	return false
}

// backwardSubsume discards every live clause the candidate subsumes and
// returns how many clauses were dropped.
func (cs *clauseSet) backwardSubsume(cand *Clause) int {
	nb := 0
	for _, c := range cs.active {
		if c.state == stateActive && subsumes(cand, c) {
			c.state = stateDiscarded
			nb++
		}
	}
	for _, c := range cs.passive.content {
		if c.state == statePassive && subsumes(cand, c) {
			c.state = stateDiscarded
			nb++
		}
	}
	return nb
}

// redundant reports whether the given clause is subsumed by a live active
// clause. Used when a clause is popped from passive: a given clause made
// redundant since its insertion is discarded without charging a step.
func (cs *clauseSet) redundant(g *Clause) bool {
	for _, c := range cs.active {
		if c.state == stateActive && c != g && subsumes(c, g) {
			return true
		}
	}
	return false
}
