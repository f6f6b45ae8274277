package prover

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fregelab/entail/fol"
)

// DefaultBudget is the step budget used when the configuration leaves it
// unset.
const DefaultBudget = 5000

// Verdict is the outcome of a prover run.
type Verdict byte

const (
	// Sat means the empty clause was derived: the sequent is entailed.
	Sat = Verdict(iota)
	// Unsat means no proof was found within the search budget.
	Unsat
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		panic("invalid verdict")
	}
}

// An Input is an initial clause handed to the prover by the normaliser.
type Input struct {
	Lits        []fol.Literal
	NegatedGoal bool
}

// Config tunes a prover instance.
type Config struct {
	// Heuristic selects the passive queue priority. The zero value is
	// PreferEmpty.
	Heuristic Heuristic
	// Budget bounds the number of given-clause iterations; 0 selects
	// DefaultBudget.
	Budget int
	// Timeout optionally bounds the wall-clock time of Solve; it is
	// checked at the top of each iteration.
	Timeout time.Duration
	// Logger receives structured progress logging; nil selects the
	// standard logger.
	Logger logrus.FieldLogger
}

// Stats count the work done during a run. They are provided for
// information purpose only.
type Stats struct {
	NbSteps            int // given-clause iterations charged
	NbGenerated        int // children generated by inference
	NbKept             int // clauses surviving redundancy checks
	NbTautologies      int // clauses dropped as tautologies
	NbForwardSubsumed  int // clauses dropped by forward subsumption
	NbBackwardSubsumed int // clauses discarded by backward subsumption
	NbRedundantGiven   int // given clauses discarded without charge
}

// A Prover saturates one clause set under one heuristic. Instances are not
// safe for concurrent use; run independent instances for a portfolio.
type Prover struct {
	Stats Stats

	cfg     Config
	set     *clauseSet
	all     map[int]*Clause // every kept clause, for the trace
	nextID  int
	nbFresh int
	emptyID int // id of the empty clause, -1 until derived
	log     logrus.FieldLogger
}

// New builds a prover over the initial clause set. Initial clauses pass
// the same redundancy filters as derived ones; an initial empty clause
// makes Solve return immediately.
func New(initial []Input, cfg Config) *Prover {
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultBudget
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &Prover{
		cfg:     cfg,
		set:     newClauseSet(),
		all:     map[int]*Clause{},
		emptyID: -1,
		log:     log.WithField("heuristic", cfg.Heuristic.String()),
	}
	for _, in := range initial {
		origin := OriginPremise
		if in.NegatedGoal {
			origin = OriginNegatedGoal
		}
		p.insert(in.Lits, origin, origin.String(), nil, nil, 0)
	}
	return p
}

// insert runs the redundancy checks on a candidate clause and stores the
// survivor. It returns nil when the candidate was dropped.
func (p *Prover) insert(lits []fol.Literal, origin Origin, rule string, parents []int, mgu fol.Subst, depth int) *Clause {
	c := newClause(p.nextID, lits, origin, rule, parents, mgu, depth)
	if c.IsTautology() {
		p.Stats.NbTautologies++
		return nil
	}
	if !c.IsEmpty() && p.set.forwardSubsumed(c) {
		p.Stats.NbForwardSubsumed++
		return nil
	}
	p.nextID++
	p.Stats.NbKept++
	p.all[c.ID] = c
	if c.IsEmpty() {
		p.emptyID = c.ID
		return c
	}
	p.Stats.NbBackwardSubsumed += p.set.backwardSubsume(c)
	c.prio = p.cfg.Heuristic.score(c)
	p.set.insertPassive(c)
	return c
}

// Solve runs the given-clause loop to completion. It returns Sat when the
// empty clause is derived and Unsat when the search space or any budget is
// exhausted; cancelling the context counts as budget exhaustion.
func (p *Prover) Solve(ctx context.Context) Verdict {
	if p.emptyID >= 0 {
		return p.finish(Sat, "initial")
	}
	var deadline time.Time
	if p.cfg.Timeout > 0 {
		deadline = time.Now().Add(p.cfg.Timeout)
	}
	for {
		if ctx != nil && ctx.Err() != nil {
			return p.finish(Unsat, "cancelled")
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return p.finish(Unsat, "deadline exceeded")
		}
		if p.Stats.NbSteps >= p.cfg.Budget {
			return p.finish(Unsat, "budget exceeded")
		}
		g := p.set.popGiven()
		if g == nil {
			return p.finish(Unsat, "saturated")
		}
		if p.set.redundant(g) {
			g.state = stateDiscarded
			p.Stats.NbRedundantGiven++
			continue
		}
		p.log.WithFields(logrus.Fields{
			"step":   p.Stats.NbSteps,
			"given":  g.ID,
			"clause": g.String(),
		}).Debug("given clause selected")

		children := p.resolvents(g)
		children = append(children, p.paramodulants(g)...)
		children = append(children, p.factors(g)...)
		children = append(children, p.reflexivityResolvents(g)...)
		p.Stats.NbGenerated += len(children)

		for _, child := range children {
			c := p.insert(child.lits, OriginDerived, child.rule, child.parents, child.mgu, child.depth)
			if c != nil && c.IsEmpty() {
				p.set.activate(g)
				p.Stats.NbSteps++
				return p.finish(Sat, "refutation found")
			}
		}
		p.set.activate(g)
		p.Stats.NbSteps++
	}
}

func (p *Prover) finish(v Verdict, reason string) Verdict {
	p.log.WithFields(logrus.Fields{
		"verdict":   v.String(),
		"reason":    reason,
		"steps":     p.Stats.NbSteps,
		"generated": p.Stats.NbGenerated,
		"kept":      p.Stats.NbKept,
	}).Info("search finished")
	return v
}
