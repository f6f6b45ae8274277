package prover

import "github.com/fregelab/entail/fol"

// Rule names recorded in clause provenance.
const (
	ruleResolution  = "resolution"
	ruleFactoring   = "factoring"
	ruleParamod     = "paramodulation"
	ruleReflexivity = "reflexivity"
)

// An inference is a generated child before redundancy filtering: the
// literals of the candidate clause plus its provenance record.
type inference struct {
	lits    []fol.Literal
	rule    string
	parents []int
	mgu     fol.Subst
	depth   int
}

// applyLits applies s to all literals except the one at index skip;
// skip < 0 keeps every literal.
func applyLits(s fol.Subst, lits []fol.Literal, skip int) []fol.Literal {
	out := make([]fol.Literal, 0, len(lits))
	for i, l := range lits {
		if i == skip {
			continue
		}
		out = append(out, s.ApplyLiteral(l))
	}
	return out
}

func childDepth(a, b int) int {
	if a > b {
		return a + 1
	}
	return b + 1
}

// resolvents generates all binary resolvents between the given clause and
// the active set: for every literal of g, every active clause holding the
// same predicate with opposite polarity is renamed apart and every
// unifiable literal pair contributes one child.
func (p *Prover) resolvents(g *Clause) []inference {
	var out []inference
	for i, li := range g.Lits {
		for _, d := range p.set.partners(li.Atom.Pred, !li.Neg) {
			renamed := renameApart(d.Lits, &p.nbFresh)
			for j, mj := range renamed {
				if mj.Neg == li.Neg || mj.Atom.Pred != li.Atom.Pred {
					continue
				}
				sigma, ok := fol.UnifyAtoms(li.Atom, mj.Atom)
				if !ok {
					continue
				}
				lits := applyLits(sigma, g.Lits, i)
				lits = append(lits, applyLits(sigma, renamed, j)...)
				out = append(out, inference{
					lits:    lits,
					rule:    ruleResolution,
					parents: []int{g.ID, d.ID},
					mgu:     sigma,
					depth:   childDepth(g.Depth, d.Depth),
				})
			}
		}
	}
	return out
}

// factors generates all factors of the given clause: for every pair of
// same-polarity literals with a unifier, the second literal is dropped and
// the unifier applied.
func (p *Prover) factors(g *Clause) []inference {
	var out []inference
	for i := 0; i < len(g.Lits); i++ {
		for j := i + 1; j < len(g.Lits); j++ {
			if g.Lits[i].Neg != g.Lits[j].Neg {
				continue
			}
			sigma, ok := fol.UnifyAtoms(g.Lits[i].Atom, g.Lits[j].Atom)
			if !ok {
				continue
			}
			out = append(out, inference{
				lits:    applyLits(sigma, g.Lits, j),
				rule:    ruleFactoring,
				parents: []int{g.ID},
				mgu:     sigma,
				depth:   g.Depth + 1,
			})
		}
	}
	return out
}

// reflexivityResolvents resolves negative equality literals of the given
// clause against reflexivity: for s != t with sigma = mgu(s, t), the
// literal is dropped and sigma applied. This closes proofs reducing to
// !(x == x).
func (p *Prover) reflexivityResolvents(g *Clause) []inference {
	var out []inference
	for i, l := range g.Lits {
		if !l.Neg || !l.Atom.IsEq() {
			continue
		}
		sigma := fol.Subst{}
		if !fol.Unify(l.Atom.Args[0], l.Atom.Args[1], sigma) {
			continue
		}
		out = append(out, inference{
			lits:    applyLits(sigma, g.Lits, i),
			rule:    ruleReflexivity,
			parents: []int{g.ID},
			mgu:     sigma,
			depth:   g.Depth + 1,
		})
	}
	return out
}

// paramodulants generates all paramodulation children between the given
// clause and the active set, in both roles: g providing the equality and g
// being rewritten.
func (p *Prover) paramodulants(g *Clause) []inference {
	var out []inference
	cs := p.set
	for _, d := range cs.partners(fol.EqPred, false) {
		// d holds a positive equality: rewrite g with it.
		renamed := renameApart(d.Lits, &p.nbFresh)
		out = append(out, p.paramodulate(renamed, d, g.Lits, g)...)
	}
	if hasPositiveEq(g.Lits) {
		cs.liveActive(func(d *Clause) {
			renamed := renameApart(d.Lits, &p.nbFresh)
			out = append(out, p.paramodulate(g.Lits, g, renamed, d)...)
		})
	}
	return out
}

func hasPositiveEq(lits []fol.Literal) bool {
	for _, l := range lits {
		if !l.Neg && l.Atom.IsEq() {
			return true
		}
	}
	return false
}

// paramodulate rewrites subterms of the target literals using every
// positive equality of the source literals, in both orientations. The
// source and target literal sets are already renamed apart. Rewriting from
// a variable side is skipped: it would unify with every subterm without
// contributing anything the equality axioms do not already cover.
func (p *Prover) paramodulate(src []fol.Literal, srcClause *Clause, tgt []fol.Literal, tgtClause *Clause) []inference {
	var out []inference
	for ei, eq := range src {
		if eq.Neg || !eq.Atom.IsEq() {
			continue
		}
		l, r := eq.Atom.Args[0], eq.Atom.Args[1]
		for _, ori := range [][2]fol.Term{{l, r}, {r, l}} {
			s, t := ori[0], ori[1]
			if _, isVar := s.(fol.Var); isVar {
				continue
			}
			tried := map[string]struct{}{}
			for _, m := range tgt {
				for _, arg := range m.Atom.Args {
					for _, u := range fol.Subterms(arg, nil) {
						if _, isVar := u.(fol.Var); isVar {
							continue
						}
						if _, dup := tried[u.String()]; dup {
							continue
						}
						tried[u.String()] = struct{}{}
						sigma := fol.Subst{}
						if !fol.Unify(s, u, sigma) {
							continue
						}
						lits := applyLits(sigma, src, ei)
						for _, tl := range tgt {
							args := make([]fol.Term, len(tl.Atom.Args))
							for k, a := range tl.Atom.Args {
								args[k] = fol.ReplaceTerm(a, u, t)
							}
							repl := fol.Literal{Neg: tl.Neg, Atom: fol.Atom{Pred: tl.Atom.Pred, Args: args}}
							lits = append(lits, sigma.ApplyLiteral(repl))
						}
						out = append(out, inference{
							lits:    lits,
							rule:    ruleParamod,
							parents: []int{srcClause.ID, tgtClause.ID},
							mgu:     sigma,
							depth:   childDepth(srcClause.Depth, tgtClause.Depth),
						})
					}
				}
			}
		}
	}
	return out
}
