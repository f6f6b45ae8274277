package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fregelab/entail/fol"
)

// activateAllAndGiven drains the passive queue into the active set without running
// inferences, then returns a fresh given clause built from lits.
func (p *Prover) activateAllAndGiven(lits []fol.Literal) *Clause {
	for {
		c := p.set.popGiven()
		if c == nil {
			break
		}
		p.set.activate(c)
	}
	g := newClause(p.nextID, lits, OriginDerived, "premise", nil, nil, 0)
	p.nextID++
	return g
}

func TestResolvents(t *testing.T) {
	x, a := fol.Var("x"), cst("a")
	p := testProver(t, []fol.Literal{neg("P", x), pos("Q", x)})
	g := p.activateAllAndGiven([]fol.Literal{pos("P", a)})

	children := p.resolvents(g)
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, ruleResolution, child.rule)
	require.Len(t, child.lits, 1)
	assert.Equal(t, fol.Symbol("Q"), child.lits[0].Atom.Pred)
	assert.True(t, fol.TermEqual(a, child.lits[0].Atom.Args[0]))
	assert.Equal(t, 1, child.depth)
}

func TestResolventsNoSharedVariables(t *testing.T) {
	// Both parents use :x; renaming apart must keep the given clause's :x
	// distinct from the partner's.
	x := fol.Var("x")
	p := testProver(t, []fol.Literal{neg("P", x), pos("Q", x)})
	g := p.activateAllAndGiven([]fol.Literal{pos("P", fol.Fn{Sym: "f", Args: []fol.Term{x}})})

	children := p.resolvents(g)
	require.Len(t, children, 1)
	// Child is Q(f(:x)): the partner's :x was bound to f(:x) of the given
	// clause, which would have failed the occurs check without renaming.
	require.Len(t, children[0].lits, 1)
	fn, ok := children[0].lits[0].Atom.Args[0].(fol.Fn)
	require.True(t, ok)
	assert.Equal(t, fol.Symbol("f"), fn.Sym)
}

func TestFactors(t *testing.T) {
	x, a := fol.Var("x"), cst("a")
	p := testProver(t)
	g := p.activateAllAndGiven([]fol.Literal{pos("P", x), pos("P", a), neg("Q")})

	children := p.factors(g)
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, ruleFactoring, child.rule)

	c := newClause(99, child.lits, OriginDerived, child.rule, child.parents, child.mgu, child.depth)
	assert.Equal(t, "P(a) | !Q", c.String())
}

func TestReflexivityResolvents(t *testing.T) {
	x, a := fol.Var("x"), cst("a")
	p := testProver(t)
	g := p.activateAllAndGiven([]fol.Literal{fol.Neg(fol.Eq(x, a)), pos("P", x)})

	children := p.reflexivityResolvents(g)
	require.Len(t, children, 1)
	child := children[0]
	assert.Equal(t, ruleReflexivity, child.rule)
	c := newClause(99, child.lits, OriginDerived, child.rule, child.parents, child.mgu, child.depth)
	assert.Equal(t, "P(a)", c.String())

	// A positive equality is not touched by reflexivity resolution.
	g = p.activateAllAndGiven([]fol.Literal{fol.Pos(fol.Eq(x, a))})
	assert.Empty(t, p.reflexivityResolvents(g))
}

func TestParamodulants(t *testing.T) {
	a, b := cst("a"), cst("b")
	p := testProver(t, []fol.Literal{pos("P", a)})
	g := p.activateAllAndGiven([]fol.Literal{fol.Pos(fol.Eq(a, b))})

	children := p.paramodulants(g)
	var got []string
	for _, child := range children {
		c := newClause(99, child.lits, OriginDerived, child.rule, child.parents, child.mgu, child.depth)
		got = append(got, c.String())
	}
	// Rewriting P(a) with a == b yields P(b); the reverse orientation has
	// no b to rewrite.
	assert.Contains(t, got, "P(b)")
	for _, child := range children {
		assert.Equal(t, ruleParamod, child.rule)
	}
}

func TestParamodulantsIntoGiven(t *testing.T) {
	a, b := cst("a"), cst("b")
	p := testProver(t, []fol.Literal{fol.Pos(fol.Eq(a, b))})
	g := p.activateAllAndGiven([]fol.Literal{neg("P", b)})

	children := p.paramodulants(g)
	var got []string
	for _, child := range children {
		c := newClause(99, child.lits, OriginDerived, child.rule, child.parents, child.mgu, child.depth)
		got = append(got, c.String())
	}
	// The active equality rewrites the given clause: b == a orientation
	// turns !P(b) into !P(a).
	assert.Contains(t, got, "!P(a)")
}
