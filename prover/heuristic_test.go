package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fregelab/entail/fol"
)

func TestParseHeuristic(t *testing.T) {
	for _, h := range Heuristics() {
		got, err := ParseHeuristic(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
	_, err := ParseHeuristic("smallest_first")
	assert.Error(t, err)
}

func TestHeuristicScores(t *testing.T) {
	c := newClause(7, []fol.Literal{
		pos("P", fol.Fn{Sym: "f", Args: []fol.Term{fol.Var("x")}}),
		neg("Q", cst("a")),
	}, OriginDerived, ruleResolution, []int{1, 2}, nil, 3)
	// 2 literals, 5 symbols, depth 3.
	tests := []struct {
		h    Heuristic
		want int
	}{
		{PreferEmpty, 2},
		{Depth, 3},
		{DisjunctCount, 2},
		{SymbolCount, 5},
		{DisjunctCountPlusDepth, 5},
		{SymbolCountPlusDepth, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.h.score(c), "heuristic %s", tt.h)
	}

	// The empty clause scores 0 under every heuristic that ignores depth, so
	// it always wins under the literal-count based heuristics.
	empty := newClause(9, nil, OriginDerived, ruleResolution, []int{7}, nil, 4)
	assert.Equal(t, 0, PreferEmpty.score(empty))
	assert.Equal(t, 0, DisjunctCount.score(empty))
	assert.Equal(t, 0, SymbolCount.score(empty))
}

func TestQueueOrder(t *testing.T) {
	var q queue
	mk := func(id, prio int) *Clause {
		c := newClause(id, []fol.Literal{pos("A")}, OriginPremise, "premise", nil, nil, 0)
		c.prio = prio
		return c
	}
	q.insert(mk(3, 2))
	q.insert(mk(1, 1))
	q.insert(mk(2, 1))
	q.insert(mk(4, 0))

	var ids []int
	for !q.empty() {
		ids = append(ids, q.removeMin().ID)
	}
	// Lowest priority first, FIFO by identifier on ties.
	assert.Equal(t, []int{4, 1, 2, 3}, ids)
}
