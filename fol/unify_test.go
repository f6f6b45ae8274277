package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fn(sym Symbol, args ...Term) Term { return Fn{Sym: sym, Args: args} }

func TestUnifyAtoms(t *testing.T) {
	tests := []struct {
		name string
		a, b Atom
		ok   bool
		want Subst
	}{
		{
			name: "ground identical",
			a:    Atom{Pred: "P", Args: []Term{Const("a")}},
			b:    Atom{Pred: "P", Args: []Term{Const("a")}},
			ok:   true,
			want: Subst{},
		},
		{
			name: "ground mismatch",
			a:    Atom{Pred: "P", Args: []Term{Const("a")}},
			b:    Atom{Pred: "P", Args: []Term{Const("b")}},
			ok:   false,
		},
		{
			name: "predicate mismatch",
			a:    Atom{Pred: "P", Args: []Term{Const("a")}},
			b:    Atom{Pred: "Q", Args: []Term{Const("a")}},
			ok:   false,
		},
		{
			name: "arity mismatch",
			a:    Atom{Pred: "P", Args: []Term{Const("a")}},
			b:    Atom{Pred: "P", Args: []Term{Const("a"), Const("b")}},
			ok:   false,
		},
		{
			name: "var binds constant",
			a:    Atom{Pred: "P", Args: []Term{Var("x")}},
			b:    Atom{Pred: "P", Args: []Term{Const("a")}},
			ok:   true,
			want: Subst{"x": Const("a")},
		},
		{
			name: "swapped arguments",
			a:    Atom{Pred: "P", Args: []Term{fn("f", Var("x"), Var("y"))}},
			b:    Atom{Pred: "P", Args: []Term{fn("f", Var("y"), Var("x"))}},
			ok:   true,
		},
		{
			name: "occurs check",
			a:    Atom{Pred: "P", Args: []Term{Var("x")}},
			b:    Atom{Pred: "P", Args: []Term{fn("f", Var("x"))}},
			ok:   false,
		},
		{
			name: "nested",
			a:    Atom{Pred: "P", Args: []Term{fn("f", Var("x")), Var("x")}},
			b:    Atom{Pred: "P", Args: []Term{fn("f", Const("a")), Var("y")}},
			ok:   true,
			want: Subst{"x": Const("a"), "y": Const("a")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := UnifyAtoms(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			// Soundness: the unifier must equalise both atoms.
			assert.True(t, AtomEqual(s.ApplyAtom(tt.a), s.ApplyAtom(tt.b)),
				"unifier %v does not equalise %v and %v", s, tt.a, tt.b)
			if tt.want != nil {
				assert.Equal(t, tt.want, s)
			}
		})
	}
}

func TestUnifyMostGeneral(t *testing.T) {
	// unify(f(:x, b), f(a, :y)) must not bind more than {x = a, y = b}.
	a := fn("f", Var("x"), Const("b"))
	b := fn("f", Const("a"), Var("y"))
	s := Subst{}
	require.True(t, Unify(a, b, s))
	require.Equal(t, Subst{"x": Const("a"), "y": Const("b")}, s)

	// Any other unifier tau factors through s: here tau = s itself composed
	// with the empty substitution.
	tau := Subst{"x": Const("a"), "y": Const("b")}
	require.Equal(t, tau, s.Compose(Subst{}))
}

func TestUnifyIdempotent(t *testing.T) {
	// After unification no domain variable may appear in a range term.
	s := Subst{}
	require.True(t, Unify(fn("f", Var("x"), Var("x")), fn("f", Var("y"), fn("g", Var("z"))), s))
	for v := range s {
		for _, img := range s {
			assert.False(t, Occurs(v, img), "substitution %v is not idempotent", s)
		}
	}
}

func TestMatchLiteral(t *testing.T) {
	pat := Pos(Atom{Pred: "P", Args: []Term{Var("x"), Var("x")}})
	lit := Pos(Atom{Pred: "P", Args: []Term{Const("a"), Const("a")}})
	s := Subst{}
	require.True(t, MatchLiteral(pat, lit, s))
	require.Equal(t, Subst{"x": Const("a")}, s)

	// Matching binds pattern variables only: P(a) does not match P(:x).
	s = Subst{}
	require.False(t, MatchLiteral(
		Pos(Atom{Pred: "P", Args: []Term{Const("a")}}),
		Pos(Atom{Pred: "P", Args: []Term{Var("x")}}), s))

	// Inconsistent bindings fail.
	s = Subst{}
	require.False(t, MatchLiteral(pat,
		Pos(Atom{Pred: "P", Args: []Term{Const("a"), Const("b")}}), s))
}

func TestAlphaEqual(t *testing.T) {
	assert.True(t, AlphaEqual(fn("f", Var("x"), Var("y")), fn("f", Var("u"), Var("v"))))
	assert.True(t, AlphaEqual(fn("f", Var("x"), Var("x")), fn("f", Var("u"), Var("u"))))
	assert.False(t, AlphaEqual(fn("f", Var("x"), Var("x")), fn("f", Var("u"), Var("v"))))
	assert.False(t, AlphaEqual(fn("f", Var("x"), Var("y")), fn("f", Var("u"), Var("u"))))
	assert.False(t, AlphaEqual(fn("f", Var("x")), fn("g", Var("x"))))
}
