package fol

// Unify computes the most general unifier of a and b, extending the given
// substitution in place. It reports false on functor or arity mismatch and
// when the occurs check triggers; the substitution may then be partially
// extended and must be discarded by the caller.
func Unify(a, b Term, s Subst) bool {
	a = s.Apply(a)
	b = s.Apply(b)
	switch a := a.(type) {
	case Var:
		if v, ok := b.(Var); ok && v == a {
			return true
		}
		return s.Bind(a, b)
	case Fn:
		switch b := b.(type) {
		case Var:
			return s.Bind(b, a)
		case Fn:
			if a.Sym != b.Sym || len(a.Args) != len(b.Args) {
				return false
			}
			for i := range a.Args {
				if !Unify(a.Args[i], b.Args[i], s) {
					return false
				}
			}
			return true
		}
	}
	panic("invalid term type")
}

// UnifyTerms unifies two argument lists pairwise.
func UnifyTerms(a, b []Term, s Subst) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Unify(a[i], b[i], s) {
			return false
		}
	}
	return true
}

// UnifyAtoms returns the MGU of two atoms, or nil and false when they do not
// unify. Equality atoms unify as ordered pairs; trying the swapped
// orientation is up to the caller.
func UnifyAtoms(a, b Atom) (Subst, bool) {
	if a.Pred != b.Pred || len(a.Args) != len(b.Args) {
		return nil, false
	}
	s := Subst{}
	if !UnifyTerms(a.Args, b.Args, s) {
		return nil, false
	}
	return s, true
}

// Match extends s so that s(a) equals b, binding variables of a only. It is
// one-way unification, used by subsumption. Reports false when no such
// extension exists; s may then be partially extended.
func Match(a, b Term, s Subst) bool {
	switch a := a.(type) {
	case Var:
		if img, ok := s[a]; ok {
			return TermEqual(img, b)
		}
		s[a] = b
		return true
	case Fn:
		b, ok := b.(Fn)
		if !ok || a.Sym != b.Sym || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Match(a.Args[i], b.Args[i], s) {
				return false
			}
		}
		return true
	default:
		panic("invalid term type")
	}
}

// MatchLiteral extends s so that s(a) equals b literally.
func MatchLiteral(a, b Literal, s Subst) bool {
	if a.Neg != b.Neg || a.Atom.Pred != b.Atom.Pred || len(a.Atom.Args) != len(b.Atom.Args) {
		return false
	}
	for i := range a.Atom.Args {
		if !Match(a.Atom.Args[i], b.Atom.Args[i], s) {
			return false
		}
	}
	return true
}

// AlphaEqual reports whether a and b are equal up to a consistent renaming
// of variables.
func AlphaEqual(a, b Term) bool {
	fwd := map[Var]Var{}
	bwd := map[Var]Var{}
	return alphaEqual(a, b, fwd, bwd)
}

func alphaEqual(a, b Term, fwd, bwd map[Var]Var) bool {
	switch a := a.(type) {
	case Var:
		bv, ok := b.(Var)
		if !ok {
			return false
		}
		if img, seen := fwd[a]; seen {
			return img == bv
		}
		if _, taken := bwd[bv]; taken {
			return false
		}
		fwd[a] = bv
		bwd[bv] = a
		return true
	case Fn:
		bf, ok := b.(Fn)
		if !ok || a.Sym != bf.Sym || len(a.Args) != len(bf.Args) {
			return false
		}
		for i := range a.Args {
			if !alphaEqual(a.Args[i], bf.Args[i], fwd, bwd) {
				return false
			}
		}
		return true
	default:
		panic("invalid term type")
	}
}
