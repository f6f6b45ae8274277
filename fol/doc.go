// Package fol defines the term-level data model of the prover: symbols,
// variables, terms, atoms and literals, together with substitutions and
// Robinson unification.
//
// Terms form a small ADT: a Term is either a Var or a Fn application, a
// constant being a Fn with no arguments. Equality is a regular predicate
// with the reserved name "=", so the clause indexes treat it like any other
// atom while the inference rules that care about equality can still
// recognise it.
//
// Substitutions are kept idempotent: no variable bound by a substitution
// ever appears in one of its range terms. Unify returns the most general
// unifier of two terms, or reports failure; it never invents fresh
// variables, so the result is unique.
package fol
