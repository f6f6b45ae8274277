// Package form offers the surface syntax and the clausal normal form
// pipeline of the prover.
//
// A sequent "P1, ..., Pn |- C1, ..., Cm" is parsed into formulas over
// predicates, equalities and the connectives not, and, or, xor, implication
// (both directions) and equivalence. Clausify then negates the goal,
// converts the whole conjunction to negation normal form, Skolemises the
// free variables that originate from the goal side, and distributes
// disjunctions over conjunctions into a set of clauses. Distribution is
// direct while the expansion stays small; past a configurable cap fresh
// defining predicates are introduced instead, keeping the translation
// polynomial.
//
// The package depends only on fol; the prover consumes the emitted raw
// clauses without ever importing form.
package form
