// Package prover implements the saturation engine: a given-clause loop over
// a passive priority queue and an active clause set, generating children by
// binary resolution, factoring, paramodulation and equality reflexivity
// until the empty clause is derived or the step budget runs out.
//
// The prover works on the clausal form of the negated entailment problem,
// so deriving the empty clause proves the original sequent: the verdict is
// then "sat". Exhausting the passive set or the budget yields "unsat".
//
// Each clause carries provenance (rule, parent identifiers, unifier), which
// lets the prover replay the derivation of the empty clause as a linear
// trace after a successful run. Clauses are immutable once created; every
// inference renames the active partner apart first, so parents are never
// affected by their children.
package prover
