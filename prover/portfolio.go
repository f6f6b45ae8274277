package prover

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// errRefuted cancels the remaining portfolio members once one instance has
// derived the empty clause.
var errRefuted = errors.New("refutation found")

// Portfolio runs one independent prover instance per heuristic over copies
// of the initial clause set and returns as soon as any instance proves the
// sequent, cancelling the others. No clause is ever shared between
// instances. When every instance exhausts its budget the verdict is Unsat
// and the returned prover is nil.
func Portfolio(ctx context.Context, initial []Input, cfg Config) (Verdict, *Prover) {
	g, ctx := errgroup.WithContext(ctx)
	won := make(chan *Prover, len(Heuristics()))
	for _, h := range Heuristics() {
		sub := cfg
		sub.Heuristic = h
		p := New(initial, sub)
		g.Go(func() error {
			if p.Solve(ctx) == Sat {
				won <- p
				return errRefuted
			}
			return nil
		})
	}
	err := g.Wait()
	close(won)
	if err != nil {
		return Sat, <-won
	}
	return Unsat, nil
}
