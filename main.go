package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fregelab/entail/form"
	"github.com/fregelab/entail/prover"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	heuristic  string
	budget     int
	timeout    time.Duration
	cap        int
	verbose    bool
	portfolio  bool
	debug      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "entail [file]",
		Short: "entail decides sequents of first-order logic with equality by resolution",
		Long: `entail reads a sequent "premises |- conclusions", negates the goal,
converts the problem to clausal normal form and searches for a refutation by
heuristically guided resolution and paramodulation.

The first output line is the verdict: "sat" when the entailment was proved,
"unsat" when no proof was found within the budget. With --verbose a
successful run also prints the derivation of the empty clause.

The input is read from the given file, or from standard input when the
argument is absent or "-".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
	}
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", prover.PreferEmpty.String(),
		"clause selection heuristic: prefer_empty, depth, disjunct_count, symbol_count, disjunct_count_plus_depth or symbol_count_plus_depth")
	cmd.Flags().IntVar(&opts.budget, "budget", prover.DefaultBudget, "maximum number of given-clause iterations")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "wall-clock deadline for the search; 0 means none")
	cmd.Flags().IntVar(&opts.cap, "distribution-cap", form.DefaultDistributionCap,
		"clause expansion bound above which defining predicates are introduced")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print the derivation on success")
	cmd.Flags().BoolVar(&opts.portfolio, "portfolio", false, "run all heuristics in parallel and take the first proof")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging of the saturation loop")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file with defaults (default entail.yml if present)")
	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	logrus.SetOutput(os.Stderr)
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfgPath, explicit := defaultConfigFile, false
	if opts.configPath != "" {
		cfgPath, explicit = opts.configPath, true
	}
	fileCfg, err := loadConfig(cfgPath, explicit)
	if err != nil {
		return err
	}
	applyConfig(cmd, opts, fileCfg)

	heuristic, err := prover.ParseHeuristic(opts.heuristic)
	if err != nil {
		return err
	}
	if opts.budget <= 0 {
		return errors.Errorf("budget must be positive, got %d", opts.budget)
	}

	seq, err := parseInput(path)
	if err != nil {
		return err
	}
	initial := initialClauses(form.Clausify(seq, opts.cap))

	cfg := prover.Config{
		Heuristic: heuristic,
		Budget:    opts.budget,
		Timeout:   opts.timeout,
		Logger:    logrus.StandardLogger(),
	}

	var verdict prover.Verdict
	var winner *prover.Prover
	if opts.portfolio {
		verdict, winner = prover.Portfolio(context.Background(), initial, cfg)
	} else {
		winner = prover.New(initial, cfg)
		verdict = winner.Solve(context.Background())
	}

	fmt.Println(verdict)
	if opts.verbose && verdict == prover.Sat {
		if err := prover.WriteDerivation(os.Stdout, winner.Derivation()); err != nil {
			return errors.Wrap(err, "could not write derivation")
		}
	}
	return nil
}

// applyConfig fills in file-provided defaults for every flag the user did
// not set explicitly.
func applyConfig(cmd *cobra.Command, opts *options, cfg *fileConfig) {
	flags := cmd.Flags()
	if cfg.Heuristic != "" && !flags.Changed("heuristic") {
		opts.heuristic = cfg.Heuristic
	}
	if cfg.Budget > 0 && !flags.Changed("budget") {
		opts.budget = cfg.Budget
	}
	if cfg.Timeout != "" && !flags.Changed("timeout") {
		opts.timeout = cfg.timeout()
	}
	if cfg.DistributionCap > 0 && !flags.Changed("distribution-cap") {
		opts.cap = cfg.DistributionCap
	}
}

func parseInput(path string) (*form.Sequent, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %q", path)
		}
		defer f.Close()
		r = f
	}
	seq, err := form.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse sequent")
	}
	return seq, nil
}

func initialClauses(raw []form.RawClause) []prover.Input {
	initial := make([]prover.Input, len(raw))
	for i, c := range raw {
		initial[i] = prover.Input{Lits: c.Lits, NegatedGoal: c.NegatedGoal}
	}
	return initial
}
