package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yilinli22/sorting"
	"github.com/yilinli22/sorting/diff"
)

var verifyOrders = []string{"standard", "reverse", "lastdigit"}

// variant is one way of sorting checked by verify
type variant struct {
	name      string
	algorithm sorting.Algorithm
	recursion sorting.Recursion
}

var verifyVariants = []variant{
	{"merge", sorting.MergeSortAlgorithm, sorting.HybridRecursion},
	{"quick", sorting.QuickSortAlgorithm, sorting.HybridRecursion},
	{"quick-pure", sorting.QuickSortAlgorithm, sorting.QuickRecursion},
}

type verifyOptions struct {
	trials   int
	maxLen   int
	maxValue int
	seed     uint64
	workers  int
}

// verifyReport summarises a successful verify run
type verifyReport struct {
	Trials int64
	Checks int64
}

// trialError describes the first property a trial found violated
type trialError struct {
	Trial   int
	Order   string
	Variant string
	Reason  string
}

func (e *trialError) Error() string {
	return fmt.Sprintf("trial %d (%s order, %s): %s", e.Trial, e.Order, e.Variant, e.Reason)
}

// run checks sortedness, permutation, non-mutation and agreement between all
// variants on random inputs. Trials run on up to o.workers goroutines and the
// first failure cancels the remaining trials.
func (o *verifyOptions) run(ctx context.Context) (verifyReport, error) {
	if o.trials < 0 || o.maxLen < 0 || o.maxValue <= 0 || o.workers <= 0 {
		return verifyReport{}, fmt.Errorf("trials and max-len must be >= 0, max-value and workers > 0")
	}
	var trials, checks atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for t := 0; t < o.trials; t++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			n, err := o.trial(gctx, t)
			if err != nil {
				return err
			}
			trials.Add(1)
			checks.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return verifyReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return verifyReport{}, err
	}
	return verifyReport{Trials: trials.Load(), Checks: checks.Load()}, nil
}

// trial runs every order and variant on one random input and returns the number of checks made
func (o *verifyOptions) trial(ctx context.Context, t int) (int64, error) {
	r := rand.New(rand.NewPCG(o.seed, uint64(t)))
	in := make([]int, r.IntN(o.maxLen+1))
	for i := range in {
		in[i] = r.IntN(2*o.maxValue) - o.maxValue
	}
	orig := slices.Clone(in)
	canonical := sorting.MergeSortOrdered(in)

	var checks int64
	for _, order := range verifyOrders {
		c, err := sorting.ComparatorByName[int](order)
		if err != nil {
			return checks, err
		}
		var reference []int
		for _, v := range verifyVariants {
			if err := ctx.Err(); err != nil {
				return checks, err
			}
			fail := func(format string, args ...any) error {
				return &trialError{Trial: t, Order: order, Variant: v.name, Reason: fmt.Sprintf(format, args...)}
			}

			s, err := sorting.New(c, &sorting.Config{
				Recursion: v.recursion,
				Pivot:     sorting.SeededPivot(o.seed + uint64(t)),
				Strict:    true,
			})
			if err != nil {
				return checks, err
			}
			out, err := s.Sort(v.algorithm, in)
			if err != nil {
				return checks, fail("%v", err)
			}

			if !slices.Equal(in, orig) {
				return checks, fail("input modified: %s", formatInts(in))
			}
			if !sorting.IsSorted(out, c) {
				return checks, fail("output not sorted: %s", formatInts(out))
			}
			collect, items := diff.Collect[int]()
			if res, _ := diff.Ordered(canonical, sorting.MergeSortOrdered(out), collect); !res.Same() {
				return checks, fail("output is not a permutation of the input (%s): %v", res.String(), items())
			}
			// every variant is stable, so all of them agree element for element
			if reference == nil {
				reference = out
			} else if !slices.Equal(reference, out) {
				return checks, fail("output %s differs from %s output %s", formatInts(out), verifyVariants[0].name, formatInts(reference))
			}
			checks += 4
		}
	}
	glog.V(2).Infof("trial %d: %d items, %d checks passed", t, len(in), checks)
	return checks, nil
}

var verifyOpts verifyOptions

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks the sorting properties of every algorithm on random inputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("seed") {
			verifyOpts.seed = rand.Uint64()
		}
		glog.V(1).Infof("verify: %d trials on %d workers, seed %d", verifyOpts.trials, verifyOpts.workers, verifyOpts.seed)
		report, err := verifyOpts.run(cmd.Context())
		if err != nil {
			glog.Errorf("verify failed (seed %d): %v", verifyOpts.seed, err)
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trials, %d checks (seed %d)\n", report.Trials, report.Checks, verifyOpts.seed)
		return err
	},
}

func init() {
	verifyCmd.Flags().IntVar(&verifyOpts.trials, "trials", 100, "number of random inputs")
	verifyCmd.Flags().IntVar(&verifyOpts.maxLen, "max-len", 500, "maximum input length")
	verifyCmd.Flags().IntVar(&verifyOpts.maxValue, "max-value", 1000, "values are drawn from [-max-value, max-value)")
	verifyCmd.Flags().Uint64Var(&verifyOpts.seed, "seed", 0, "seed for inputs and pivots, random when unset")
	verifyCmd.Flags().IntVar(&verifyOpts.workers, "workers", 4, "trials run concurrently")
}
