package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/yilinli22/sorting"
)

// orderOptions selects the comparator and quicksort configuration
type orderOptions struct {
	order     string
	recursion string
	seed      uint64
	strict    bool
}

func (o *orderOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.order, "order", "standard", "ordering: standard, reverse or lastdigit")
	cmd.Flags().StringVar(&o.recursion, "recursion", "hybrid", "quicksort bucket sorting: hybrid or quick")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for quicksort pivots, 0 for a random seed")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on comparator results outside {-1, 0, 1}")
}

// sorter builds the Sorter described by the options
func (o *orderOptions) sorter() (*sorting.Sorter[int], error) {
	c, err := sorting.ComparatorByName[int](o.order)
	if err != nil {
		return nil, err
	}
	rec, err := sorting.ParseRecursion(o.recursion)
	if err != nil {
		return nil, err
	}
	config := &sorting.Config{Recursion: rec, Strict: o.strict}
	if o.seed != 0 {
		config.Pivot = sorting.SeededPivot(o.seed)
	}
	return sorting.New(c, config)
}

type sortOptions struct {
	orderOptions
	algorithm string
	unique    bool
}

// run sorts the concatenation of all inputs
func (o *sortOptions) run(runs [][]int) ([]int, error) {
	s, err := o.sorter()
	if err != nil {
		return nil, err
	}
	algo, err := sorting.ParseAlgorithm(o.algorithm)
	if err != nil {
		return nil, err
	}

	var xs []int
	for _, r := range runs {
		xs = append(xs, r...)
	}
	glog.V(1).Infof("sorting %d items with %s sort, %s order", len(xs), algo, o.order)

	out, err := s.Sort(algo, xs)
	if err != nil {
		return nil, fmt.Errorf("%s sort: %w", algo, err)
	}
	if o.unique {
		out = sorting.Uniq(out, s.Comparator())
	}
	return out, nil
}

var sortOpts sortOptions

var sortCmd = &cobra.Command{
	Use:   "sort [files...]",
	Short: "Sorts whitespace separated integers read from files or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := readFiles(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		out, err := sortOpts.run(runs)
		if err != nil {
			return err
		}
		return writeInts(cmd.OutOrStdout(), out)
	},
}

func init() {
	sortOpts.register(sortCmd)
	sortCmd.Flags().StringVar(&sortOpts.algorithm, "algorithm", "merge", "sorting algorithm: merge or quick")
	sortCmd.Flags().BoolVar(&sortOpts.unique, "unique", false, "drop items comparing equal to their predecessor")
}
