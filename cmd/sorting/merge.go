package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/yilinli22/sorting"
)

type mergeOptions struct {
	orderOptions
	unique bool
}

// run merges runs that must each already be sorted by the selected order
func (o *mergeOptions) run(names []string, runs [][]int) ([]int, error) {
	s, err := o.sorter()
	if err != nil {
		return nil, err
	}
	for i, r := range runs {
		if !sorting.IsSorted(r, s.Comparator()) {
			name := "stdin"
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("%s is not sorted in %s order", name, o.order)
		}
	}
	glog.V(1).Infof("merging %d runs in %s order", len(runs), o.order)

	out, err := s.MergeAll(runs)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	if o.unique {
		out = sorting.Uniq(out, s.Comparator())
	}
	return out, nil
}

var mergeOpts mergeOptions

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merges files that are each already sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := readFiles(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		out, err := mergeOpts.run(args, runs)
		if err != nil {
			return err
		}
		return writeInts(cmd.OutOrStdout(), out)
	},
}

func init() {
	mergeOpts.register(mergeCmd)
	mergeCmd.Flags().BoolVar(&mergeOpts.unique, "unique", false, "drop items comparing equal to their predecessor")
}
