// Command sorting sorts, merges and checks integer sequences with the comparator
// driven algorithms of github.com/yilinli22/sorting.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sorting [command]",
		Short:        "Comparator driven merge sort and quicksort",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog only honours its flags once the go flag set counts as parsed
			return flag.CommandLine.Parse(nil)
		},
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(verifyCmd)

	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
