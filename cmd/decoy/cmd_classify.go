package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/classify"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <key>...",
	Short: "Show the tracking category of query-parameter keys",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, k := range args {
			m := classify.Explain(k)
			if m.Category == classify.None {
				fmt.Fprintf(out, "%-24s none\n", k)
				continue
			}
			fmt.Fprintf(out, "%-24s %-9s %s", k, m.Category, m.Level)
			if m.Rule != "" {
				fmt.Fprintf(out, " %s", m.Rule)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
