package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/render"
	"github.com/jcadam/decoy/pkg/rewrite"
)

var (
	checkExplain bool
	checkFail    bool
)

// errTrackingFound makes `check --fail` exit non-zero.
var errTrackingFound = errors.New("tracking parameters found")

func init() {
	checkCmd.Flags().BoolVar(&checkExplain, "explain", false, "Show which rule matched each parameter")
	checkCmd.Flags().BoolVar(&checkFail, "fail", false, "Exit with an error when any URL carries tracking parameters")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [url...]",
	Short: "Report whether URLs carry tracking parameters",
	Long: `Checks each URL (arguments, or one per line on stdin) without changing
it. A URL is "tracked" when it has at least one tracking parameter whose
value is not already a decoy, and "decoyed" when every tracking value is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		urls := args
		if len(urls) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					urls = append(urls, line)
				}
			}
		}

		out := cmd.OutOrStdout()
		color := e.color(out)
		rw := e.rewriter()
		found := false

		for _, u := range urls {
			rep, ok := rw.Inspect(u)
			status := checkStatus(rep, ok)
			if status == "tracked" {
				found = true
			}
			fmt.Fprintf(out, "%-8s %s\n", status, render.Hyperlink(u, color))

			if checkExplain && ok && len(rep.Params) > 0 {
				md, err := render.RenderMarkdown(render.ReportMarkdown(rep), 100, color)
				if err != nil {
					return err
				}
				fmt.Fprint(out, md)
			}
		}

		if checkFail && found {
			return errTrackingFound
		}
		return nil
	},
}

// checkStatus is one of "invalid", "clean", "decoyed" or "tracked".
func checkStatus(rep rewrite.Report, ok bool) string {
	if !ok {
		return "invalid"
	}
	if len(rep.Params) == 0 {
		return "clean"
	}
	if !rep.Changed() {
		return "decoyed"
	}
	return "tracked"
}
