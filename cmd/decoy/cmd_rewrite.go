package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/render"
)

var (
	rewriteCopy bool
	rewriteText bool
)

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteCopy, "copy", false, "Also copy the result to the clipboard")
	rewriteCmd.Flags().BoolVar(&rewriteText, "text", false, "Treat input as free text and rewrite every URL inside it")
	rootCmd.AddCommand(rewriteCmd)
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [url...]",
	Short: "Replace tracking parameter values with decoys",
	Long: `Rewrites each URL given as an argument, or each line of stdin when no
arguments are given. URLs without tracking parameters are printed unchanged.
With --text, stdin is read as a whole and every embedded URL is rewritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		rw := e.rewriter()
		out := cmd.OutOrStdout()
		link := e.color(out)

		var results []string
		switch {
		case len(args) > 0:
			for _, a := range args {
				if rewriteText {
					results = append(results, rw.RewriteText(a))
				} else {
					results = append(results, rw.Rewrite(a))
				}
			}
		case rewriteText:
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			text := rw.RewriteText(string(data))
			fmt.Fprint(out, text)
			return copyResult(text)
		default:
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
				line = strings.TrimRight(line, "\r")
				if strings.TrimSpace(line) == "" {
					continue
				}
				results = append(results, rw.Rewrite(strings.TrimSpace(line)))
			}
		}

		for _, r := range results {
			if rewriteText {
				fmt.Fprintln(out, render.LinkURLs(r, link))
			} else {
				fmt.Fprintln(out, render.Hyperlink(r, link))
			}
		}
		return copyResult(strings.Join(results, "\n"))
	},
}

func copyResult(text string) error {
	if !rewriteCopy {
		return nil
	}
	if err := newClipboard().Write(text); err != nil {
		return err
	}
	return nil
}
