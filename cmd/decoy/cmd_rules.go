package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/classify"
	"github.com/jcadam/decoy/pkg/render"
)

var (
	rulesHTML  string
	rulesPlain bool
)

func init() {
	rulesCmd.Flags().StringVar(&rulesHTML, "html", "", "Write the rules as a standalone HTML page to this file")
	rulesCmd.Flags().BoolVar(&rulesPlain, "plain", false, "Print raw markdown instead of rendering it")
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the classification rules and decoy phrases",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		md := render.RulesMarkdown(classify.Rules())
		out := cmd.OutOrStdout()

		if rulesHTML != "" {
			page, err := render.ExportHTML(md, "decoy rules")
			if err != nil {
				return err
			}
			if err := os.WriteFile(rulesHTML, []byte(page), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", rulesHTML, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", rulesHTML)
			return nil
		}

		if rulesPlain {
			fmt.Fprint(out, md)
			return nil
		}
		if isTerminal(out) && isTerminal(os.Stdin) {
			return render.RunViewer("decoy rules", md)
		}
		rendered, err := render.RenderMarkdown(md, 100, e.color(out))
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}
