package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/charts"
	"github.com/jcadam/decoy/pkg/render"
)

var (
	statsChart  string
	statsInline bool
	statsPie    bool
	statsReset  bool
)

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write a PNG chart of the per-category counts to this file")
	statsCmd.Flags().BoolVar(&statsInline, "inline", false, "Draw the chart inline (Kitty, Ghostty, WezTerm, iTerm2)")
	statsCmd.Flags().BoolVar(&statsPie, "pie", false, "Use a pie chart instead of bars")
	statsCmd.Flags().BoolVar(&statsReset, "reset", false, "Clear all counters")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many URLs and parameters have been randomized",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		rec := e.recorder()
		out := cmd.OutOrStdout()

		if statsReset {
			if err := rec.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Counters cleared.")
			return nil
		}

		c, err := rec.Snapshot()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Today:    %d\n", c.Today)
		fmt.Fprintf(out, "All time: %d\n", c.Total)
		if !c.LastRewrite.IsZero() {
			fmt.Fprintf(out, "Last:     %s\n", c.LastRewrite.Local().Format("2006-01-02 15:04:05"))
		}
		if !e.cfg.Stats.Enabled {
			fmt.Fprintln(out, "(stats.enabled is false; counters are not being updated)")
		}

		chart := charts.FromCounters(c)
		if statsPie {
			chart.Type = "pie"
		}
		if chart.Empty() {
			return nil
		}

		tier := render.TierNone
		if statsInline {
			tier = render.DetectImageTier(e.cfg.Rendering.Images)
		}

		if statsChart == "" && tier == render.TierNone {
			fmt.Fprintln(out)
			fmt.Fprintln(out, charts.RenderTextTable(chart))
			return nil
		}

		png, err := charts.RenderPNG(chart, 800, 400)
		if err != nil {
			return err
		}
		if statsChart != "" {
			if err := os.WriteFile(statsChart, png, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", statsChart, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", statsChart)
		}
		if tier != render.TierNone {
			if err := render.WriteInlineImage(out, png, tier); err != nil {
				return fmt.Errorf("drawing chart: %w", err)
			}
			fmt.Fprintln(out)
		} else if statsInline {
			fmt.Fprintln(out)
			fmt.Fprintln(out, charts.RenderTextTable(chart))
		}
		return nil
	},
}
