package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcadam/decoy/pkg/notify"
	"github.com/jcadam/decoy/pkg/stats"
	"github.com/jcadam/decoy/pkg/tui"
	"github.com/jcadam/decoy/pkg/watch"
)

var (
	watchOnce     bool
	watchTUI      bool
	watchText     bool
	watchInterval time.Duration
)

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "Check the clipboard once and exit")
	watchCmd.Flags().BoolVar(&watchTUI, "tui", false, "Show the interactive dashboard")
	watchCmd.Flags().BoolVar(&watchText, "text", false, "Rewrite URLs embedded in copied text, not just bare URLs")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Poll interval (overrides watch.interval)")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrite tracking URLs as they are copied to the clipboard",
	Long: `Polls the clipboard and replaces tracking parameter values in copied
URLs. Use --once for a single check (e.g. from a hotkey), or --tui for a
dashboard with an on/off switch. Send SIGINT or SIGTERM to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		cfg := e.cfg
		stderr := cmd.ErrOrStderr()

		interval := cfg.PollInterval()
		if watchInterval > 0 {
			interval = watchInterval
		}

		var rec *stats.Recorder
		if cfg.Stats.Enabled {
			rec = e.recorder()
		}
		// Notices would scribble over the dashboard.
		notifier := notify.New(stderr, cfg.NotifyMessage(), cfg.Notify.Enabled && !watchTUI, cfg.Rendering.Color)

		events := make(chan watch.Event, 16)
		onRewrite := func(ev watch.Event) {
			if rec != nil {
				if _, err := rec.Record(ev.Categories); err != nil {
					fmt.Fprintf(stderr, "warning: could not update stats: %v\n", err)
				}
			}
			notifier.Rewritten(ev.Categories)
			if watchTUI {
				select {
				case events <- ev:
				default:
				}
			}
		}

		w := watch.New(watch.Config{
			Clipboard:   newClipboard(),
			Rewriter:    e.rewriter(),
			Interval:    interval,
			DedupWindow: cfg.DedupWindow(),
			TextMode:    watchText || cfg.Watch.TextMode,
			Disabled:    !cfg.Enabled,
			Once:        watchOnce,
			OnRewrite:   onRewrite,
			Logger:      stderr,
			Debug:       e.log,
		})

		if watchOnce {
			return w.Run(cmd.Context())
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if watchTUI {
			go w.Run(ctx)
			var snapshot func() (*stats.Counters, error)
			if rec != nil {
				snapshot = rec.Snapshot
			}
			return tui.Run(w, snapshot, events)
		}

		state := "watching"
		if !cfg.Enabled {
			state = "paused (enabled: false in config)"
		}
		fmt.Fprintf(stderr, "decoy: %s the clipboard every %s\n", state, interval)

		err = w.Run(ctx)
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "\nWatcher stopped.")
			return nil
		}
		return err
	},
}
