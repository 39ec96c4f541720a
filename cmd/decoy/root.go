package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jcadam/decoy/pkg/clipboard"
	"github.com/jcadam/decoy/pkg/config"
	"github.com/jcadam/decoy/pkg/debug"
	"github.com/jcadam/decoy/pkg/decoy"
	"github.com/jcadam/decoy/pkg/notify"
	"github.com/jcadam/decoy/pkg/rewrite"
	"github.com/jcadam/decoy/pkg/stats"
)

var (
	flagDebug   bool
	flagNoColor bool
)

// newClipboard is replaced in tests.
var newClipboard = func() clipboard.Clipboard { return clipboard.System{} }

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print classification and watcher decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors and hyperlinks")
}

var rootCmd = &cobra.Command{
	Use:   "decoy",
	Short: "Poison tracking parameters instead of stripping them",
	Long: `decoy replaces the values of marketing and click-tracking query parameters
(utm_source, fbclid, gclid, ...) with plausible nonsense, so links still work
but the analytics behind them fill up with garbage. Everything runs locally.`,
	SilenceUsage: true,
}

// env is the loaded configuration plus the objects built from it.
type env struct {
	dir string
	cfg *config.Config
	log *debug.Logger
}

// loadEnv loads and validates config.yaml (defaults when missing) and
// applies the global flags on top.
func loadEnv(cmd *cobra.Command) (*env, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Rendering.Color = strings.ToLower(cfg.Rendering.Color)
	if flagDebug {
		cfg.Debug = true
	}
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		cfg.Rendering.Color = "never"
	}
	notify.ApplyColorMode(nil, cfg.Rendering.Color)

	e := &env{dir: dir, cfg: cfg}
	if cfg.Debug {
		e.log = debug.NewLogger(cmd.ErrOrStderr())
	}
	return e, nil
}

func (e *env) rewriter() *rewrite.Rewriter {
	rnd := decoy.New(decoy.Options{AllowRepeats: e.cfg.Decoys.AllowRepeats})
	return rewrite.New(rnd, e.log)
}

func (e *env) recorder() *stats.Recorder {
	return stats.NewRecorder(stats.NewFileStore(filepath.Join(e.dir, "stats.json")), nil)
}

// color reports whether w should receive colors and OSC 8 hyperlinks.
func (e *env) color(w io.Writer) bool {
	switch e.cfg.Rendering.Color {
	case "never":
		return false
	case "always":
		return true
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
