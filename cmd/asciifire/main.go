package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/asciifire/internal/config"
	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/loop"
	"github.com/san-kum/asciifire/internal/screen"
	"github.com/san-kum/asciifire/internal/term"
	"github.com/san-kum/asciifire/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	interval   time.Duration
	seed       int64
	palette    string
	theme      string
	debug      bool
	// headless runs
	benchFrames  int
	recordFrames int
	cols         int
	rows         int
)

// main registers commands and flags, runs the plain fire loop when no
// subcommand is given, and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "asciifire",
		Short:         "animated ASCII fire for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug)
		},
		RunE: runDefault,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".asciifire", "snapshot directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.DurationVar(&interval, "interval", config.DefaultInterval, "pause between frames")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&palette, "palette", "", "glyphs from coldest to hottest")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme (tui)")
	pf.BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "coloured fire with a stats pane",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "true-colour full screen fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runScreen(cmd.Context(), cfg)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 500, "frames per size")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless and save the final grid",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&recordFrames, "frames", 200, "frames to simulate")
	recordCmd.Flags().IntVar(&cols, "cols", 80, "grid columns")
	recordCmd.Flags().IntVar(&rows, "rows", 24, "grid rows")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show [snapshot_id]",
		Short: "render a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, screenCmd, benchCmd, recordCmd, listCmd, showCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("asciifire failed", "err", err)
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("config resolved",
		"interval", cfg.Interval,
		"seed", cfg.Seed,
		"renderer", cfg.Renderer,
		"theme", cfg.Theme,
		"preset", preset,
		"file", configFile,
	)
	return cfg, nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	switch cfg.Renderer {
	case config.RendererTUI:
		return runTUI(cfg)
	case config.RendererScreen:
		return runScreen(cmd.Context(), cfg)
	default:
		return runPlain(cmd.Context(), cfg)
	}
}

// runPlain is the classic loop: clear, resize, seed, calculate, render, sleep.
func runPlain(ctx context.Context, cfg *config.Config) error {
	opts, err := cfg.GetOptions()
	if err != nil {
		return err
	}

	t := term.New(os.Stdout)
	sim, err := fire.New(t, opts...)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	c, r := sim.Size()
	slog.Debug("starting plain loop", "cols", c, "rows", r)

	term.HideCursor(os.Stdout)
	defer term.ShowCursor(os.Stdout)

	_, err = loop.New(sim, t, os.Stdout).Run(ctx, loop.Config{Interval: cfg.Interval})
	return err
}

// startSizer seeds a settable sizer with the real terminal size, falling back
// to 80x24 for views that learn their size from events anyway.
func startSizer() *term.Fixed {
	c, r, err := term.New(os.Stdout).Size()
	if err != nil || c <= 0 || r <= 0 {
		slog.Warn("terminal size unavailable, assuming 80x24", "err", err)
		return term.NewFixed(80, 24)
	}
	return term.NewFixed(c, r)
}

func runTUI(cfg *config.Config) error {
	opts, err := cfg.GetOptions()
	if err != nil {
		return err
	}
	sizer := startSizer()
	sim, err := fire.New(sizer, opts...)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(sim, sizer, cfg.Interval, cfg.Theme))
}

func runScreen(ctx context.Context, cfg *config.Config) error {
	opts, err := cfg.GetOptions()
	if err != nil {
		return err
	}
	sizer := startSizer()
	sim, err := fire.New(sizer, opts...)
	if err != nil {
		return err
	}
	r, err := screen.New(sim, sizer)
	if err != nil {
		return err
	}
	return r.Run(ctx, cfg.Interval)
}
