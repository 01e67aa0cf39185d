package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/logging"
	"github.com/pulsepad/pulsepad/internal/tui"
)

type playFlags struct {
	configPath string
	theme      string
	multiplier float64
	sessionDir string
	logFile    string
	noSave     bool
	verbose    bool
	cliMode    bool
}

func newPlayCmd() *cobra.Command {
	flags := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the animation playground",
		Long: `Launch the pulsepad TUI.

The stage runs timed pulses, the card flips, the loader spins, and the
dialog demonstrates a delayed close. Flags override the config file for
this session only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultPath, "Config file path")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme override: tokyo-night|mono")
	cmd.Flags().Float64Var(&flags.multiplier, "multiplier", 0, "Speed multiplier override")
	cmd.Flags().StringVar(&flags.sessionDir, "session-dir", "", "Session artifact directory override")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Also log to this file")
	cmd.Flags().BoolVar(&flags.noSave, "no-save", false, "Skip writing session artifacts")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Verbose logging")
	cmd.Flags().BoolVar(&flags.cliMode, "cli", false, "Render one frame and exit (no TUI)")

	return cmd
}

func runPlay(flags *playFlags) error {
	cfg, err := config.Load(flags.configPath, false)
	if err != nil {
		return err
	}

	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.multiplier != 0 {
		cfg.Multiplier = flags.multiplier
	}
	if flags.sessionDir != "" {
		cfg.Session.Dir = flags.sessionDir
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	if flags.noSave {
		cfg.Session.Save = false
	}
	if flags.verbose {
		cfg.Logging.Level = "verbose"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.LogStartup(cfg.Theme, cfg.Multiplier, flags.configPath)

	if flags.cliMode || (!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		fmt.Fprint(os.Stdout, tui.Snapshot(cfg, logger))
		return nil
	}

	return tui.Run(cfg, logger)
}
