package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/tui"
)

type initFlags struct {
	configPath string
	force      bool
	defaults   bool
}

func newInitCmd() *cobra.Command {
	flags := &initFlags{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pulsepad config file",
		Long: `Create a config file for the playground.

When attached to a terminal this runs a short setup form; pass
--defaults to skip the form and write stock values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultPath, "Config file path to write")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&flags.defaults, "defaults", false, "Write defaults without prompting")

	return cmd
}

func runInit(flags *initFlags) error {
	if _, err := os.Stat(flags.configPath); err == nil && !flags.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", flags.configPath)
	}

	cfg := config.Default()

	if !flags.defaults && isatty.IsTerminal(os.Stdin.Fd()) {
		if err := tui.RunSetup(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(flags.configPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (theme %s, speed x%s)\n", flags.configPath, cfg.Theme, formatMult(cfg.Multiplier))
	return nil
}
