package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulsepad/pulsepad/internal/anim"
	"github.com/pulsepad/pulsepad/internal/config"
)

type durationFlags struct {
	configPath string
	baseMs     int
}

// previewMultipliers is the table printed when no multiplier argument is
// given. The out-of-range entries show the clamp at work.
var previewMultipliers = []float64{0.1, 0.25, 0.5, 1, 1.5, 2, 4, 8}

func newDurationCmd() *cobra.Command {
	flags := &durationFlags{}
	cmd := &cobra.Command{
		Use:   "duration [multiplier]",
		Short: "Compute the pulse duration for a speed multiplier",
		Long: `Print the pulse duration a multiplier produces.

With an argument, parses it the same way the playground does (garbage
falls back to x1) and prints the single result. Without one, prints a
reference table across the useful range.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuration(flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultPath, "Config file path")
	cmd.Flags().IntVar(&flags.baseMs, "base-ms", 0, "Base duration override in milliseconds")

	return cmd
}

func runDuration(flags *durationFlags, args []string) error {
	cfg, err := config.Load(flags.configPath, false)
	if err != nil {
		return err
	}
	if flags.baseMs > 0 {
		cfg.BaseMs = flags.baseMs
	}
	base := cfg.Base()

	if len(args) == 1 {
		m := anim.ClampMultiplier(anim.ParseMultiplier(args[0]))
		d := anim.DurationFrom(base, m)
		fmt.Printf("x%s -> %dms (base %dms)\n", formatMult(m), d.Milliseconds(), base.Milliseconds())
		return nil
	}

	fmt.Printf("Base duration: %dms\n\n", base.Milliseconds())
	for _, m := range previewMultipliers {
		d := anim.DurationFrom(base, m)
		marker := ""
		if anim.ClampMultiplier(m) != m {
			marker = "  (clamped)"
		}
		fmt.Printf("  x%-5s -> %5dms%s\n", formatMult(m), d.Milliseconds(), marker)
	}
	return nil
}

func formatMult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
