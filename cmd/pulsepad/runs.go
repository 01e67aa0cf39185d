package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pulsepad/pulsepad/internal/config"
	"github.com/pulsepad/pulsepad/internal/session"
)

type runsFlags struct {
	configPath string
	dir        string
	limit      int
}

func newRunsCmd() *cobra.Command {
	flags := &runsFlags{}
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultPath, "Config file path")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Runs directory override")
	cmd.Flags().IntVar(&flags.limit, "limit", 20, "Maximum sessions to list (0 = all)")

	return cmd
}

func runRuns(flags *runsFlags) error {
	cfg, err := config.Load(flags.configPath, false)
	if err != nil {
		return err
	}
	dir := cfg.Session.Dir
	if flags.dir != "" {
		dir = flags.dir
	}

	runs, err := session.ListRuns(dir, flags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("No sessions recorded under %s\n", dir)
		return nil
	}

	for _, name := range runs {
		summary, err := session.LoadSummary(filepath.Join(dir, name, "summary.json"))
		if err != nil {
			// Directory without a summary, likely an interrupted session.
			fmt.Println(name)
			continue
		}
		fmt.Printf("%s  %-9s  runs %-3d last %4dms  counts %d/%d\n",
			name, summary.Status, summary.Runs, summary.LastRunMs,
			summary.CounterA, summary.CounterB)
	}
	return nil
}
