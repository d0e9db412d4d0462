package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-step circle counts",
		Long: `Runs the packing headless and prints one line per subdivision step:
accepted circles, rejections by rule, frontier size and running total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Steps
			}
			return a.runStats(cmd, steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Number of steps (default from config)")
	return cmd
}

func (a *app) runStats(cmd *cobra.Command, steps int) error {
	p, err := a.cfg.NewPacking()
	if err != nil {
		return err
	}
	all, err := p.Steps(steps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range all {
		fmt.Fprintln(out, s)
	}
	fmt.Fprintf(out, "total: circles=%d depth=%d done=%t\n", p.Len(), p.Depth(), p.Done())
	return nil
}
