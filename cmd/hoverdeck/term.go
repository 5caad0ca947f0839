package main

import (
	"github.com/spf13/cobra"

	"github.com/phinze/hoverdeck/internal/config"
	"github.com/phinze/hoverdeck/internal/logging"
	"github.com/phinze/hoverdeck/internal/term"
)

// termInset is the arrow inset in cells.
const termInset = 1

var sampleData = []term.Datum{
	{Label: "Mon", Value: 12},
	{Label: "Tue", Value: 19},
	{Label: "Wed", Value: 7},
	{Label: "Thu", Value: 15},
	{Label: "Fri", Value: 22},
	{Label: "Sat", Value: 9},
	{Label: "Sun", Value: 4},
}

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Hover a bar chart in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return term.Run(ctx, sampleData, termOptions(a.cfg), *logging.FromContext(ctx))
		},
	}
}

// termOptions maps configuration onto terminal options. Positions are in
// cells, so the pixel inset is replaced.
func termOptions(cfg *config.Config) term.Options {
	ov := cfg.Tooltip.Overlay()
	ov.ArrowInset = termInset

	return term.Options{
		Enabled: cfg.Tooltip.Enabled,
		Tooltip: cfg.Tooltip.Coordinator(),
		Overlay: ov,
		Labels:  cfg.Tooltip.Labels(),
	}
}
