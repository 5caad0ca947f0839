package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/config"
	"github.com/phinze/hoverdeck/internal/deck"
	"github.com/phinze/hoverdeck/internal/logging"
)

// stripBounds matches the Stream Deck+ touch strip.
var stripBounds = image.Rect(0, 0, 800, 100)

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		output string
		x, y   int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a long press on the touch strip to a PNG",
		Long:  "Holds a touch at --x/--y on a simulated touch strip until the tooltip shows and writes the frame as PNG.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			base := logging.FromContext(cmd.Context())
			log := logging.FromContext(logging.WithComponent(cmd.Context(), "snapshot"))

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := writeSnapshot(f, a.cfg, image.Pt(x, y), *base); err != nil {
				return err
			}

			log.Info().Str("path", output).Msg("snapshot written")
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "hoverdeck.png", "Output PNG path")
	cmd.Flags().IntVar(&x, "x", 620, "Touch x on the strip")
	cmd.Flags().IntVar(&y, "y", 30, "Touch y on the strip")
	return cmd
}

// writeSnapshot long-presses p on a simulated strip and encodes the frame
// once the show delay and fade have elapsed.
func writeSnapshot(w io.Writer, cfg *config.Config, p image.Point, log zerolog.Logger) error {
	clk := clock.NewManual(time.Unix(0, 0))

	scene, err := deck.NewScene(stripBounds, clk, deckOptions(cfg), log)
	if err != nil {
		return err
	}

	scene.Host.Tap(p, true)
	clk.Advance(cfg.Tooltip.ShowDelay + cfg.Tooltip.ShowFade)

	if err := png.Encode(w, scene.Render()); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
