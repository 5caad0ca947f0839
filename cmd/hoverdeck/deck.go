package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"rafaelmartins.com/p/streamdeck"

	"github.com/phinze/hoverdeck/internal/canvas"
	"github.com/phinze/hoverdeck/internal/config"
	"github.com/phinze/hoverdeck/internal/deck"
	"github.com/phinze/hoverdeck/internal/logging"
)

func newDeckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deck",
		Short: "Run tooltips on a Stream Deck+ touch strip",
		Long:  "Waits for a Stream Deck+, shows a tooltip for a strip region after a long press and reconnects after unplug or system wake.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeck(cmd.Context(), a.cfg)
		},
	}
}

// deckOptions maps configuration onto deck options.
func deckOptions(cfg *config.Config) deck.Options {
	return deck.Options{
		Brightness:    cfg.Deck.Brightness,
		Regions:       cfg.Deck.Regions,
		FrameInterval: cfg.Deck.FrameInterval,
		Enabled:       cfg.Tooltip.Enabled,
		Tooltip:       cfg.Tooltip.Coordinator(),
		Overlay:       cfg.Tooltip.Overlay(),
		Labels:        cfg.Tooltip.Labels(),
		Theme:         canvas.DefaultTheme(),
	}
}

// runDeck waits for a device, runs it and repeats on disconnect. The logger
// in ctx is handed to the deck untagged.
func runDeck(ctx context.Context, cfg *config.Config) error {
	base := logging.FromContext(ctx)
	log := *logging.FromContext(logging.WithComponent(ctx, "supervisor"))
	wakeCh := wakeEvents(log)

	for {
		device := waitForDevice(ctx, log)
		if device == nil {
			return nil
		}

		err := runWithDevice(ctx, device, cfg, wakeCh, *base)
		if errors.Is(err, deck.ErrNoTouchStrip) {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("exiting")
			return nil
		default:
			log.Info().Msg("waiting for device reconnect")
		}
	}
}

// waitForDevice polls for a Stream Deck until one can be opened. It returns
// nil once ctx is done.
func waitForDevice(ctx context.Context, log zerolog.Logger) *streamdeck.Device {
	if device := openDevice(log); device != nil {
		return device
	}

	log.Info().Msg("waiting for device")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}

		if device := openDevice(log); device != nil {
			log.Info().Msg("device connected")
			return device
		}
	}
}

func openDevice(log zerolog.Logger) *streamdeck.Device {
	device, err := streamdeck.GetDevice("")
	if err != nil {
		log.Debug().Err(err).Msg("no device")
		return nil
	}
	if err := device.Open(); err != nil {
		log.Warn().Err(err).Msg("device found but open failed")
		return nil
	}
	return device
}

// runWithDevice runs one device until disconnect, wake or ctx is done.
func runWithDevice(ctx context.Context, device *streamdeck.Device, cfg *config.Config, wakeCh <-chan struct{}, base zerolog.Logger) error {
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	d := deck.New(device, deckOptions(cfg), base)
	log := *logging.FromContext(logging.WithComponent(ctx, "supervisor"))

	errChan := make(chan error, 1)
	go func() {
		errChan <- d.Run(runCtx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case runErr = <-errChan:
		if runErr != nil {
			log.Warn().Err(runErr).Msg("device stopped")
		}
	case <-wakeCh:
		log.Info().Msg("reconnecting device after wake")
	}

	runCancel()

	// Close may block indefinitely on some hosts.
	closeDone := make(chan struct{})
	go func() {
		device.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(3 * time.Second):
		log.Warn().Msg("device close timed out")
	}

	return runErr
}
