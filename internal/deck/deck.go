// Package deck runs tooltips on a Stream Deck+ touch strip. The strip is the
// canvas; its regions are the interactive elements.
package deck

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"rafaelmartins.com/p/streamdeck"

	"github.com/phinze/hoverdeck/internal/canvas"
	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/content"
	"github.com/phinze/hoverdeck/internal/coordinator"
	"github.com/phinze/hoverdeck/internal/overlay"
)

// ErrNoTouchStrip is returned when the connected device has no touch strip.
var ErrNoTouchStrip = errors.New("device has no touch strip")

// DataFunc returns the content behind region index.
type DataFunc func(index int) content.Data

// Options configures a Deck.
type Options struct {
	Brightness    int
	Regions       int
	FrameInterval time.Duration

	Enabled bool
	Tooltip coordinator.Config
	Overlay overlay.Options
	Labels  content.Labels
	Theme   canvas.Theme

	Data DataFunc
}

// Deck wires one device to a coordinator.
type Deck struct {
	device *streamdeck.Device
	opts   Options
	base   zerolog.Logger
	log    zerolog.Logger

	loop  *clock.Loop
	scene *Scene
}

// New creates a Deck for an opened device. log must not carry a component
// field; the deck and its scene add their own.
func New(device *streamdeck.Device, opts Options, log zerolog.Logger) *Deck {
	return &Deck{
		device: device,
		opts:   opts,
		base:   log,
		log:    log.With().Str("component", "deck").Logger(),
		loop:   clock.NewLoop(64),
	}
}

// Run drives the device until ctx is done or the device fails.
func (d *Deck) Run(ctx context.Context) error {
	if !d.device.GetTouchStripSupported() {
		return ErrNoTouchStrip
	}

	rect, err := d.device.GetTouchStripImageRectangle()
	if err != nil {
		return fmt.Errorf("failed to get touch strip rectangle: %w", err)
	}

	d.device.SetBrightness(byte(d.opts.Brightness))
	d.device.ForEachKey(func(key streamdeck.KeyID) error {
		return d.device.ClearKey(key)
	})

	scene, err := NewScene(rect, d.loop.Clock(), d.opts, d.base)
	if err != nil {
		return err
	}
	d.scene = scene

	d.setupEventHandlers()

	d.log.Info().
		Str("model", d.device.GetModelName()).
		Int("regions", len(scene.Host.Regions())).
		Msg("touch strip ready")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := d.loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	// The listener is not part of the group; it returns when the device is closed.
	errChan := make(chan error, 1)
	go func() {
		if err := d.device.Listen(errChan); err != nil {
			select {
			case errChan <- err:
			default:
			}
		}
	}()

	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case err := <-errChan:
			return fmt.Errorf("device listener: %w", err)
		}
	})

	g.Go(func() error {
		return d.renderLoop(gctx)
	})

	err = g.Wait()
	scene.Coordinator.Stop()
	return err
}

// setupEventHandlers posts strip gestures onto the loop.
func (d *Deck) setupEventHandlers() {
	d.device.AddTouchStripTouchHandler(func(_ *streamdeck.Device, typ streamdeck.TouchStripTouchType, p image.Point) error {
		long := typ == streamdeck.TOUCH_STRIP_TOUCH_TYPE_LONG
		d.loop.Post(func() {
			d.log.Debug().Int("x", p.X).Int("y", p.Y).Bool("long", long).Msg("strip tap")
			d.scene.Host.Tap(p, long)
		})
		return nil
	})

	d.device.AddTouchStripSwipeHandler(func(_ *streamdeck.Device, origin, dest image.Point) error {
		d.loop.Post(func() {
			d.log.Debug().Int("from", origin.X).Int("to", dest.X).Msg("strip swipe")
			d.scene.Host.Swipe(origin, dest)
		})
		return nil
	})
}

// renderLoop pushes a frame whenever the overlay changed.
func (d *Deck) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(d.opts.FrameInterval)
	defer ticker.Stop()

	frames := make(chan *image.RGBA, 1)
	d.loop.Post(func() { frames <- d.scene.Render() })

	for {
		select {
		case <-ctx.Done():
			return nil
		case img := <-frames:
			d.device.SetTouchStripImage(img)
		case <-ticker.C:
			d.loop.Post(func() { d.scene.Offer(frames) })
		}
	}
}

// Scene is the device independent part of a deck: the host, the overlay and
// the coordinator bound to every region.
type Scene struct {
	Host        *Host
	Frame       *canvas.Frame
	Renderer    *canvas.Renderer
	Surface     *overlay.Surface
	Coordinator *coordinator.Coordinator
}

// NewScene builds a scene on bounds. All calls into it must happen on the
// goroutine clk delivers callbacks on.
func NewScene(bounds image.Rectangle, clk clock.Clock, opts Options, log zerolog.Logger) (*Scene, error) {
	r, err := canvas.NewRenderer(opts.Theme, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	host := NewHost(bounds, opts.Regions)
	frame := canvas.NewFrame(bounds, Background(bounds, host.Regions()))
	surface := overlay.New(r, frame, clk, opts.Overlay, log)

	coord := coordinator.New(host, surface, clk, opts.Tooltip, coordinator.WithLogger(log))
	coord.SetGlobalEnabled(opts.Enabled)
	coord.SetLocalizedLabels(opts.Labels)

	data := opts.Data
	if data == nil {
		data = RegionData
	}
	delegate := func(ev coordinator.InteractionEvent) []overlay.DisplayItem {
		return content.Build(data(ev.Index), coord.Labels(), content.Printf{})
	}
	for _, region := range host.Regions() {
		coord.Register(region, delegate)
	}

	return &Scene{
		Host:        host,
		Frame:       frame,
		Renderer:    r,
		Surface:     surface,
		Coordinator: coord,
	}, nil
}

// Render composites the full strip.
func (s *Scene) Render() *image.RGBA {
	return s.Frame.Render(s.Renderer)
}

// RenderIfDirty composites the strip only when the overlay changed.
func (s *Scene) RenderIfDirty() *image.RGBA {
	if !s.Renderer.Dirty() {
		return nil
	}
	return s.Render()
}

// Offer queues the next frame if the overlay changed. A frame still waiting
// in frames is replaced, so the latest state always reaches the device. Only
// the loop goroutine may send on frames.
func (s *Scene) Offer(frames chan *image.RGBA) {
	img := s.RenderIfDirty()
	if img == nil {
		return
	}
	select {
	case <-frames:
	default:
	}
	frames <- img
}

// RegionData is the content shown when no data source is configured.
func RegionData(index int) content.Data {
	return content.Data{
		Category: &content.Value{Column: content.Column{Name: "Region"}, Raw: index + 1},
	}
}

// Background draws the strip gradient with a divider between regions.
func Background(bounds image.Rectangle, regions []*Region) image.Image {
	bg := canvas.Gradient(bounds, color.RGBA{15, 15, 30, 255}, color.RGBA{40, 20, 60, 255})
	img, ok := bg.(draw.Image)
	if !ok {
		return bg
	}

	divider := image.NewUniform(colornames.Dimgray)
	for _, r := range regions[1:] {
		line := image.Rect(r.Rect.Min.X, r.Rect.Min.Y+10, r.Rect.Min.X+1, r.Rect.Max.Y-10)
		draw.Draw(img, line, divider, image.Point{}, draw.Src)
	}
	return img
}
