// Package coordinator decides from pointer and touch activity when the
// tooltip overlay is shown, moved and hidden.
package coordinator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/content"
	"github.com/phinze/hoverdeck/internal/events"
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

const (
	// DefaultShowDelay is how long an interaction rests before the overlay shows.
	DefaultShowDelay = 500 * time.Millisecond

	// DefaultTouchSuppression is how long mouse input is ignored after a touch ends.
	DefaultTouchSuppression = 1000 * time.Millisecond
)

// Config holds the timing and hit-size policy.
type Config struct {
	ShowDelay        time.Duration
	TouchSuppression time.Duration
	TouchHitSize     float64
}

// DefaultConfig returns the stock policy.
func DefaultConfig() Config {
	return Config{
		ShowDelay:        DefaultShowDelay,
		TouchSuppression: DefaultTouchSuppression,
		TouchHitSize:     placement.TouchHitSize,
	}
}

// Overlay is what the coordinator drives. *overlay.Surface implements it.
type Overlay interface {
	Show(items []overlay.DisplayItem, anchor placement.Rect)
	Move(items []overlay.DisplayItem, anchor placement.Rect)
	Hide()
	Visible() bool
}

// Host is the rendering surface elements live on. It resolves event names
// once from its input capabilities and exposes the root container.
type Host interface {
	Events() events.Table
	Root() events.Element
}

// InteractionEvent is a snapshot of one input occurrence.
type InteractionEvent struct {
	Payload any
	Index   int
	Root    placement.Point
	Local   placement.Point
	Source  events.Element
	Touch   bool
}

// Delegate produces the rows for an interaction. An empty result means
// there is nothing to show.
type Delegate func(InteractionEvent) []overlay.DisplayItem

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

// Coordinator owns the session-wide interaction state: the overlay, the
// single pending show timer and the touch suppression gate. It must only be
// used from the goroutine its clock delivers callbacks on.
type Coordinator struct {
	host    Host
	names   events.Table
	overlay Overlay
	clock   clock.Clock
	cfg     Config
	log     zerolog.Logger

	enabled bool
	labels  content.Labels

	pending       clock.Timer
	pendingSource *Source

	suppressed    bool
	suppressTimer clock.Timer

	rootBound bool
	sources   []*Source
}

// New creates a Coordinator driving ov for elements on host.
func New(host Host, ov Overlay, clk clock.Clock, cfg Config, opts ...Option) *Coordinator {
	if host == nil || ov == nil || clk == nil {
		panic("coordinator.New: host, overlay and clock are required")
	}

	c := &Coordinator{
		host:    host,
		names:   host.Events(),
		overlay: ov,
		clock:   clk,
		cfg:     cfg,
		log:     zerolog.Nop(),
		enabled: true,
		labels:  content.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "coordinator").Logger()

	return c
}

// SetGlobalEnabled switches the feature on or off. It only affects
// registrations made afterwards.
func (c *Coordinator) SetGlobalEnabled(on bool) {
	c.enabled = on
}

// Enabled reports the global switch.
func (c *Coordinator) Enabled() bool { return c.enabled }

// SetLocalizedLabels replaces the localized row labels.
func (c *Coordinator) SetLocalizedLabels(l content.Labels) {
	c.labels = l
}

// Labels returns the localized row labels.
func (c *Coordinator) Labels() content.Labels { return c.labels }

// Suppressed reports whether mouse input is currently being ignored after a touch.
func (c *Coordinator) Suppressed() bool { return c.suppressed }

// Sources returns every bound source in registration order.
func (c *Coordinator) Sources() []*Source { return c.sources }

// Register attaches the mouse and touch handler set to el. A nil element or
// delegate is a programming error and panics. When the feature is disabled
// the returned source is unbound and nothing is attached.
func (c *Coordinator) Register(el events.Element, d Delegate, opts ...SourceOption) *Source {
	if el == nil {
		panic("coordinator.Register: element cannot be nil")
	}
	if d == nil {
		panic("coordinator.Register: delegate cannot be nil")
	}

	s := &Source{coord: c, el: el, delegate: d}
	for _, opt := range opts {
		opt(s)
	}

	if !c.enabled {
		c.log.Debug().Msg("tooltips disabled, source left unbound")
		return s
	}

	el.On(c.names.HoverStart, s.hoverStart)
	el.On(c.names.HoverMove, s.hoverMove)
	el.On(c.names.HoverEnd, s.hoverEnd)
	el.On(c.names.TouchStart, s.touchStart)
	el.On(c.names.TouchEnd, s.touchEnd)
	s.bound = true

	if !c.rootBound {
		c.host.Root().On(c.names.TouchStart, c.dismiss)
		c.rootBound = true
	}

	c.sources = append(c.sources, s)
	c.log.Debug().Int("sources", len(c.sources)).Bool("reload_on_move", s.reloadOnMove).Msg("source registered")

	return s
}

// Stop cancels the pending show and the suppression window.
func (c *Coordinator) Stop() {
	c.cancelPending()
	if c.suppressTimer != nil {
		c.suppressTimer.Stop()
		c.suppressTimer = nil
	}
	c.suppressed = false
}

// dismiss hides the overlay for any touch that reaches the root.
func (c *Coordinator) dismiss(events.Raw) {
	c.overlay.Hide()
}

func (c *Coordinator) schedule(s *Source, ev InteractionEvent) {
	c.cancelPending()

	c.pendingSource = s
	c.pending = c.clock.AfterFunc(c.cfg.ShowDelay, func() {
		c.pending = nil
		c.pendingSource = nil
		c.fire(s, ev)
	})
}

func (c *Coordinator) cancelPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.pendingSource = nil
}

// fire runs a delayed show. The delegate acts as a filter.
func (c *Coordinator) fire(s *Source, ev InteractionEvent) {
	items := s.delegate(ev)
	if len(items) == 0 {
		c.log.Debug().Int("index", ev.Index).Msg("delegate returned nothing")
		return
	}

	root := ev.Root
	if s.cachedRoot != nil {
		root = *s.cachedRoot
	}
	c.overlay.Show(items, c.anchor(root, ev.Touch))
}

// suppress blocks mouse input for the configured window, restarting any
// window already running.
func (c *Coordinator) suppress() {
	if c.suppressTimer != nil {
		c.suppressTimer.Stop()
	}
	c.suppressed = true
	c.suppressTimer = c.clock.AfterFunc(c.cfg.TouchSuppression, func() {
		c.suppressTimer = nil
		c.suppressed = false
	})
}

func (c *Coordinator) anchor(p placement.Point, touch bool) placement.Rect {
	if touch {
		return placement.SquareAnchor(p, c.cfg.TouchHitSize)
	}
	return placement.PointAnchor(p)
}
