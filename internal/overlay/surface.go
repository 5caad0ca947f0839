// Package overlay owns the single tooltip overlay of a rendering surface:
// its visibility, its rows and where it sits on screen.
package overlay

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/placement"
)

// Options tunes the surface's fades and placement.
type Options struct {
	// Opacity is the target opacity when shown.
	Opacity float64
	// ShowFade is how long the fade-in takes. Zero shows instantly.
	ShowFade time.Duration
	// HideFade is how long the fade-out takes.
	HideFade time.Duration
	// ArrowInset is the arrow inset used by placement.
	ArrowInset float64
}

// DefaultOptions returns the stock fade and placement settings.
func DefaultOptions() Options {
	return Options{
		Opacity:    1,
		ShowFade:   0,
		HideFade:   200 * time.Millisecond,
		ArrowInset: placement.ArrowInset,
	}
}

// Surface is one overlay instance. It is not safe for concurrent use; all
// calls are expected on the owner goroutine of its clock.
type Surface struct {
	renderer Renderer
	viewport Viewport
	override *placement.Size
	opts     Options
	log      zerolog.Logger

	fade *fade

	created bool
	visible bool
	items   []DisplayItem
	anchor  *placement.Rect
	pos     placement.Point
	arrow   placement.Arrow
}

// New creates a hidden surface. The renderer is not touched until the first Show.
func New(r Renderer, vp Viewport, clk clock.Clock, opts Options, log zerolog.Logger) *Surface {
	if r == nil || vp == nil || clk == nil {
		panic("overlay.New: renderer, viewport and clock are required")
	}
	return &Surface{
		renderer: r,
		viewport: vp,
		opts:     opts,
		log:      log.With().Str("component", "overlay").Logger(),
		fade:     &fade{clock: clk, renderer: r},
	}
}

// Show makes the overlay visible with items, anchored at anchor. Calling it
// while visible refreshes content and position.
func (s *Surface) Show(items []DisplayItem, anchor placement.Rect) {
	s.visible = true
	s.ensure()
	s.setItems(items)

	s.fade.run(s.opts.Opacity, s.opts.ShowFade, nil)
	s.renderer.SetInteractive(true)

	s.place(anchor)
	s.log.Debug().Int("rows", len(items)).Str("arrow", s.arrow.Class()).Msg("shown")
}

// Move repositions a visible overlay. Nil items keep the current rows.
// It does nothing while hidden.
func (s *Surface) Move(items []DisplayItem, anchor placement.Rect) {
	if !s.visible {
		return
	}
	if items != nil {
		s.setItems(items)
	}
	s.place(anchor)
}

// Hide fades the overlay out. It stops taking part in hit testing only once
// the fade completes.
func (s *Surface) Hide() {
	if !s.visible {
		return
	}
	s.visible = false

	s.fade.run(0, s.opts.HideFade, func() {
		s.renderer.SetInteractive(false)
		s.log.Debug().Msg("hidden")
	})
}

// Visible reports whether the overlay is shown or showing.
func (s *Surface) Visible() bool { return s.visible }

// Items returns the rows currently displayed.
func (s *Surface) Items() []DisplayItem { return s.items }

// Position returns the last computed top-left corner and arrow.
func (s *Surface) Position() (placement.Point, placement.Arrow) { return s.pos, s.arrow }

// Anchor returns the last anchor the overlay was placed against.
func (s *Surface) Anchor() (placement.Rect, bool) {
	if s.anchor == nil {
		return placement.Rect{}, false
	}
	return *s.anchor, true
}

// SetViewportOverride pins the viewport size used by placement. Nil returns
// to the live viewport.
func (s *Surface) SetViewportOverride(size *placement.Size) {
	s.override = size
}

func (s *Surface) ensure() {
	if s.created {
		return
	}
	s.renderer.Create()
	s.created = true
}

func (s *Surface) setItems(items []DisplayItem) {
	s.items = make([]DisplayItem, len(items))
	copy(s.items, items)
	s.renderer.SetRows(s.items)
}

func (s *Surface) place(anchor placement.Rect) {
	s.anchor = &anchor

	vp := s.viewport.Size()
	if s.override != nil {
		vp = *s.override
	}

	s.pos, s.arrow = placement.Place(anchor, vp, s.renderer.Measure(), s.opts.ArrowInset)
	s.renderer.Place(s.pos, s.arrow)
}
