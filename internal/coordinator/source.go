package coordinator

import (
	"github.com/phinze/hoverdeck/internal/events"
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

// State is where a source is in its interaction cycle.
type State int

const (
	Idle State = iota
	PendingShow
	Suppressed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingShow:
		return "pending-show"
	case Suppressed:
		return "suppressed"
	}
	return "unknown"
}

// SourceOption configures a registered source.
type SourceOption func(*Source)

// WithReloadOnMove asks the delegate for fresh rows on every pointer move.
func WithReloadOnMove() SourceOption {
	return func(s *Source) { s.reloadOnMove = true }
}

// Source is one registered interactive element and its handler state.
type Source struct {
	coord        *Coordinator
	el           events.Element
	delegate     Delegate
	reloadOnMove bool
	bound        bool

	// cachedRoot is the last captured root position.
	cachedRoot *placement.Point
}

// Element returns the element the source was registered for.
func (s *Source) Element() events.Element { return s.el }

// Bound reports whether handlers were attached.
func (s *Source) Bound() bool { return s.bound }

// State reports the source's state. The suppression gate is shared by all
// sources and takes precedence.
func (s *Source) State() State {
	switch {
	case s.coord.suppressed:
		return Suppressed
	case s.coord.pendingSource == s:
		return PendingShow
	default:
		return Idle
	}
}

// mouseBlocked applies the guards every mouse-family handler shares.
func (s *Source) mouseBlocked(ev events.Raw) bool {
	c := s.coord
	if c.suppressed {
		c.log.Debug().Str("event", ev.Name).Msg("mouse event suppressed after touch")
		return true
	}
	if ev.Pressed() {
		c.log.Debug().Str("event", ev.Name).Msg("button held, ignoring")
		return true
	}
	return false
}

// capture snapshots ev and caches its root position. It reports false when
// the event carries no usable coordinates.
func (s *Source) capture(ev events.Raw, touch bool) (InteractionEvent, bool) {
	root, ok := ev.Point()
	if !ok {
		s.coord.log.Debug().Str("event", ev.Name).Msg("no coordinates, skipping")
		return InteractionEvent{}, false
	}

	local := ev.Local
	if !ev.HasPoint {
		local = placement.Point{}
	}

	s.cachedRoot = &root
	return InteractionEvent{
		Payload: ev.Payload,
		Index:   ev.Index,
		Root:    root,
		Local:   local,
		Source:  s.el,
		Touch:   touch,
	}, true
}

func (s *Source) hoverStart(ev events.Raw) {
	if s.mouseBlocked(ev) {
		return
	}
	ie, ok := s.capture(ev, false)
	if !ok {
		return
	}
	s.coord.schedule(s, ie)
}

func (s *Source) hoverMove(ev events.Raw) {
	if s.mouseBlocked(ev) {
		return
	}
	ie, ok := s.capture(ev, false)
	if !ok {
		return
	}

	var items []overlay.DisplayItem
	if s.reloadOnMove {
		items = s.delegate(ie)
		if len(items) == 0 {
			items = nil
		}
	}
	s.coord.overlay.Move(items, s.coord.anchor(ie.Root, false))
}

func (s *Source) hoverEnd(ev events.Raw) {
	if s.coord.suppressed {
		return
	}
	s.coord.cancelPending()
	s.coord.overlay.Hide()
}

func (s *Source) touchStart(ev events.Raw) {
	c := s.coord

	s.cachedRoot = nil
	c.overlay.Hide()

	ie, ok := s.capture(ev, true)
	c.cancelPending()
	if !ok {
		return
	}
	c.schedule(s, ie)
}

func (s *Source) touchEnd(events.Raw) {
	s.coord.cancelPending()
	s.coord.suppress()
}
