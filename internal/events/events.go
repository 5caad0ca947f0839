// Package events defines the raw input model hosts deliver to interactive
// elements, and the event-name table resolved once per host from its input
// capabilities.
package events

import "github.com/phinze/hoverdeck/internal/placement"

// Handler receives raw events dispatched to an element.
type Handler func(Raw)

// Element is an interactive region that can have handlers attached by name.
// Hosts dispatch an event to the element under it first and then to the root,
// mirroring how input bubbles to a container.
type Element interface {
	On(name string, h Handler)
}

// Raw is one input occurrence as the host saw it.
type Raw struct {
	Name string

	// Payload and Index identify the data behind the element.
	Payload any
	Index   int

	// Root and Local are the pointer position relative to the root container
	// and to the element. They are only meaningful when HasPoint is set.
	Root     placement.Point
	Local    placement.Point
	HasPoint bool

	// Touches holds active touch points in root coordinates, first one wins.
	Touches []placement.Point

	// Buttons is the pressed-button bitmask reported with the event.
	Buttons int
}

// Pressed reports whether any button was held when the event fired.
func (r Raw) Pressed() bool { return r.Buttons != 0 }

// Point resolves the interaction position in root coordinates, preferring
// the pointer position and falling back to the first touch point.
func (r Raw) Point() (placement.Point, bool) {
	if r.HasPoint {
		return r.Root, true
	}
	if len(r.Touches) > 0 {
		return r.Touches[0], true
	}
	return placement.Point{}, false
}

// Mux is a minimal Element that fans events out to its handlers. Hosts embed
// it for every region they expose.
type Mux struct {
	handlers map[string][]Handler
}

// On attaches h for events named name.
func (m *Mux) On(name string, h Handler) {
	if h == nil {
		return
	}
	if m.handlers == nil {
		m.handlers = make(map[string][]Handler)
	}
	m.handlers[name] = append(m.handlers[name], h)
}

// Dispatch delivers ev to every handler registered for ev.Name.
func (m *Mux) Dispatch(ev Raw) {
	for _, h := range m.handlers[ev.Name] {
		h(ev)
	}
}

// Bound reports how many handlers are attached for name.
func (m *Mux) Bound(name string) int {
	return len(m.handlers[name])
}
