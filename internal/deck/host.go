package deck

import (
	"image"

	"github.com/phinze/hoverdeck/internal/events"
	"github.com/phinze/hoverdeck/internal/placement"
)

// Region is one equal slice of the touch strip. Its index is the payload
// delegates receive.
type Region struct {
	events.Mux

	Index int
	Rect  image.Rectangle
}

// Host maps touch strip gestures onto regions and the strip root. The strip
// only reports touches, so the touch event family is used.
type Host struct {
	bounds  image.Rectangle
	names   events.Table
	root    events.Mux
	regions []*Region
}

// NewHost splits bounds into n equal regions. The last region absorbs any
// remainder so the regions cover the strip exactly.
func NewHost(bounds image.Rectangle, n int) *Host {
	if n < 1 {
		n = 1
	}

	h := &Host{
		bounds: bounds,
		names:  events.Detect(events.Capabilities{TouchEvents: true}),
	}

	width := bounds.Dx() / n
	for i := 0; i < n; i++ {
		r := image.Rect(bounds.Min.X+i*width, bounds.Min.Y, bounds.Min.X+(i+1)*width, bounds.Max.Y)
		if i == n-1 {
			r.Max.X = bounds.Max.X
		}
		h.regions = append(h.regions, &Region{Index: i, Rect: r})
	}

	return h
}

// Events implements coordinator.Host.
func (h *Host) Events() events.Table { return h.names }

// Root implements coordinator.Host.
func (h *Host) Root() events.Element { return &h.root }

// Regions returns the strip regions left to right.
func (h *Host) Regions() []*Region { return h.regions }

// RegionAt returns the region containing p, or nil.
func (h *Host) RegionAt(p image.Point) *Region {
	for _, r := range h.regions {
		if p.In(r.Rect) {
			return r
		}
	}
	return nil
}

// Tap delivers a strip touch. A short tap is a complete touch, start then
// end. A long tap is reported while the finger is still down, so only the
// start is delivered and the tooltip shows after the delay.
func (h *Host) Tap(p image.Point, long bool) {
	r := h.RegionAt(p)
	h.dispatch(r, h.names.TouchStart, p)
	if !long {
		h.dispatch(r, h.names.TouchEnd, p)
	}
}

// Swipe dismisses any visible overlay. It only reaches the root.
func (h *Host) Swipe(origin, dest image.Point) {
	h.dispatch(nil, h.names.TouchStart, dest)
}

// dispatch delivers to the region first and then to the root.
func (h *Host) dispatch(r *Region, name string, p image.Point) {
	ev := events.Raw{
		Name:    name,
		Touches: []placement.Point{toPoint(p.Sub(h.bounds.Min))},
	}
	if r != nil {
		ev.Payload = r.Index
		ev.Index = r.Index
		r.Dispatch(ev)
	}
	h.root.Dispatch(ev)
}

func toPoint(p image.Point) placement.Point {
	return placement.Point{X: float64(p.X), Y: float64(p.Y)}
}
