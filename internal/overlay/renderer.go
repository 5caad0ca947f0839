package overlay

import "github.com/phinze/hoverdeck/internal/placement"

// DisplayItem is one label/value row of the overlay.
type DisplayItem struct {
	Label string
	Value string
}

// Renderer is the drawing backend the surface presents itself through.
// The surface calls Create once, before anything else.
type Renderer interface {
	// Create builds the overlay container, its arrow and its row area.
	Create()

	// SetRows clears existing rows and renders items in order.
	SetRows(items []DisplayItem)

	// Measure returns the overlay size for the current rows.
	Measure() placement.Size

	// Place moves the overlay's top-left corner to p and makes arrow the
	// only active orientation.
	Place(p placement.Point, arrow placement.Arrow)

	// SetOpacity applies an opacity between 0 and 1.
	SetOpacity(v float64)

	// SetInteractive toggles whether the overlay takes part in hit testing.
	SetInteractive(on bool)
}

// Viewport reports the current size of the area the overlay is placed in.
type Viewport interface {
	Size() placement.Size
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() placement.Size

// Size calls f.
func (f ViewportFunc) Size() placement.Size { return f() }

// FixedViewport is a Viewport that never changes size.
type FixedViewport placement.Size

// Size returns the fixed size.
func (v FixedViewport) Size() placement.Size { return placement.Size(v) }
