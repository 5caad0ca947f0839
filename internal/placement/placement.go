// Package placement computes where the overlay sits relative to the point
// that triggered it and which corner its arrow points from.
package placement

const (
	// ArrowInset is the distance the arrow tip sits inside the overlay corner.
	ArrowInset = 7.0

	// TouchHitSize is the side of the square anchor used for touch input.
	TouchHitSize = 12.0
)

// Point is a position in canvas units.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in canvas units.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// PointAnchor returns a zero-size anchor at p, used for mouse input.
func PointAnchor(p Point) Rect {
	return Rect{X: p.X, Y: p.Y}
}

// TouchAnchor returns a TouchHitSize square centered on p.
func TouchAnchor(p Point) Rect {
	return SquareAnchor(p, TouchHitSize)
}

// SquareAnchor returns a square of the given side centered on p.
func SquareAnchor(p Point, side float64) Rect {
	return Rect{
		X:      p.X - side/2,
		Y:      p.Y - side/2,
		Width:  side,
		Height: side,
	}
}

// Quadrant is the viewport quadrant containing an anchor's center.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top left"
	case TopRight:
		return "top right"
	case BottomLeft:
		return "bottom left"
	case BottomRight:
		return "bottom right"
	}
	return "unknown"
}

// Left reports whether q is on the left half of the viewport.
func (q Quadrant) Left() bool { return q == TopLeft || q == BottomLeft }

// Top reports whether q is on the top half of the viewport.
func (q Quadrant) Top() bool { return q == TopLeft || q == TopRight }

// QuadrantOf returns the quadrant of viewport containing center.
// A center exactly on a midline belongs to the right or bottom side.
func QuadrantOf(center Point, viewport Size) Quadrant {
	left := center.X < viewport.Width/2
	top := center.Y < viewport.Height/2

	switch {
	case top && left:
		return TopLeft
	case top:
		return TopRight
	case left:
		return BottomLeft
	default:
		return BottomRight
	}
}

// PositionFor returns the top-left corner of an overlay of the given size
// anchored to anchor in quadrant q. The overlay lands diagonally opposite the
// quadrant so the arrow at its near corner points back at the anchor.
func PositionFor(anchor Rect, q Quadrant, overlay Size, inset float64) Point {
	halfWidth := anchor.Width / 2

	var dx, dy float64
	if q.Left() {
		dx = 3*inset + halfWidth
	} else {
		dx = -(2*inset + overlay.Width + halfWidth)
	}
	if q.Top() {
		dy = -2*inset - halfWidth
	} else {
		dy = -(overlay.Height - 2*inset + halfWidth)
	}

	return Point{X: anchor.X + dx, Y: anchor.Y + dy}
}

// Place resolves quadrant, position and arrow for anchor in one call.
func Place(anchor Rect, viewport, overlay Size, inset float64) (Point, Arrow) {
	q := QuadrantOf(anchor.Center(), viewport)
	return PositionFor(anchor, q, overlay, inset), ArrowFor(q)
}
