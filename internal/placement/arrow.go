package placement

// Arrow is the overlay corner the anchor arrow is drawn at.
// The zero value means no arrow has been applied yet.
type Arrow int

const (
	ArrowNone Arrow = iota
	ArrowTopLeft
	ArrowTopRight
	ArrowBottomLeft
	ArrowBottomRight
)

// arrowClasses holds the mutually exclusive orientation classes, indexed by Arrow.
var arrowClasses = [...]string{
	ArrowNone:        "",
	ArrowTopLeft:     "top left",
	ArrowTopRight:    "top right",
	ArrowBottomLeft:  "bottom left",
	ArrowBottomRight: "bottom right",
}

// ArrowFor returns the arrow orientation for an interaction in quadrant q.
// The arrow carries the quadrant's own corner name: the overlay sits
// diagonally away from the anchor, so that corner is the one facing it.
func ArrowFor(q Quadrant) Arrow {
	switch q {
	case TopLeft:
		return ArrowTopLeft
	case TopRight:
		return ArrowTopRight
	case BottomLeft:
		return ArrowBottomLeft
	default:
		return ArrowBottomRight
	}
}

// Class returns the orientation class name, e.g. "bottom right".
func (a Arrow) Class() string {
	if a < 0 || int(a) >= len(arrowClasses) {
		return ""
	}
	return arrowClasses[a]
}

func (a Arrow) String() string { return a.Class() }

// Classes lists every orientation class. Renderers clear all of them before
// applying the active one.
func Classes() []string {
	return []string{
		arrowClasses[ArrowTopLeft],
		arrowClasses[ArrowTopRight],
		arrowClasses[ArrowBottomLeft],
		arrowClasses[ArrowBottomRight],
	}
}

// Left reports whether the arrow sits on the overlay's left edge.
func (a Arrow) Left() bool { return a == ArrowTopLeft || a == ArrowBottomLeft }

// Top reports whether the arrow sits on the overlay's top edge.
func (a Arrow) Top() bool { return a == ArrowTopLeft || a == ArrowTopRight }
