package events

// Capabilities describes which input event families a host platform emits.
type Capabilities struct {
	PointerEvents   bool
	MSPointerEvents bool
	TouchEvents     bool
}

// Table is the resolved set of event names handlers are attached under.
type Table struct {
	HoverStart string
	HoverMove  string
	HoverEnd   string
	TouchStart string
	TouchEnd   string
}

const (
	MouseOver = "mouseover"
	MouseMove = "mousemove"
	MouseOut  = "mouseout"

	PointerDown   = "pointerdown"
	PointerUp     = "pointerup"
	MSPointerDown = "MSPointerDown"
	MSPointerUp   = "MSPointerUp"
	TouchStart    = "touchstart"
	TouchEnd      = "touchend"
)

// Detect resolves the touch-family names for caps. Pointer events are
// preferred, then the legacy MS pointer family, then plain touch events.
func Detect(caps Capabilities) Table {
	t := Table{
		HoverStart: MouseOver,
		HoverMove:  MouseMove,
		HoverEnd:   MouseOut,
	}

	switch {
	case caps.PointerEvents:
		t.TouchStart, t.TouchEnd = PointerDown, PointerUp
	case caps.MSPointerEvents:
		t.TouchStart, t.TouchEnd = MSPointerDown, MSPointerUp
	default:
		t.TouchStart, t.TouchEnd = TouchStart, TouchEnd
	}

	return t
}
