// Package overlaytest provides an in-memory overlay renderer for tests.
package overlaytest

import (
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

// Recorder is an overlay.Renderer that keeps the last applied state and
// counts calls.
type Recorder struct {
	// RowSize is the size each row adds to Measure. Defaults to 100x20.
	RowSize placement.Size

	Creates     int
	Rows        []overlay.DisplayItem
	RowUpdates  int
	Pos         placement.Point
	Arrow       placement.Arrow
	Places      int
	Opacity     float64
	Opacities   []float64
	Interactive bool
}

var _ overlay.Renderer = (*Recorder)(nil)

// Create implements overlay.Renderer.
func (r *Recorder) Create() { r.Creates++ }

// SetRows implements overlay.Renderer.
func (r *Recorder) SetRows(items []overlay.DisplayItem) {
	r.Rows = append(r.Rows[:0], items...)
	r.RowUpdates++
}

// Measure implements overlay.Renderer.
func (r *Recorder) Measure() placement.Size {
	row := r.RowSize
	if row == (placement.Size{}) {
		row = placement.Size{Width: 100, Height: 20}
	}
	return placement.Size{Width: row.Width, Height: row.Height * float64(len(r.Rows))}
}

// Place implements overlay.Renderer.
func (r *Recorder) Place(p placement.Point, arrow placement.Arrow) {
	r.Pos = p
	r.Arrow = arrow
	r.Places++
}

// SetOpacity implements overlay.Renderer.
func (r *Recorder) SetOpacity(v float64) {
	r.Opacity = v
	r.Opacities = append(r.Opacities, v)
}

// SetInteractive implements overlay.Renderer.
func (r *Recorder) SetInteractive(on bool) { r.Interactive = on }

// Lines renders the rows as "Label: Value" strings.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Rows))
	for i, it := range r.Rows {
		lines[i] = it.Label + ": " + it.Value
	}
	return lines
}
