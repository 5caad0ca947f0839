// Package canvas renders the overlay into raster images with x/image fonts,
// a rasterx rounded box and an SVG arrow.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/rs/zerolog"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

// Theme holds the overlay's colors and metrics.
type Theme struct {
	Background color.RGBA
	Label      color.RGBA
	Value      color.RGBA
	Arrow      color.RGBA
	FontSize   float64
	Padding    int
	ColumnGap  int
	RowGap     int
	Radius     float64
	ArrowSize  int
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{25, 25, 25, 255},
		Label:      color.RGBA{180, 180, 180, 255},
		Value:      color.RGBA{255, 255, 255, 255},
		Arrow:      color.RGBA{0, 191, 255, 255},
		FontSize:   14,
		Padding:    8,
		ColumnGap:  8,
		RowGap:     4,
		Radius:     4,
		ArrowSize:  int(2 * placement.ArrowInset),
	}
}

// Renderer implements overlay.Renderer on an offscreen RGBA image that is
// composited onto a frame with Composite.
type Renderer struct {
	theme Theme
	faces faces
	log   zerolog.Logger

	created     bool
	rows        []overlay.DisplayItem
	size        image.Point
	labelWidth  int
	img         *image.RGBA
	pos         placement.Point
	arrow       placement.Arrow
	opacity     float64
	interactive bool
	dirty       bool
}

var _ overlay.Renderer = (*Renderer)(nil)

// NewRenderer loads fonts and returns a renderer for theme.
func NewRenderer(theme Theme, log zerolog.Logger) (*Renderer, error) {
	f, err := loadFaces(theme.FontSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		theme: theme,
		faces: f,
		log:   log.With().Str("component", "canvas").Logger(),
	}, nil
}

// Create implements overlay.Renderer.
func (r *Renderer) Create() {
	r.created = true
	r.dirty = true
}

// SetRows implements overlay.Renderer.
func (r *Renderer) SetRows(items []overlay.DisplayItem) {
	r.rows = append(r.rows[:0], items...)
	r.layout()
	r.paint()
}

// Measure implements overlay.Renderer.
func (r *Renderer) Measure() placement.Size {
	return placement.Size{Width: float64(r.size.X), Height: float64(r.size.Y)}
}

// Place implements overlay.Renderer.
func (r *Renderer) Place(p placement.Point, arrow placement.Arrow) {
	if arrow != r.arrow {
		r.arrow = arrow
		r.paint()
	}
	r.pos = p
	r.dirty = true
}

// SetOpacity implements overlay.Renderer.
func (r *Renderer) SetOpacity(v float64) {
	r.opacity = math.Max(0, math.Min(1, v))
	r.dirty = true
}

// SetInteractive implements overlay.Renderer.
func (r *Renderer) SetInteractive(on bool) {
	r.interactive = on
}

// Bounds returns the overlay's rectangle in frame coordinates.
func (r *Renderer) Bounds() image.Rectangle {
	origin := image.Pt(int(math.Round(r.pos.X)), int(math.Round(r.pos.Y)))
	return image.Rectangle{Min: origin, Max: origin.Add(r.size)}
}

// HitTest reports whether p lands on the overlay while it takes part in hit testing.
func (r *Renderer) HitTest(p image.Point) bool {
	return r.created && r.interactive && p.In(r.Bounds())
}

// Opacity returns the applied opacity.
func (r *Renderer) Opacity() float64 { return r.opacity }

// Arrow returns the active arrow orientation.
func (r *Renderer) Arrow() placement.Arrow { return r.arrow }

// Dirty reports whether the overlay changed since the last Composite.
func (r *Renderer) Dirty() bool { return r.dirty }

// Composite draws the overlay onto dst at its position and opacity.
func (r *Renderer) Composite(dst draw.Image) {
	r.dirty = false
	if !r.created || r.img == nil || r.opacity <= 0 {
		return
	}

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(r.opacity * 255))})
	draw.DrawMask(dst, r.Bounds(), r.img, image.Point{}, mask, image.Point{}, draw.Over)
}

// layout measures rows and sizes the offscreen image.
func (r *Renderer) layout() {
	t := r.theme

	r.labelWidth = 0
	valueWidth := 0
	for _, row := range r.rows {
		r.labelWidth = max(r.labelWidth, font.MeasureString(r.faces.label, row.Label).Ceil())
		valueWidth = max(valueWidth, font.MeasureString(r.faces.value, row.Value).Ceil())
	}

	w := 2*t.Padding + r.labelWidth + t.ColumnGap + valueWidth
	h := 2*t.Padding + len(r.rows)*r.rowHeight() - t.RowGap
	if len(r.rows) == 0 {
		w, h = 0, 0
	}
	r.size = image.Pt(w, h)
	r.dirty = true
}

func (r *Renderer) rowHeight() int {
	m := r.faces.value.Metrics()
	return (m.Ascent + m.Descent).Ceil() + r.theme.RowGap
}

// paint redraws the offscreen image from rows and arrow.
func (r *Renderer) paint() {
	if r.size.X == 0 || r.size.Y == 0 {
		r.img = nil
		return
	}

	t := r.theme
	img := image.NewRGBA(image.Rectangle{Max: r.size})

	w, h := r.size.X, r.size.Y
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(t.Background)
	rasterx.AddRoundRect(0, 0, float64(w), float64(h), t.Radius, t.Radius, 0, rasterx.RoundGap, filler)
	filler.Draw()

	if err := drawArrow(img, img.Bounds(), r.arrow, t.ArrowSize, t.Arrow); err != nil {
		r.log.Warn().Err(err).Msg("arrow not drawn")
	}

	ascent := r.faces.value.Metrics().Ascent.Ceil()
	for i, row := range r.rows {
		y := t.Padding + i*r.rowHeight() + ascent
		drawText(img, row.Label, t.Padding, y, r.faces.label, t.Label)
		drawText(img, row.Value, t.Padding+r.labelWidth+t.ColumnGap, y, r.faces.value, t.Value)
	}

	r.img = img
	r.dirty = true
}

func drawText(img *image.RGBA, text string, x, y int, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
