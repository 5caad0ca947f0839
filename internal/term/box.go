package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

// Corner glyphs that replace the border corner the arrow points from.
const (
	glyphTopLeft     = "◤"
	glyphTopRight    = "◥"
	glyphBottomLeft  = "◣"
	glyphBottomRight = "◢"
)

// Box renders the overlay as a bordered lipgloss box spliced over the view.
type Box struct {
	style      lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style

	created     bool
	rows        []overlay.DisplayItem
	lines       []string
	size        placement.Size
	pos         placement.Point
	arrow       placement.Arrow
	opacity     float64
	interactive bool
}

var _ overlay.Renderer = (*Box)(nil)

// NewBox returns a box with the default styles.
func NewBox() *Box {
	return &Box{
		style: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		valueStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Create implements overlay.Renderer.
func (b *Box) Create() { b.created = true }

// SetRows implements overlay.Renderer.
func (b *Box) SetRows(items []overlay.DisplayItem) {
	b.rows = append(b.rows[:0], items...)
	b.render()
}

// Measure implements overlay.Renderer. Sizes are in cells.
func (b *Box) Measure() placement.Size { return b.size }

// Place implements overlay.Renderer.
func (b *Box) Place(p placement.Point, arrow placement.Arrow) {
	b.pos = p
	if arrow != b.arrow {
		b.arrow = arrow
		b.render()
	}
}

// SetOpacity implements overlay.Renderer. Terminals have no alpha, so a box
// below full opacity is drawn faint and a transparent one is not drawn.
func (b *Box) SetOpacity(v float64) {
	faint := b.opacity < 1
	b.opacity = math.Max(0, math.Min(1, v))
	if faint != (b.opacity < 1) {
		b.render()
	}
}

// SetInteractive implements overlay.Renderer.
func (b *Box) SetInteractive(on bool) { b.interactive = on }

// Interactive reports whether the box takes part in hit testing.
func (b *Box) Interactive() bool { return b.interactive }

// Drawn reports whether Overlay will draw anything.
func (b *Box) Drawn() bool {
	return b.created && b.opacity > 0 && len(b.lines) > 0
}

// Arrow returns the active arrow orientation.
func (b *Box) Arrow() placement.Arrow { return b.arrow }

func (b *Box) render() {
	if len(b.rows) == 0 {
		b.lines = nil
		b.size = placement.Size{}
		return
	}

	labelWidth := 0
	for _, r := range b.rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.Label)+1)
	}

	body := make([]string, 0, len(b.rows))
	for _, r := range b.rows {
		label := runewidth.FillRight(r.Label+":", labelWidth)
		body = append(body, b.labelStyle.Render(label)+" "+b.valueStyle.Render(r.Value))
	}

	out := b.style.
		Border(arrowBorder(b.arrow)).
		Faint(b.opacity < 1).
		Render(strings.Join(body, "\n"))

	b.lines = strings.Split(out, "\n")
	b.size = placement.Size{Width: float64(lipgloss.Width(out)), Height: float64(lipgloss.Height(out))}
}

// arrowBorder swaps the corner the arrow sits on for its glyph.
func arrowBorder(a placement.Arrow) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	switch a {
	case placement.ArrowTopLeft:
		border.TopLeft = glyphTopLeft
	case placement.ArrowTopRight:
		border.TopRight = glyphTopRight
	case placement.ArrowBottomLeft:
		border.BottomLeft = glyphBottomLeft
	case placement.ArrowBottomRight:
		border.BottomRight = glyphBottomRight
	}
	return border
}

// Overlay splices the box into lines at its position. lines must be plain
// text; cells the box covers are replaced.
func (b *Box) Overlay(lines []string) []string {
	if !b.Drawn() {
		return lines
	}

	out := append([]string(nil), lines...)
	x := max(0, int(math.Round(b.pos.X)))
	y := max(0, int(math.Round(b.pos.Y)))

	for i, seg := range b.lines {
		row := y + i
		if row >= len(out) {
			break
		}
		out[row] = splice(out[row], seg, x)
	}
	return out
}

// splice replaces the cells of base starting at column x with seg.
func splice(base, seg string, x int) string {
	w := lipgloss.Width(seg)
	left := runewidth.FillRight(runewidth.Truncate(base, x, ""), x)
	right := runewidth.TruncateLeft(base, x+w, "")
	return left + seg + right
}
