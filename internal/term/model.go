// Package term runs tooltips in a terminal. A bubbletea program reports all
// mouse motion over a bar chart; the overlay is a lipgloss box.
package term

import (
	"context"
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/content"
	"github.com/phinze/hoverdeck/internal/coordinator"
	"github.com/phinze/hoverdeck/internal/events"
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

const (
	barWidth = 6
	barGap   = 2
	title    = "hoverdeck - hover a bar, q to quit"
)

// TaskMsg carries work posted from a timer into the update loop.
type TaskMsg func()

// Datum is one bar of the chart.
type Datum struct {
	Label string
	Value float64
}

// Bar is a chart bar and the element its tooltip hangs off. Rect is in
// cells.
type Bar struct {
	events.Mux

	Index int
	Datum Datum
	Rect  image.Rectangle
}

// Options configures a Model.
type Options struct {
	Enabled bool
	Tooltip coordinator.Config
	Overlay overlay.Options
	Labels  content.Labels
}

// Model is the bubbletea model. It also serves as the coordinator host.
type Model struct {
	width, height int
	names         events.Table
	root          events.Mux
	bars          []*Bar
	peak          float64

	hovered *Bar
	buttons int

	box     *Box
	surface *overlay.Surface
	coord   *coordinator.Coordinator
	log     zerolog.Logger
}

var _ tea.Model = (*Model)(nil)

// New builds the model. clk must deliver callbacks on the update loop,
// either by sending TaskMsg values into the program or, in tests, by being
// advanced from the test goroutine.
func New(data []Datum, clk clock.Clock, opts Options, log zerolog.Logger) *Model {
	m := &Model{
		width:  80,
		height: 24,
		names:  events.Detect(events.Capabilities{}),
		box:    NewBox(),
		log:    log.With().Str("component", "term").Logger(),
	}

	for i, d := range data {
		m.bars = append(m.bars, &Bar{Index: i, Datum: d})
		m.peak = max(m.peak, d.Value)
	}
	m.layout()

	m.surface = overlay.New(m.box, overlay.ViewportFunc(m.viewport), clk, opts.Overlay, log)
	m.coord = coordinator.New(m, m.surface, clk, opts.Tooltip, coordinator.WithLogger(log))
	m.coord.SetGlobalEnabled(opts.Enabled)
	m.coord.SetLocalizedLabels(opts.Labels)

	for _, b := range m.bars {
		m.coord.Register(b, m.describe, coordinator.WithReloadOnMove())
	}

	return m
}

// Run starts a program over data until the user quits or ctx is done.
func Run(ctx context.Context, data []Datum, opts Options, log zerolog.Logger) error {
	var p *tea.Program
	clk := clock.New(func(fn func()) { p.Send(TaskMsg(fn)) })

	m := New(data, clk, opts, log)
	p = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	m.log.Info().Int("bars", len(data)).Msg("terminal host started")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}

// Events implements coordinator.Host. Terminals only report mouse input.
func (m *Model) Events() events.Table { return m.names }

// Root implements coordinator.Host.
func (m *Model) Root() events.Element { return &m.root }

// Bars returns the chart bars.
func (m *Model) Bars() []*Bar { return m.bars }

// Overlay returns the overlay surface.
func (m *Model) Overlay() *overlay.Surface { return m.surface }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TaskMsg:
		msg()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.coord.Stop()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	grid := make([][]rune, m.height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", m.width))
	}

	put := func(x, y int, s string) {
		if y < 0 || y >= m.height {
			return
		}
		for _, r := range s {
			if x >= 0 && x < m.width {
				grid[y][x] = r
			}
			x++
		}
	}

	put(0, 0, runewidth.Truncate(title, m.width, ""))
	for _, b := range m.bars {
		for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
			put(b.Rect.Min.X, y, strings.Repeat("█", b.Rect.Dx()))
		}
		put(b.Rect.Min.X, m.height-1, runewidth.Truncate(b.Datum.Label, barWidth, ""))
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(m.box.Overlay(lines), "\n")
}

func (m *Model) viewport() placement.Size {
	return placement.Size{Width: float64(m.width), Height: float64(m.height)}
}

// layout sizes bars to the chart area between the title and label rows.
func (m *Model) layout() {
	top, bottom := 2, m.height-2
	area := bottom - top
	for i, b := range m.bars {
		h := 1
		if m.peak > 0 && area > 0 {
			h = max(1, int(float64(area)*b.Datum.Value/m.peak))
		}
		x := barGap + i*(barWidth+barGap)
		b.Rect = image.Rect(x, bottom-h, x+barWidth, bottom)
	}
}

func (m *Model) barAt(p image.Point) *Bar {
	for _, b := range m.bars {
		if p.In(b.Rect) {
			return b
		}
	}
	return nil
}

// mouse turns terminal mouse reports into hover events on bars.
func (m *Model) mouse(msg tea.MouseMsg) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.buttons = 1
	case tea.MouseActionRelease:
		m.buttons = 0
	}

	p := image.Pt(msg.X, msg.Y)
	bar := m.barAt(p)

	if bar != m.hovered {
		if m.hovered != nil {
			m.dispatch(m.hovered, m.names.HoverEnd, p)
		}
		if bar != nil {
			m.dispatch(bar, m.names.HoverStart, p)
		}
		m.hovered = bar
		return
	}

	if bar != nil && msg.Action == tea.MouseActionMotion {
		m.dispatch(bar, m.names.HoverMove, p)
	}
}

func (m *Model) dispatch(b *Bar, name string, p image.Point) {
	ev := events.Raw{
		Name:     name,
		Payload:  b.Index,
		Index:    b.Index,
		Root:     placement.Point{X: float64(p.X), Y: float64(p.Y)},
		Local:    placement.Point{X: float64(p.X - b.Rect.Min.X), Y: float64(p.Y - b.Rect.Min.Y)},
		HasPoint: true,
		Buttons:  m.buttons,
	}
	b.Dispatch(ev)
	m.root.Dispatch(ev)
}

// describe is the display delegate. The highlighted value is the level of
// the bar under the pointer.
func (m *Model) describe(ev coordinator.InteractionEvent) []overlay.DisplayItem {
	if ev.Index < 0 || ev.Index >= len(m.bars) {
		return nil
	}
	b := m.bars[ev.Index]

	d := content.Data{
		Category: &content.Value{Column: content.Column{Name: "Label"}, Raw: b.Datum.Label},
		Values: []content.Value{
			{Column: content.Column{Name: "Value", Format: "%.1f"}, Raw: b.Datum.Value},
		},
	}
	if h := b.Rect.Dy(); h > 0 {
		level := float64(h-int(ev.Local.Y)) / float64(h)
		d.Highlighted = &content.Value{
			Column: content.Column{Format: "%.1f"},
			Raw:    b.Datum.Value * level,
		}
	}

	return content.Build(d, m.coord.Labels(), content.Printf{})
}
