package overlay_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phinze/hoverdeck/internal/clock"
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/overlay/overlaytest"
	"github.com/phinze/hoverdeck/internal/placement"
)

func newSurface(t *testing.T) (*overlay.Surface, *overlaytest.Recorder, *clock.Manual) {
	t.Helper()
	rec := &overlaytest.Recorder{}
	clk := clock.NewManual(time.Unix(0, 0))
	vp := overlay.FixedViewport{Width: 800, Height: 600}
	return overlay.New(rec, vp, clk, overlay.DefaultOptions(), zerolog.Nop()), rec, clk
}

var widgets = []overlay.DisplayItem{{Label: "Category", Value: "Widgets"}}

func TestSurface_ShowPlacesAndRenders(t *testing.T) {
	s, rec, _ := newSurface(t)

	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))

	assert.True(t, s.Visible())
	assert.Equal(t, 1, rec.Creates)
	assert.Equal(t, []string{"Category: Widgets"}, rec.Lines())
	assert.Equal(t, placement.Point{X: 121, Y: 86}, rec.Pos)
	assert.Equal(t, "top left", rec.Arrow.Class())
	assert.Equal(t, 1.0, rec.Opacity)
	assert.True(t, rec.Interactive)

	anchor, ok := s.Anchor()
	require.True(t, ok)
	assert.Equal(t, placement.Rect{X: 100, Y: 100}, anchor)
}

func TestSurface_RepeatedShowReusesInstance(t *testing.T) {
	s, rec, _ := newSurface(t)

	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))
	s.Show([]overlay.DisplayItem{{Label: "A", Value: "1"}, {Label: "B", Value: "2"}},
		placement.PointAnchor(placement.Point{X: 700, Y: 500}))

	assert.Equal(t, 1, rec.Creates)
	assert.Equal(t, []string{"A: 1", "B: 2"}, rec.Lines())
	assert.Equal(t, "bottom right", rec.Arrow.Class())
}

func TestSurface_MoveWhileHiddenIsNoop(t *testing.T) {
	s, rec, _ := newSurface(t)

	s.Move(widgets, placement.PointAnchor(placement.Point{X: 10, Y: 10}))

	assert.False(t, s.Visible())
	assert.Zero(t, rec.Creates)
	assert.Zero(t, rec.RowUpdates)
	assert.Zero(t, rec.Places)
	_, ok := s.Anchor()
	assert.False(t, ok)
}

func TestSurface_MoveKeepsContentWhenItemsNil(t *testing.T) {
	s, rec, _ := newSurface(t)
	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))
	opacities := len(rec.Opacities)

	s.Move(nil, placement.PointAnchor(placement.Point{X: 700, Y: 100}))

	assert.Equal(t, []string{"Category: Widgets"}, rec.Lines())
	assert.Equal(t, 1, rec.RowUpdates)
	assert.Equal(t, "top right", rec.Arrow.Class())
	assert.Len(t, rec.Opacities, opacities, "move must not restart the fade")

	s.Move([]overlay.DisplayItem{{Label: "Category", Value: "Gadgets"}}, placement.PointAnchor(placement.Point{X: 700, Y: 100}))
	assert.Equal(t, []string{"Category: Gadgets"}, rec.Lines())
}

func TestSurface_HideFadesBeforeDisablingHitTesting(t *testing.T) {
	s, rec, clk := newSurface(t)
	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))

	s.Hide()

	assert.False(t, s.Visible())
	assert.True(t, rec.Interactive, "still hit-testable while fading")

	clk.Advance(100 * time.Millisecond)
	assert.True(t, rec.Interactive)
	assert.Greater(t, rec.Opacity, 0.0)
	assert.Less(t, rec.Opacity, 1.0)

	clk.Advance(200 * time.Millisecond)
	assert.False(t, rec.Interactive)
	assert.Equal(t, 0.0, rec.Opacity)
}

func TestSurface_ShowDuringFadeOutRestartsFromCurrentOpacity(t *testing.T) {
	rec := &overlaytest.Recorder{}
	clk := clock.NewManual(time.Unix(0, 0))
	opts := overlay.DefaultOptions()
	opts.ShowFade = 100 * time.Millisecond
	s := overlay.New(rec, overlay.FixedViewport{Width: 800, Height: 600}, clk, opts, zerolog.Nop())

	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))
	clk.Advance(time.Second)
	require.Equal(t, 1.0, rec.Opacity)

	s.Hide()
	clk.Advance(100 * time.Millisecond)
	mid := rec.Opacity
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	s.Show(widgets, placement.PointAnchor(placement.Point{X: 100, Y: 100}))
	clk.Advance(16 * time.Millisecond)
	assert.GreaterOrEqual(t, rec.Opacity, mid, "fade-in continues from where fade-out stopped")

	// The canceled fade-out must never switch hit testing off.
	clk.Advance(time.Second)
	assert.True(t, rec.Interactive)
	assert.Equal(t, 1.0, rec.Opacity)
	assert.Zero(t, clk.Pending())
}

func TestSurface_ViewportOverride(t *testing.T) {
	s, rec, _ := newSurface(t)

	s.SetViewportOverride(&placement.Size{Width: 100, Height: 100})
	s.Show(widgets, placement.PointAnchor(placement.Point{X: 60, Y: 60}))
	assert.Equal(t, "bottom right", rec.Arrow.Class())

	s.SetViewportOverride(nil)
	s.Move(nil, placement.PointAnchor(placement.Point{X: 60, Y: 60}))
	assert.Equal(t, "top left", rec.Arrow.Class())
}

func TestNew_PanicsWithoutCollaborators(t *testing.T) {
	assert.Panics(t, func() {
		overlay.New(nil, overlay.FixedViewport{}, clock.NewManual(time.Now()), overlay.DefaultOptions(), zerolog.Nop())
	})
}
