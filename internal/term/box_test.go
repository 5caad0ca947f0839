package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name string
		base string
		seg  string
		x    int
		want string
	}{
		{"middle", "abcdefgh", "XY", 3, "abcXYfgh"},
		{"start", "abcdefgh", "XY", 0, "XYcdefgh"},
		{"past end", "ab", "XY", 4, "ab  XY"},
		{"overhang", "abcd", "XYZ", 2, "abXYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splice(tt.base, tt.seg, tt.x))
		})
	}
}

func TestBox_MeasureAndArrow(t *testing.T) {
	b := NewBox()
	b.Create()
	assert.Equal(t, placement.Size{}, b.Measure())

	b.SetRows([]overlay.DisplayItem{{Label: "Label", Value: "alpha"}, {Label: "Value", Value: "1"}})
	size := b.Measure()
	assert.Equal(t, 4.0, size.Height)
	assert.Greater(t, size.Width, 10.0)

	b.Place(placement.Point{}, placement.ArrowTopRight)
	assert.True(t, strings.HasSuffix(b.lines[0], glyphTopRight))

	b.Place(placement.Point{}, placement.ArrowBottomLeft)
	assert.True(t, strings.HasPrefix(b.lines[len(b.lines)-1], glyphBottomLeft))
	assert.False(t, strings.Contains(b.lines[0], glyphTopRight))
}

func TestBox_OverlayRespectsOpacity(t *testing.T) {
	b := NewBox()
	b.Create()
	b.SetRows([]overlay.DisplayItem{{Label: "k", Value: "v"}})
	b.Place(placement.Point{X: 2, Y: 1}, placement.ArrowTopLeft)

	base := []string{"..........", "..........", "..........", ".........."}

	assert.Equal(t, base, b.Overlay(base))

	b.SetOpacity(1)
	out := b.Overlay(base)
	require.Len(t, out, 4)
	assert.Equal(t, base[0], out[0])
	assert.True(t, strings.HasPrefix(out[1], ".."+glyphTopLeft))
	assert.Contains(t, out[2], "k:")
	assert.Equal(t, "..........", base[1])
}
