package canvas

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/phinze/hoverdeck/internal/placement"
)

// arrowSVG draws a right triangle filling one corner of a 16x16 box.
const arrowSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path d="%s" fill="currentColor"/>
</svg>`

// arrowPath returns the triangle whose right angle sits in the arrow's corner.
func arrowPath(a placement.Arrow) string {
	switch a {
	case placement.ArrowTopRight:
		return "M16 0 L16 16 L0 0 Z"
	case placement.ArrowBottomLeft:
		return "M0 16 L0 0 L16 16 Z"
	case placement.ArrowBottomRight:
		return "M16 16 L0 16 L16 0 Z"
	default:
		return "M0 0 L16 0 L0 16 Z"
	}
}

// drawArrow renders the arrow for a into dst at the matching corner of
// bounds, size pixels wide.
func drawArrow(dst *image.RGBA, bounds image.Rectangle, a placement.Arrow, size int, col color.Color) error {
	if a == placement.ArrowNone || size <= 0 {
		return nil
	}

	r, g, b, _ := col.RGBA()
	hexColor := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	svg := fmt.Sprintf(arrowSVG, arrowPath(a))
	svg = strings.ReplaceAll(svg, "currentColor", hexColor)

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return fmt.Errorf("failed to parse arrow svg: %w", err)
	}

	x := bounds.Min.X
	if !a.Left() {
		x = bounds.Max.X - size
	}
	y := bounds.Min.Y
	if !a.Top() {
		y = bounds.Max.Y - size
	}
	icon.SetTarget(float64(x), float64(y), float64(size), float64(size))

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return nil
}
