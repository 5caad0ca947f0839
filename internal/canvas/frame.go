package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/phinze/hoverdeck/internal/placement"
)

// Frame is a fixed-size canvas the overlay is composited onto. It doubles as
// the overlay's viewport.
type Frame struct {
	bounds     image.Rectangle
	background image.Image
}

// NewFrame creates a frame of the given bounds over background. A nil
// background is transparent.
func NewFrame(bounds image.Rectangle, background image.Image) *Frame {
	return &Frame{bounds: bounds, background: background}
}

// Size implements overlay.Viewport.
func (f *Frame) Size() placement.Size {
	return placement.Size{Width: float64(f.bounds.Dx()), Height: float64(f.bounds.Dy())}
}

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() image.Rectangle { return f.bounds }

// SetBackground swaps the image drawn under the overlay.
func (f *Frame) SetBackground(bg image.Image) { f.background = bg }

// Render draws the background and the overlay into a new image.
func (f *Frame) Render(r *Renderer) *image.RGBA {
	img := image.NewRGBA(f.bounds)
	if f.background != nil {
		draw.Draw(img, img.Bounds(), f.background, f.background.Bounds().Min, draw.Src)
	}
	if r != nil {
		r.Composite(img)
	}
	return img
}

// Gradient fills rect with a horizontal gradient from start to end.
func Gradient(rect image.Rectangle, start, end color.RGBA) image.Image {
	img := image.NewRGBA(rect)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := float64(x-rect.Min.X) / float64(rect.Dx())

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(start.R)*(1-t) + float64(end.R)*t),
				G: uint8(float64(start.G)*(1-t) + float64(end.G)*t),
				B: uint8(float64(start.B)*(1-t) + float64(end.B)*t),
				A: 255,
			})
		}
	}

	return img
}
