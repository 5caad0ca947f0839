package canvas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// faces holds the font faces used for overlay rows.
type faces struct {
	label font.Face
	value font.Face
}

// loadFaces parses the bundled Go fonts at the given point size.
func loadFaces(size float64) (faces, error) {
	ttBold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("failed to parse bold font: %w", err)
	}

	label, err := opentype.NewFace(ttBold, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return faces{}, fmt.Errorf("failed to create label face: %w", err)
	}

	ttRegular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("failed to parse regular font: %w", err)
	}

	value, err := opentype.NewFace(ttRegular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return faces{}, fmt.Errorf("failed to create value face: %w", err)
	}

	return faces{label: label, value: value}, nil
}
