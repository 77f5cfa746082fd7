// Package render places and draws styled promotional text on a generated
// image. Layout (where a text field is anchored) and styling (how its
// shadow, border, and fill are drawn) are deterministic; only the font
// rasterizer and the base image vary between runs.
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontWeight selects between the two embedded faces.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

// FontSource resolves font faces and measures text. Faces are cached per
// weight and size; the renderer is single-threaded so no locking is needed.
type FontSource struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	weight FontWeight
	size   int
}

// NewFontSource parses the embedded Go Regular and Go Bold fonts.
func NewFontSource() (*FontSource, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontSource{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns a rasterizable face for the given weight and point size.
func (f *FontSource) Face(weight FontWeight, size int) (font.Face, error) {
	key := faceKey{weight: weight, size: size}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	src := f.regular
	if weight == WeightBold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %dpt face: %w", size, err)
	}

	f.faces[key] = face
	return face, nil
}

// MeasureText returns the advance width and line height of text at the
// given size, using the regular face so layout stays independent of the
// per-variant weight.
func (f *FontSource) MeasureText(text string, fontSize int) (width, height int, err error) {
	face, err := f.Face(WeightRegular, fontSize)
	if err != nil {
		return 0, 0, err
	}
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil(), nil
}
