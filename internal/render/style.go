package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Variant names a visual recipe for rendering one text field.
type Variant int

const (
	MegaBadge Variant = iota
	PremiumBold
	DynamicBubble
	PowerButton
	ElegantScript
	ModernAccent
	SignatureBrand
)

func (v Variant) String() string {
	switch v {
	case MegaBadge:
		return "mega_badge"
	case PremiumBold:
		return "premium_bold"
	case DynamicBubble:
		return "dynamic_bubble"
	case PowerButton:
		return "power_button"
	case ElegantScript:
		return "elegant_script"
	case ModernAccent:
		return "modern_accent"
	case SignatureBrand:
		return "signature_brand"
	}
	return "unknown"
}

// borderKind selects the border iteration pattern.
type borderKind int

const (
	// borderSquare sweeps every offset in the [-r, r] square.
	borderSquare borderKind = iota
	// borderCircle sweeps offsets whose distance from the origin is
	// within the radius, optionally fading with that distance.
	borderCircle
	// borderCross draws only the four axis-aligned offsets at +-r.
	borderCross
)

// recipe is the fixed drawing parameter set for one variant.
type recipe struct {
	shadowOffset  int
	shadowAlpha   uint8
	border        borderKind
	borderRadius  int
	radialFalloff bool
	boxLayers     int // 0 = no background box
	sizeScale     float64
	weight        FontWeight
}

// recipeFor returns the recipe for a variant. The switch covers every
// variant; the trailing return only handles out-of-range values.
func recipeFor(v Variant) recipe {
	switch v {
	case MegaBadge:
		return recipe{shadowOffset: 6, shadowAlpha: 180, border: borderSquare, borderRadius: 4, sizeScale: 1.2, weight: WeightBold}
	case PremiumBold:
		return recipe{shadowOffset: 5, shadowAlpha: 160, border: borderSquare, borderRadius: 3, sizeScale: 1.1, weight: WeightBold}
	case DynamicBubble:
		return recipe{shadowOffset: 4, shadowAlpha: 140, border: borderCircle, borderRadius: 3, radialFalloff: true, sizeScale: 1.1}
	case PowerButton:
		return recipe{shadowOffset: 4, shadowAlpha: 150, border: borderSquare, borderRadius: 2, boxLayers: 3, sizeScale: 1.2, weight: WeightBold}
	case ElegantScript:
		return recipe{shadowOffset: 3, shadowAlpha: 100, border: borderCross, borderRadius: 2, sizeScale: 1.0}
	case ModernAccent:
		return recipe{shadowOffset: 3, shadowAlpha: 120, border: borderCross, borderRadius: 2, sizeScale: 1.0}
	case SignatureBrand:
		return recipe{shadowOffset: 2, shadowAlpha: 90, border: borderSquare, borderRadius: 1, boxLayers: 2, sizeScale: 0.9, weight: WeightBold}
	}
	return recipe{shadowOffset: 3, shadowAlpha: 120, border: borderCross, borderRadius: 2, sizeScale: 1.0}
}

// Background box geometry and palette.
const (
	boxMarginX = 24
	boxMarginY = 16
	boxInset   = 5
)

var (
	fillColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	edgeColor = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	boxColor  = color.NRGBA{R: 190, G: 30, B: 45}
)

// Renderer draws styled text fields onto an image.
type Renderer struct {
	fonts  *FontSource
	layout *Layout
}

// NewRenderer creates a Renderer over the given font source. fonts may be
// nil, in which case every field render fails (and is skipped) while
// layout still works through the approximation path.
func NewRenderer(fonts *FontSource) *Renderer {
	var m Measurer
	if fonts != nil {
		m = fonts
	}
	return &Renderer{fonts: fonts, layout: NewLayout(m)}
}

// Overlay composites all promotional text fields onto a copy of base and
// returns the flattened opaque result. A field that fails to render is
// logged and skipped; the remaining fields still land.
func (r *Renderer) Overlay(base image.Image, texts FieldText) *image.RGBA {
	bounds := base.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, base, bounds.Min, draw.Src)

	for _, f := range Fields(texts) {
		if f.Text == "" {
			continue
		}
		if err := r.renderField(out, f); err != nil {
			log.Warn().Err(err).
				Str("field", f.Name).
				Str("variant", f.Variant.String()).
				Msg("Text field render failed, continuing with remaining fields")
		}
	}

	flattenOpaque(out)
	return out
}

// renderField draws one field as three transparent layers, composited onto
// dst in fixed order: shadow, then border, then fill.
func (r *Renderer) renderField(dst *image.RGBA, f Field) error {
	if r.fonts == nil {
		return fmt.Errorf("no font source configured")
	}

	rec := recipeFor(f.Variant)
	size := int(float64(f.BaseSize) * rec.sizeScale)

	face, err := r.fonts.Face(rec.weight, size)
	if err != nil {
		return err
	}

	bounds := dst.Bounds()
	x, y := r.layout.Position(f.Text, bounds.Dx(), size, f.Zone)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	textW := font.MeasureString(face, f.Text).Ceil()
	textH := ascent + metrics.Descent.Ceil()
	baseline := y + ascent

	shadow := image.NewRGBA(bounds)
	border := image.NewRGBA(bounds)
	fill := image.NewRGBA(bounds)

	// The background box sits behind the glyphs, so it goes on the
	// shadow layer.
	if rec.boxLayers > 0 {
		drawBox(shadow, x, y, textW, textH, rec.boxLayers)
	}

	drawText(shadow, face, f.Text,
		x+rec.shadowOffset, baseline+rec.shadowOffset,
		color.NRGBA{A: rec.shadowAlpha})

	drawBorder(border, face, f.Text, x, baseline, rec)

	drawText(fill, face, f.Text, x, baseline, fillColor)

	for _, layer := range []*image.RGBA{shadow, border, fill} {
		draw.Draw(dst, bounds, layer, bounds.Min, draw.Over)
	}
	return nil
}

// drawBorder strokes the glyph outline by re-drawing the text at offsets
// around the origin, per the recipe's border pattern.
func drawBorder(dst *image.RGBA, face font.Face, text string, x, baseline int, rec recipe) {
	r := rec.borderRadius

	switch rec.border {
	case borderSquare:
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawText(dst, face, text, x+dx, baseline+dy, edgeColor)
			}
		}

	case borderCircle:
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				d2 := dx*dx + dy*dy
				if d2 == 0 || d2 > r*r {
					continue
				}
				c := edgeColor
				if rec.radialFalloff {
					// Alpha fades linearly with radial distance from
					// the glyph origin.
					c.A = uint8(255 * (r*r - d2 + 1) / (r*r + 1))
				}
				drawText(dst, face, text, x+dx, baseline+dy, c)
			}
		}

	case borderCross:
		for _, off := range [4][2]int{{-r, 0}, {r, 0}, {0, -r}, {0, r}} {
			drawText(dst, face, text, x+off[0], baseline+off[1], edgeColor)
		}
	}
}

// drawBox fills the button background: concentric rectangles around the
// text bounds, each layer inset and less opaque than the last.
func drawBox(dst *image.RGBA, x, y, textW, textH, layers int) {
	for i := 0; i < layers; i++ {
		inset := i * boxInset
		rect := image.Rect(
			x-boxMarginX+inset, y-boxMarginY+inset,
			x+textW+boxMarginX-inset, y+textH+boxMarginY-inset,
		)
		c := boxColor
		c.A = uint8(190 - 60*i)
		draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

// drawText rasterizes text at the given baseline position.
func drawText(dst *image.RGBA, face font.Face, text string, x, baseline int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// flattenOpaque forces full alpha on every pixel so the composite saves as
// an opaque image.
func flattenOpaque(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
