package render

import "unicode/utf8"

// Zone names a region of the target image where a text field is anchored.
type Zone int

const (
	ZoneDefault Zone = iota
	ZoneTopLeft
	ZoneTopRight
	ZoneCenterTop
	ZoneCenterBottom
	ZoneLeftCenter
	ZoneRightCenter
	ZoneBottomRight
)

func (z Zone) String() string {
	switch z {
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneCenterTop:
		return "center-top"
	case ZoneCenterBottom:
		return "center-bottom"
	case ZoneLeftCenter:
		return "left-center"
	case ZoneRightCenter:
		return "right-center"
	case ZoneBottomRight:
		return "bottom-right"
	}
	return "default"
}

// Measurer reports the rendered width and height of text at a font size.
type Measurer interface {
	MeasureText(text string, fontSize int) (width, height int, err error)
}

// approxCharWidth estimates glyph width as a fraction of the font size
// when no measurer is available.
const approxCharWidth = 0.6

// Layout computes on-image anchor positions for text fields.
type Layout struct {
	measurer Measurer
}

// NewLayout creates a Layout. measurer may be nil; positions then use the
// width approximation.
func NewLayout(measurer Measurer) *Layout {
	return &Layout{measurer: measurer}
}

// Position returns the top-left anchor for text placed in the given zone.
// The vertical offsets are a fixed constant table tuned for a 1024x1024
// canvas; horizontal placement adapts to the measured text width.
func (l *Layout) Position(text string, imageWidth, fontSize int, zone Zone) (x, y int) {
	w, _ := l.measure(text, fontSize)

	switch zone {
	case ZoneTopLeft:
		return 60, 60
	case ZoneTopRight:
		return imageWidth - w - 60, 60
	case ZoneCenterTop:
		return (imageWidth - w) / 2, 180
	case ZoneCenterBottom:
		return (imageWidth - w) / 2, 780
	case ZoneLeftCenter:
		return 60, 400
	case ZoneRightCenter:
		return imageWidth - w - 60, 550
	case ZoneBottomRight:
		return imageWidth - w - 40, 920
	}
	return (imageWidth - w) / 2, 400
}

// measure returns the text dimensions from the measurer, falling back to
// the approximation width = 0.6 * fontSize * characterCount and
// height = fontSize when measurement is unavailable or fails.
func (l *Layout) measure(text string, fontSize int) (int, int) {
	if l.measurer != nil {
		if w, h, err := l.measurer.MeasureText(text, fontSize); err == nil {
			return w, h
		}
	}
	return int(approxCharWidth * float64(fontSize) * float64(utf8.RuneCountInString(text))), fontSize
}
