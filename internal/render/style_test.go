package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFieldsAssignmentTable(t *testing.T) {
	texts := FieldText{
		Discount:    "20% OFF",
		ProductName: "Razor Scooter",
		Urgency:     "Today Only",
		CTA:         "Shop Now",
		Tagline1:    "Ride in Style",
		Tagline2:    "Free Shipping",
		Website:     "TARGET",
	}

	fields := Fields(texts)
	if len(fields) != 7 {
		t.Fatalf("Fields() returned %d fields, want 7", len(fields))
	}

	want := []struct {
		name    string
		text    string
		variant Variant
		zone    Zone
		size    int
	}{
		{"discount", "20% OFF", MegaBadge, ZoneTopLeft, 54},
		{"product_name", "Razor Scooter", PremiumBold, ZoneCenterTop, 64},
		{"urgency", "Today Only", DynamicBubble, ZoneTopRight, 40},
		{"cta", "Shop Now", PowerButton, ZoneCenterBottom, 48},
		{"tagline1", "Ride in Style", ElegantScript, ZoneRightCenter, 36},
		{"tagline2", "Free Shipping", ModernAccent, ZoneLeftCenter, 36},
		{"website", "TARGET", SignatureBrand, ZoneBottomRight, 32},
	}

	for i, w := range want {
		f := fields[i]
		if f.Name != w.name || f.Text != w.text || f.Variant != w.variant || f.Zone != w.zone || f.BaseSize != w.size {
			t.Errorf("Fields()[%d] = %+v, want %+v", i, f, w)
		}
	}
}

func TestRecipeScales(t *testing.T) {
	tests := []struct {
		variant Variant
		scale   float64
	}{
		{MegaBadge, 1.2},
		{PowerButton, 1.2},
		{PremiumBold, 1.1},
		{DynamicBubble, 1.1},
		{ElegantScript, 1.0},
		{ModernAccent, 1.0},
		{SignatureBrand, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			if got := recipeFor(tt.variant).sizeScale; got != tt.scale {
				t.Errorf("recipeFor(%v).sizeScale = %v, want %v", tt.variant, got, tt.scale)
			}
		})
	}
}

func TestOverlayDrawsAndFlattens(t *testing.T) {
	fonts, err := NewFontSource()
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	r := NewRenderer(fonts)

	base := image.NewRGBA(image.Rect(0, 0, 1024, 1024))
	for i := 0; i < len(base.Pix); i += 4 {
		base.Pix[i] = 40
		base.Pix[i+1] = 80
		base.Pix[i+2] = 120
		base.Pix[i+3] = 255
	}

	out := r.Overlay(base, FieldText{
		Discount:    "20% OFF",
		ProductName: "Razor Scooter",
		Urgency:     "Today Only",
		CTA:         "Shop Now",
		Tagline1:    "Ride in Style",
		Tagline2:    "Free Shipping",
		Website:     "TARGET",
	})

	if out.Bounds() != base.Bounds() {
		t.Fatalf("Overlay() bounds = %v, want %v", out.Bounds(), base.Bounds())
	}

	// Every pixel is opaque after flattening.
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0xff {
			t.Fatalf("pixel %d has alpha %d, want 255", i/4, out.Pix[i])
		}
	}

	// Some pixels changed from the base color.
	changed := 0
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 40 || out.Pix[i+1] != 80 || out.Pix[i+2] != 120 {
			changed++
		}
	}
	if changed == 0 {
		t.Error("Overlay() left the base image untouched")
	}
}

func TestOverlaySkipsEmptyFields(t *testing.T) {
	fonts, err := NewFontSource()
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	r := NewRenderer(fonts)

	base := image.NewUniform(color.RGBA{10, 10, 10, 255})
	rgba := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for i := 0; i < len(rgba.Pix); i += 4 {
		c := base.C.(color.RGBA)
		rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2], rgba.Pix[i+3] = c.R, c.G, c.B, c.A
	}

	out := r.Overlay(rgba, FieldText{})
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 10 || out.Pix[i+1] != 10 || out.Pix[i+2] != 10 {
			t.Fatal("Overlay() with empty fields modified the image")
		}
	}
}

func TestOverlayWithoutFontsDoesNotFail(t *testing.T) {
	// Per-field render failures are logged and skipped; the base image
	// still comes back flattened.
	r := NewRenderer(nil)

	base := image.NewRGBA(image.Rect(0, 0, 64, 64))
	out := r.Overlay(base, FieldText{Discount: "20% OFF", Website: "TARGET"})

	if out == nil {
		t.Fatal("Overlay() returned nil")
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0xff {
			t.Fatalf("pixel alpha %d, want 255", out.Pix[i])
		}
	}
}

func TestDrawBoxAlphaDecreasesInward(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 120))
	drawBox(dst, 50, 40, 80, 30, 3)

	// A pixel in the outermost ring is covered by the first layer only.
	outer := dst.RGBAAt(50-boxMarginX+1, 40)
	if outer.A != 190 {
		t.Errorf("outermost layer alpha = %d, want 190", outer.A)
	}

	// The center accumulates all three layers on top of the first.
	center := dst.RGBAAt(90, 55)
	if center.A <= outer.A {
		t.Errorf("center alpha = %d, want more opaque than outer ring %d", center.A, outer.A)
	}
}

func TestVariantString(t *testing.T) {
	variants := []Variant{MegaBadge, PremiumBold, DynamicBubble, PowerButton, ElegantScript, ModernAccent, SignatureBrand}
	seen := make(map[string]bool)
	for _, v := range variants {
		s := v.String()
		if s == "unknown" || seen[s] {
			t.Errorf("Variant(%d).String() = %q", v, s)
		}
		seen[s] = true
	}
}
