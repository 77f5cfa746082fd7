package render

// FieldText carries the promotional copy to overlay, one string per field.
type FieldText struct {
	Discount    string
	ProductName string
	Urgency     string
	CTA         string
	Tagline1    string
	Tagline2    string
	Website     string
}

// Field binds one text string to its style variant, placement zone, and
// base font size.
type Field struct {
	Name     string
	Text     string
	Variant  Variant
	Zone     Zone
	BaseSize int
}

// Fields returns the fixed field assignment table in draw order. Each
// promotional field is bound to exactly one variant, zone, and base size;
// the variant's recipe additionally scales the size.
func Fields(t FieldText) []Field {
	return []Field{
		{Name: "discount", Text: t.Discount, Variant: MegaBadge, Zone: ZoneTopLeft, BaseSize: 54},
		{Name: "product_name", Text: t.ProductName, Variant: PremiumBold, Zone: ZoneCenterTop, BaseSize: 64},
		{Name: "urgency", Text: t.Urgency, Variant: DynamicBubble, Zone: ZoneTopRight, BaseSize: 40},
		{Name: "cta", Text: t.CTA, Variant: PowerButton, Zone: ZoneCenterBottom, BaseSize: 48},
		{Name: "tagline1", Text: t.Tagline1, Variant: ElegantScript, Zone: ZoneRightCenter, BaseSize: 36},
		{Name: "tagline2", Text: t.Tagline2, Variant: ModernAccent, Zone: ZoneLeftCenter, BaseSize: 36},
		{Name: "website", Text: t.Website, Variant: SignatureBrand, Zone: ZoneBottomRight, BaseSize: 32},
	}
}
