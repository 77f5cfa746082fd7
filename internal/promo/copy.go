// Package promo derives promotional marketing copy from a session's
// interactions and search terms using keyword heuristics and a small amount
// of injected randomness.
package promo

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Copy holds the text fields overlaid on the promotional image.
type Copy struct {
	Discount    string
	ProductName string
	Urgency     string
	CTA         string
	Tagline1    string
	Tagline2    string
	Website     string
}

// maxProductNameLen bounds the product name shown on the image.
const maxProductNameLen = 15

// Categorical options for the random picks.
var (
	discountOptions = []int{15, 20, 25}
	urgencyOptions  = []string{"Today Only", "Limited Time", "Flash Sale"}
	ctaOptions      = []string{"Shop Now", "Get Yours", "Buy Today"}
	tagline2Options = []string{"Free Shipping", "Best Price", "Top Rated"}
)

var titleCaser = cases.Title(language.English)

// Generator produces promotional copy. The random source is injected so
// tests can seed it and assert exact categorical picks.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the full set of promotional text fields. The four random
// picks are drawn in a fixed order (discount, urgency, cta, tagline2) so a
// seeded Generator is fully reproducible.
func (g *Generator) Generate(interactions, searchTerms []string, website string) Copy {
	product := PrimaryProduct(interactions, searchTerms)
	details := ProductDetails(interactions)

	discount := discountOptions[g.rng.Intn(len(discountOptions))]
	urgency := urgencyOptions[g.rng.Intn(len(urgencyOptions))]
	cta := ctaOptions[g.rng.Intn(len(ctaOptions))]
	tagline2 := tagline2Options[g.rng.Intn(len(tagline2Options))]

	return Copy{
		Discount:    fmt.Sprintf("%d%% OFF", discount),
		ProductName: displayName(product),
		Urgency:     urgency,
		CTA:         cta,
		Tagline1:    tagline(product, details),
		Tagline2:    tagline2,
		Website:     brandName(website),
	}
}

// PrimaryProduct identifies the main product from interactions, then search
// terms, then a fixed default.
func PrimaryProduct(interactions, searchTerms []string) string {
	for _, interaction := range interactions {
		lower := strings.ToLower(interaction)
		if strings.Contains(lower, "scooter") {
			if strings.Contains(lower, "razor") {
				return "Razor A5 Lux 2 Wheel Kick Scooter"
			}
			return "Kick Scooter"
		}
	}

	if len(searchTerms) > 0 {
		return titleCaser.String(searchTerms[0])
	}
	return "Featured Product"
}

// ProductDetails scans interactions for color mentions. Within one
// interaction the check order is blue, then pink, then red, stopping at the
// first hit; the scan continues across the remaining interactions and
// accumulates distinct colors.
func ProductDetails(interactions []string) string {
	var colors []string
	seen := make(map[string]bool)

	for _, interaction := range interactions {
		lower := strings.ToLower(interaction)
		for _, color := range []string{"Blue", "Pink", "Red"} {
			if strings.Contains(lower, strings.ToLower(color)) {
				if !seen[color] {
					seen[color] = true
					colors = append(colors, color)
				}
				break
			}
		}
	}

	if len(colors) > 0 {
		return "Available in " + strings.Join(colors, ", ")
	}
	return "Multiple colors available"
}

// Category infers a product category for prompt targeting.
func Category(product string, searchTerms []string) string {
	lower := strings.ToLower(product)

	switch {
	case strings.Contains(lower, "scooter"):
		return "outdoor sports and recreation"
	case strings.Contains(lower, "bike"), strings.Contains(lower, "bicycle"):
		return "cycling and fitness"
	case strings.Contains(lower, "toy"):
		return "toys and games"
	}

	if strings.Contains(strings.ToLower(strings.Join(searchTerms, " ")), "electronics") {
		return "consumer electronics"
	}
	return "lifestyle products"
}

// displayName shortens the product name for on-image display. The result
// never exceeds maxProductNameLen characters.
func displayName(product string) string {
	name := strings.Replace(product, "Razor A5 Lux 2 Wheel Kick", "Razor A5", 1)
	if len(name) > maxProductNameLen {
		name = "Razor Scooter"
	}
	return name
}

// tagline picks the first tagline from a decision table keyed by product
// and detected colors.
func tagline(product, details string) string {
	productLower := strings.ToLower(product)
	detailsLower := strings.ToLower(details)

	if strings.Contains(productLower, "scooter") {
		hasBlue := strings.Contains(detailsLower, "blue")
		hasPink := strings.Contains(detailsLower, "pink")
		switch {
		case hasBlue && hasPink:
			return "Blue or Pink"
		case hasBlue:
			return "Cool Blue"
		case hasPink:
			return "Pretty Pink"
		default:
			return "Ride in Style"
		}
	}
	if strings.Contains(productLower, "bike") {
		return "Cycle Smart"
	}
	return "Great Deal"
}

// brandName upper-cases the website domain, rewriting the known retailer's
// canonical host to its short brand name.
func brandName(website string) string {
	if strings.ToLower(website) == "www.target.com" {
		return "TARGET"
	}
	return strings.ToUpper(website)
}
