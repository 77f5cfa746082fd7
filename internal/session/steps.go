package session

import (
	"fmt"
	"net/url"
	"strings"
)

// FindStepByClickID returns the first step whose ID matches clickID, in
// step order, or nil when no step matches.
func FindStepByClickID(steps []Step, clickID string) *Step {
	for i := range steps {
		if steps[i].ID == clickID {
			return &steps[i]
		}
	}
	return nil
}

// DeriveStepInteractions scans the steps for supplementary phrases:
// chapter titles and annotated image-step clicks. Steps of other types
// contribute nothing.
func DeriveStepInteractions(steps []Step) []string {
	var interactions []string

	for i := range steps {
		step := &steps[i]
		switch step.Type {
		case StepTypeChapter:
			if step.Title != "" {
				interactions = append(interactions, fmt.Sprintf("Started chapter: '%s'", step.Title))
			}

		case StepTypeImage:
			if step.ClickContext == nil {
				continue
			}
			var parts []string
			if domain := stepDomain(step); domain != "" {
				parts = append(parts, "on "+domain)
			}
			cc := step.ClickContext
			switch {
			case cc.Text != "" && cc.ElementType != "":
				parts = append(parts, fmt.Sprintf("clicked %s '%s'", cc.ElementType, cc.Text))
			case cc.Text != "":
				parts = append(parts, fmt.Sprintf("clicked '%s'", cc.Text))
			case cc.ElementType != "":
				parts = append(parts, "clicked "+cc.ElementType)
			}
			if len(parts) > 0 {
				interactions = append(interactions, "Interacted "+strings.Join(parts, " - "))
			}
		}
	}

	return interactions
}

// ExtractPageDomains returns the unique hostnames found across step page
// contexts, in first-seen step order. Unparseable URLs are skipped.
func ExtractPageDomains(steps []Step) []string {
	seen := make(map[string]bool)
	var domains []string

	for i := range steps {
		domain := stepDomain(&steps[i])
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}

	return domains
}

// ExtractSearchTerms returns the values of the searchTerm query parameter
// found in each step's page URL, duplicates preserved, in step order.
func ExtractSearchTerms(steps []Step) []string {
	var terms []string

	for i := range steps {
		step := &steps[i]
		if step.PageContext == nil || step.PageContext.URL == "" {
			continue
		}
		parsed, err := url.Parse(step.PageContext.URL)
		if err != nil {
			continue
		}
		terms = append(terms, parsed.Query()["searchTerm"]...)
	}

	return terms
}

// stepDomain parses the step's page URL and returns its hostname, or ""
// when the step has no page context or the URL cannot be parsed.
func stepDomain(step *Step) string {
	if step.PageContext == nil || step.PageContext.URL == "" {
		return ""
	}
	parsed, err := url.Parse(step.PageContext.URL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
