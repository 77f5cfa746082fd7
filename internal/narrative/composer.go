// Package narrative builds the human-friendly summary of a recorded
// session, delegating to a Summarizer when one is available and falling
// back to a deterministic sentence builder when it is not.
package narrative

import (
	"context"
	"strings"

	"github.com/fpang/arcade-insights/internal/prompts"
	"github.com/fpang/arcade-insights/internal/session"
	"github.com/rs/zerolog/log"
)

// maxPromptInteractions caps how many interactions the Summarizer sees.
// Hard contract: the model must never receive more.
const maxPromptInteractions = 10

// keyActionKeywords mark interactions worth calling out in the fallback
// summary.
var keyActionKeywords = []string{
	"search", "add to cart", "checkout", "purchase", "buy",
	"login", "sign up", "register", "submit",
}

// Composer builds session summaries.
type Composer struct {
	summarizer Summarizer
	prompts    *prompts.Set
}

// NewComposer creates a Composer. summarizer may be nil, in which case
// every summary comes from the deterministic fallback.
func NewComposer(summarizer Summarizer, set *prompts.Set) *Composer {
	if set == nil {
		set = prompts.Defaults()
	}
	return &Composer{summarizer: summarizer, prompts: set}
}

// Compose returns a summary for the session. The Summarizer path renders
// the summary prompt from flow metadata and at most the first ten
// interactions; any Summarizer failure recovers locally via the
// deterministic fallback.
func (c *Composer) Compose(ctx context.Context, s *session.Session, interactions []string) string {
	if c.summarizer == nil {
		return c.fallback(s, interactions)
	}

	prompt := c.prompts.RenderSummary(c.summaryData(s, interactions))
	summary, err := c.summarizer.Summarize(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("Summarizer failed, using fallback summary")
		return c.fallback(s, interactions)
	}
	return summary
}

// summaryData assembles the fixed-shape request for the summary prompt.
func (c *Composer) summaryData(s *session.Session, interactions []string) prompts.SummaryData {
	website := "Unknown website"
	if domains := session.ExtractPageDomains(s.Steps); len(domains) > 0 {
		website = domains[0]
	}

	searchTerms := "None"
	if terms := session.ExtractSearchTerms(s.Steps); len(terms) > 0 {
		searchTerms = strings.Join(terms, ", ")
	}

	capped := interactions
	if len(capped) > maxPromptInteractions {
		capped = capped[:maxPromptInteractions]
	}
	var b strings.Builder
	for _, interaction := range capped {
		b.WriteString("- ")
		b.WriteString(interaction)
		b.WriteString("\n")
	}

	return prompts.SummaryData{
		FlowName:     s.Name,
		Website:      website,
		SearchTerms:  searchTerms,
		Interactions: strings.TrimRight(b.String(), "\n"),
	}
}

// fallback builds the summary deterministically from the session contents.
// Total: always returns at least the goal sentence.
func (c *Composer) fallback(s *session.Session, interactions []string) string {
	var parts []string

	if s.Name != "" && s.Name != session.DefaultFlowName {
		parts = append(parts, "User completed a flow titled '"+s.Name+"'.")
	}

	domains := session.ExtractPageDomains(s.Steps)
	if len(domains) > 0 {
		parts = append(parts, "The session took place on "+domains[0]+".")
	}

	if terms := session.ExtractSearchTerms(s.Steps); len(terms) > 0 {
		parts = append(parts, "User searched for: "+strings.Join(terms, ", ")+".")
	}

	if actions := identifyKeyActions(interactions); len(actions) > 0 {
		parts = append(parts, "Key actions included: "+strings.Join(actions, ", ")+".")
	}

	parts = append(parts, "The user's goal appears to be: "+inferGoal(s.Name))

	return strings.Join(parts, " ")
}

// identifyKeyActions filters interactions for key action keywords,
// lowercased. When nothing matches it falls back to the first and last
// interaction (just the first when only one exists).
func identifyKeyActions(interactions []string) []string {
	var actions []string
	for _, interaction := range interactions {
		lower := strings.ToLower(interaction)
		for _, kw := range keyActionKeywords {
			if strings.Contains(lower, kw) {
				actions = append(actions, lower)
				break
			}
		}
	}

	if len(actions) == 0 && len(interactions) > 0 {
		actions = append(actions, strings.ToLower(interactions[0]))
		if len(interactions) > 1 {
			actions = append(actions, strings.ToLower(interactions[len(interactions)-1]))
		}
	}

	return actions
}

// inferGoal maps the flow name to a likely user goal. First substring
// match wins, in priority order.
func inferGoal(flowName string) string {
	lower := strings.ToLower(flowName)

	switch {
	case strings.Contains(lower, "cart"):
		return "adding items to their shopping cart"
	case strings.Contains(lower, "checkout"), strings.Contains(lower, "purchase"):
		return "completing a purchase"
	case strings.Contains(lower, "search"):
		return "finding specific products or information"
	case strings.Contains(lower, "register"), strings.Contains(lower, "sign up"):
		return "creating a new account"
	case strings.Contains(lower, "login"), strings.Contains(lower, "sign in"):
		return "accessing their account"
	}

	if flowName != "" && flowName != session.DefaultFlowName {
		return "completing the task: " + flowName
	}
	return "navigating and interacting with the website"
}
