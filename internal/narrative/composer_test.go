package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fpang/arcade-insights/internal/session"
)

// fakeSummarizer records the prompt it receives and returns a canned
// response or error.
type fakeSummarizer struct {
	response string
	err      error
	prompt   string
}

func (f *fakeSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestComposeDelegatesToSummarizer(t *testing.T) {
	fake := &fakeSummarizer{response: "User added a scooter to their cart."}
	c := NewComposer(fake, nil)
	s := &session.Session{Name: "Add a Scooter to Your Cart"}

	got := c.Compose(context.Background(), s, []string{"Clicked on button: 'Add to cart'"})
	if got != "User added a scooter to their cart." {
		t.Errorf("Compose() = %q", got)
	}
	if !strings.Contains(fake.prompt, "Add a Scooter to Your Cart") {
		t.Errorf("prompt missing flow name: %q", fake.prompt)
	}
	if !strings.Contains(fake.prompt, "- Clicked on button: 'Add to cart'") {
		t.Errorf("prompt missing interaction line: %q", fake.prompt)
	}
	if !strings.Contains(fake.prompt, "Unknown website") {
		t.Errorf("prompt missing website placeholder: %q", fake.prompt)
	}
	if !strings.Contains(fake.prompt, "None") {
		t.Errorf("prompt missing search terms placeholder: %q", fake.prompt)
	}
}

func TestComposeTruncatesToTenInteractions(t *testing.T) {
	fake := &fakeSummarizer{response: "ok"}
	c := NewComposer(fake, nil)

	var interactions []string
	for i := 1; i <= 15; i++ {
		interactions = append(interactions, fmt.Sprintf("Interaction %d", i))
	}

	c.Compose(context.Background(), &session.Session{Name: "Flow"}, interactions)

	if !strings.Contains(fake.prompt, "Interaction 10") {
		t.Errorf("prompt missing tenth interaction: %q", fake.prompt)
	}
	if strings.Contains(fake.prompt, "Interaction 11") {
		t.Errorf("prompt contains interaction past the cap: %q", fake.prompt)
	}
}

func TestComposeFallsBackOnSummarizerError(t *testing.T) {
	fake := &fakeSummarizer{err: errors.New("quota exceeded")}
	c := NewComposer(fake, nil)
	s := &session.Session{Name: "Checkout flow"}

	got := c.Compose(context.Background(), s, nil)
	want := "User completed a flow titled 'Checkout flow'. The user's goal appears to be: completing a purchase"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestFallbackTotalOnEmptySession(t *testing.T) {
	c := NewComposer(nil, nil)
	s := &session.Session{Name: session.DefaultFlowName}

	got := c.Compose(context.Background(), s, nil)
	want := "The user's goal appears to be: navigating and interacting with the website"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestFallbackFullSession(t *testing.T) {
	c := NewComposer(nil, nil)
	s := &session.Session{
		Name: "Add a Scooter to Your Cart on Target.com",
		Steps: []session.Step{
			{Type: session.StepTypeImage,
				ClickContext: &session.ClickContext{Text: "search", ElementType: "other"},
				PageContext:  &session.PageContext{URL: "https://www.target.com/s?searchTerm=razor+scooter"}},
		},
	}
	interactions := []string{
		"Clicked on other: 'search'",
		"Scrolled page (duration: 5851ms)",
		"Clicked on button: 'Add to cart'",
	}

	got := c.Compose(context.Background(), s, interactions)

	for _, fragment := range []string{
		"User completed a flow titled 'Add a Scooter to Your Cart on Target.com'.",
		"The session took place on www.target.com.",
		"User searched for: razor scooter.",
		"Key actions included: clicked on other: 'search', clicked on button: 'add to cart'.",
		"The user's goal appears to be: adding items to their shopping cart",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("fallback summary missing %q\ngot: %q", fragment, got)
		}
	}
}

func TestIdentifyKeyActions(t *testing.T) {
	tests := []struct {
		name         string
		interactions []string
		want         []string
	}{
		{
			name:         "keyword matches lowercased",
			interactions: []string{"Clicked on button: 'Add to Cart'", "Scrolled page (duration: 100ms)"},
			want:         []string{"clicked on button: 'add to cart'"},
		},
		{
			name:         "no keywords falls back to first and last",
			interactions: []string{"Scrolled page (duration: 1ms)", "Dragged element (duration: 2ms)", "Typed text (duration: 3ms)"},
			want:         []string{"scrolled page (duration: 1ms)", "typed text (duration: 3ms)"},
		},
		{
			name:         "single interaction falls back to just that one",
			interactions: []string{"Scrolled page (duration: 1ms)"},
			want:         []string{"scrolled page (duration: 1ms)"},
		},
		{
			name:         "empty interactions yields nothing",
			interactions: nil,
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identifyKeyActions(tt.interactions)
			if len(got) != len(tt.want) {
				t.Fatalf("identifyKeyActions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("identifyKeyActions()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInferGoal(t *testing.T) {
	tests := []struct {
		flowName string
		want     string
	}{
		{"Add to Cart flow", "adding items to their shopping cart"},
		{"Checkout on Target", "completing a purchase"},
		{"Purchase a gift card", "completing a purchase"},
		{"Search for scooters", "finding specific products or information"},
		{"Register new user", "creating a new account"},
		{"Sign up for deals", "creating a new account"},
		{"Login to account", "accessing their account"},
		{"Sign in page", "accessing their account"},
		{"Browse homepage", "completing the task: Browse homepage"},
		{session.DefaultFlowName, "navigating and interacting with the website"},
		{"", "navigating and interacting with the website"},
		// "cart" outranks "checkout" when both appear.
		{"Cart and checkout", "adding items to their shopping cart"},
	}

	for _, tt := range tests {
		t.Run(tt.flowName, func(t *testing.T) {
			if got := inferGoal(tt.flowName); got != tt.want {
				t.Errorf("inferGoal(%q) = %q, want %q", tt.flowName, got, tt.want)
			}
		})
	}
}
