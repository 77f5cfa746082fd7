package session

import (
	"reflect"
	"testing"
)

func TestExtractInteractionsOrdering(t *testing.T) {
	// Event-derived phrases come first in event order, then step-derived
	// phrases in step order.
	s := &Session{
		Name: "Search flow",
		CapturedEvents: []Event{
			{Type: EventTypeClick, ClickID: "s2"},
			{Type: EventTypeTyping, StartTimeMs: 0, EndTimeMs: 900},
		},
		Steps: []Step{
			{ID: "s1", Type: StepTypeChapter, Title: "Getting Started"},
			{ID: "s2", Type: StepTypeImage, ClickContext: &ClickContext{Text: "search", ElementType: "other"}},
		},
	}

	want := []string{
		"Clicked on other: 'search'",
		"Typed text (duration: 900ms)",
		"Started chapter: 'Getting Started'",
		"Interacted clicked other 'search'",
	}
	if got := ExtractInteractions(s); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractInteractions() = %v, want %v", got, want)
	}
}

func TestExtractInteractionsEmptySession(t *testing.T) {
	if got := ExtractInteractions(&Session{Name: DefaultFlowName}); len(got) != 0 {
		t.Errorf("ExtractInteractions() = %v, want empty", got)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"name": "Add a Scooter to Your Cart on Target.com",
		"description": "",
		"unknownField": {"ignored": true},
		"capturedEvents": [
			{"type": "click", "clickId": "c1", "frameX": 10.5},
			{"type": "scrolling", "startTimeMs": 100, "endTimeMs": 400}
		],
		"steps": [
			{"type": "CHAPTER", "id": "ch1", "title": "Intro"},
			{"id": "c1", "type": "IMAGE",
			 "clickContext": {"text": "search", "elementType": "other"},
			 "pageContext": {"url": "https://www.target.com/"}}
		]
	}`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Name != "Add a Scooter to Your Cart on Target.com" {
		t.Errorf("Name = %q", s.Name)
	}
	if len(s.CapturedEvents) != 2 || len(s.Steps) != 2 {
		t.Errorf("got %d events, %d steps, want 2 and 2", len(s.CapturedEvents), len(s.Steps))
	}
	if s.Steps[1].ClickContext == nil || s.Steps[1].ClickContext.Text != "search" {
		t.Errorf("step click context not parsed: %+v", s.Steps[1].ClickContext)
	}
}

func TestParseDefaultsName(t *testing.T) {
	s, err := Parse([]byte(`{"capturedEvents": [], "steps": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Name != DefaultFlowName {
		t.Errorf("Name = %q, want %q", s.Name, DefaultFlowName)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("Parse() expected error for malformed JSON")
	}
}
