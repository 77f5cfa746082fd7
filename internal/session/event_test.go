package session

import "testing"

func TestInterpretEventClick(t *testing.T) {
	steps := []Step{
		{ID: "s1", Type: StepTypeImage, ClickContext: &ClickContext{Text: "search", ElementType: "other"}},
		{ID: "s2", Type: StepTypeImage, ClickContext: &ClickContext{Text: "Add to cart"}},
		{ID: "s3", Type: StepTypeImage, ClickContext: &ClickContext{ElementType: "button"}},
		{ID: "s4", Type: StepTypeImage, ClickContext: &ClickContext{}},
		{ID: "s5", Type: StepTypeImage},
	}
	lookup := func(id string) *Step { return FindStepByClickID(steps, id) }

	tests := []struct {
		name    string
		clickID string
		want    string
	}{
		{"text and element type", "s1", "Clicked on other: 'search'"},
		{"text only", "s2", "Clicked on 'Add to cart'"},
		{"element type only", "s3", "Clicked on button"},
		{"empty click context", "s4", "Performed a click action"},
		{"no click context", "s5", "Performed a click action"},
		{"unresolved click id", "missing", "Performed a click action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Type: EventTypeClick, ClickID: tt.clickID}
			if got := InterpretEvent(ev, lookup); got != tt.want {
				t.Errorf("InterpretEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInterpretEventDurations(t *testing.T) {
	lookup := func(string) *Step { return nil }

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "typing",
			event: Event{Type: EventTypeTyping, StartTimeMs: 1000, EndTimeMs: 1985},
			want:  "Typed text (duration: 985ms)",
		},
		{
			name:  "scrolling",
			event: Event{Type: EventTypeScrolling, StartTimeMs: 500, EndTimeMs: 6351},
			want:  "Scrolled page (duration: 5851ms)",
		},
		{
			name:  "dragging",
			event: Event{Type: EventTypeDragging, StartTimeMs: 100, EndTimeMs: 214},
			want:  "Dragged element (duration: 114ms)",
		},
		{
			// Malformed source data can have end before start; the raw
			// negative duration passes through unclamped.
			name:  "negative duration",
			event: Event{Type: EventTypeTyping, StartTimeMs: 2000, EndTimeMs: 1500},
			want:  "Typed text (duration: -500ms)",
		},
		{
			name:  "zero duration",
			event: Event{Type: EventTypeScrolling, StartTimeMs: 42, EndTimeMs: 42},
			want:  "Scrolled page (duration: 0ms)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterpretEvent(tt.event, lookup); got != tt.want {
				t.Errorf("InterpretEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInterpretEventOtherType(t *testing.T) {
	lookup := func(string) *Step { return nil }

	ev := Event{Type: "hover"}
	if got := InterpretEvent(ev, lookup); got != "Performed hover action" {
		t.Errorf("InterpretEvent() = %q, want %q", got, "Performed hover action")
	}
}
