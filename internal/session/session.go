// Package session defines the Arcade recording data model and turns raw
// captured events and step annotations into human-readable interactions.
//
// A recording is a single JSON document containing low-level captured events
// (clicks, typing, scrolling, dragging) and structural steps (chapter markers
// and annotated screenshots). Events carry almost no context on their own;
// click events reference a step by ID, and the step's clickContext and
// pageContext supply the text and URL needed for a readable phrase.
package session

import (
	"encoding/json"
	"fmt"
)

// DefaultFlowName is the placeholder used when a recording has no name.
const DefaultFlowName = "Untitled Flow"

// Session is one recorded user flow. Immutable once parsed.
type Session struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CapturedEvents []Event `json:"capturedEvents"`
	Steps          []Step  `json:"steps"`
}

// Event is a single captured low-level user action. The variant is carried
// in Type; only click events have a ClickID, and only the timed variants
// (typing, scrolling, dragging) have start/end timestamps.
type Event struct {
	Type        string `json:"type"`
	ClickID     string `json:"clickId"`
	StartTimeMs int64  `json:"startTimeMs"`
	EndTimeMs   int64  `json:"endTimeMs"`
}

// Step is a structural record enriching events with context: a CHAPTER
// marker, an IMAGE step (annotated screenshot), or another type this
// pipeline does not interpret.
type Step struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Title        string        `json:"title"`
	ClickContext *ClickContext `json:"clickContext"`
	PageContext  *PageContext  `json:"pageContext"`
}

// ClickContext describes the element a click landed on.
type ClickContext struct {
	Text        string `json:"text"`
	ElementType string `json:"elementType"`
}

// PageContext describes the page a step was captured on.
type PageContext struct {
	URL string `json:"url"`
}

// Step type tags as they appear in Arcade exports.
const (
	StepTypeChapter = "CHAPTER"
	StepTypeImage   = "IMAGE"
)

// Parse decodes a raw Arcade JSON document into a Session. Unknown fields
// are ignored. An empty or missing name is replaced with DefaultFlowName.
func Parse(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session JSON: %w", err)
	}
	if s.Name == "" {
		s.Name = DefaultFlowName
	}
	return &s, nil
}
