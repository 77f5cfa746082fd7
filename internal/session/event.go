package session

import "fmt"

// Event type tags as they appear in Arcade exports.
const (
	EventTypeClick     = "click"
	EventTypeTyping    = "typing"
	EventTypeScrolling = "scrolling"
	EventTypeDragging  = "dragging"
)

// StepLookup resolves a click ID to its step, or nil when no step matches.
// A failed lookup is not an error; it only means no extra context is
// available for the click.
type StepLookup func(clickID string) *Step

// InterpretEvent maps a single captured event to a human-readable phrase.
// Pure function of its inputs.
//
// Timed events report endTimeMs-startTimeMs verbatim; a negative duration
// from malformed source data passes through unclamped.
func InterpretEvent(ev Event, lookup StepLookup) string {
	switch ev.Type {
	case EventTypeClick:
		if step := lookup(ev.ClickID); step != nil && step.ClickContext != nil {
			cc := step.ClickContext
			switch {
			case cc.Text != "" && cc.ElementType != "":
				return fmt.Sprintf("Clicked on %s: '%s'", cc.ElementType, cc.Text)
			case cc.Text != "":
				return fmt.Sprintf("Clicked on '%s'", cc.Text)
			case cc.ElementType != "":
				return fmt.Sprintf("Clicked on %s", cc.ElementType)
			}
		}
		return "Performed a click action"

	case EventTypeTyping:
		return fmt.Sprintf("Typed text (duration: %dms)", ev.EndTimeMs-ev.StartTimeMs)

	case EventTypeScrolling:
		return fmt.Sprintf("Scrolled page (duration: %dms)", ev.EndTimeMs-ev.StartTimeMs)

	case EventTypeDragging:
		return fmt.Sprintf("Dragged element (duration: %dms)", ev.EndTimeMs-ev.StartTimeMs)
	}

	return fmt.Sprintf("Performed %s action", ev.Type)
}
