package session

// ExtractInteractions produces the full ordered interaction list for a
// session: one phrase per captured event in event order, followed by the
// step-derived phrases in step order. Downstream consumers truncate to the
// first N interactions when building prompts, so this ordering is part of
// the contract.
//
// The function is total: malformed or missing optional fields degrade to
// omitted phrase fragments, never to an error.
func ExtractInteractions(s *Session) []string {
	var interactions []string

	lookup := func(clickID string) *Step {
		return FindStepByClickID(s.Steps, clickID)
	}

	for _, ev := range s.CapturedEvents {
		if phrase := InterpretEvent(ev, lookup); phrase != "" {
			interactions = append(interactions, phrase)
		}
	}

	return append(interactions, DeriveStepInteractions(s.Steps)...)
}
