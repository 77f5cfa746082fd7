// Package assets provides the embedded default prompt templates.
//
// Prompt templates are stored as text files under prompts/ and embedded at
// compile time. They are the fallback when no external prompts file is
// configured or when one fails to load; see the prompts package for the
// external-file override mechanism.
package assets

import (
	_ "embed"
)

// DefaultSummaryPrompt instructs the model to summarize a recorded session
// in 2-3 conversational sentences. Placeholders: FlowName, Website,
// SearchTerms, Interactions.
//
//go:embed prompts/summary.txt
var DefaultSummaryPrompt string

// DefaultImagePrompt describes the clean product showcase image requested
// from the image backend. Placeholders: Product, Details, Website, Category.
//
//go:embed prompts/image-generation.txt
var DefaultImagePrompt string

// DefaultOverlayPrompt is appended to the image prompt so the generated
// composition leaves room for locally rendered promotional text.
//
//go:embed prompts/text-overlay.txt
var DefaultOverlayPrompt string
