// Package prompts holds the prompt template configuration for the pipeline.
//
// Templates live in an external prompts file with [SECTION] headers, "#"
// comment lines, and blank-line separation. A missing or malformed file, or
// a section that fails to parse as a template, falls back to the embedded
// default for that section with a logged warning. The resulting Set is an
// explicit configuration object passed into the composer and the pipeline,
// never hidden package state.
package prompts

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/fpang/arcade-insights/internal/assets"
	"github.com/rs/zerolog/log"
)

// Section names recognized in an external prompts file.
const (
	SectionSummary     = "SUMMARY_PROMPT"
	SectionImage       = "IMAGE_GENERATION_PROMPT"
	SectionTextOverlay = "TEXT_OVERLAY_PROMPT"
)

// SummaryData is injected into the summary template.
type SummaryData struct {
	FlowName     string
	Website      string
	SearchTerms  string
	Interactions string
}

// ImageData is injected into the image-generation template.
type ImageData struct {
	Product  string
	Details  string
	Website  string
	Category string
}

// Set is a parsed collection of prompt templates.
type Set struct {
	summary *template.Template
	image   *template.Template
	overlay *template.Template
}

// Pre-parsed defaults. template.Must panics on malformed templates, catching
// errors at program startup rather than at call time.
var (
	defaultSummaryTmpl = template.Must(template.New(SectionSummary).Parse(assets.DefaultSummaryPrompt))
	defaultImageTmpl   = template.Must(template.New(SectionImage).Parse(assets.DefaultImagePrompt))
	defaultOverlayTmpl = template.Must(template.New(SectionTextOverlay).Parse(assets.DefaultOverlayPrompt))
)

// Defaults returns a Set backed entirely by the embedded templates.
func Defaults() *Set {
	return &Set{
		summary: defaultSummaryTmpl,
		image:   defaultImageTmpl,
		overlay: defaultOverlayTmpl,
	}
}

// Load reads an external prompts file and returns a Set where each
// recognized section overrides its embedded default. When the file cannot
// be read at all, the full default Set is returned alongside the error so
// callers can log and continue.
func Load(path string) (*Set, error) {
	set := Defaults()

	content, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("failed to read prompts file: %w", err)
	}

	for name, body := range ParseSections(string(content)) {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			log.Warn().Err(err).Str("section", name).Str("file", path).
				Msg("Prompt section failed to parse, keeping embedded default")
			continue
		}
		switch name {
		case SectionSummary:
			set.summary = tmpl
		case SectionImage:
			set.image = tmpl
		case SectionTextOverlay:
			set.overlay = tmpl
		default:
			log.Debug().Str("section", name).Msg("Ignoring unknown prompt section")
		}
	}

	return set, nil
}

// ParseSections splits a prompts file into named sections. A section starts
// at a "[NAME]" line and runs until the next header. Comment lines starting
// with "#" and blank lines are dropped.
func ParseSections(content string) map[string]string {
	sections := make(map[string]string)

	var current string
	var body []string
	flush := func() {
		if current != "" && len(body) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			current = line[1 : len(line)-1]
			body = body[:0]
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// RenderSummary executes the summary template with the given data.
func (s *Set) RenderSummary(data SummaryData) string {
	return render(s.summary, data)
}

// RenderImage executes the image-generation template with the given data.
func (s *Set) RenderImage(data ImageData) string {
	return render(s.image, data)
}

// RenderOverlay executes the overlay-guidance template.
func (s *Set) RenderOverlay() string {
	return render(s.overlay, nil)
}

// render executes a template, returning whatever was rendered even if
// execution stops early.
func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Warn().Err(err).Str("template", tmpl.Name()).Msg("Prompt template execution failed")
	}
	return buf.String()
}
