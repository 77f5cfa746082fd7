package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fpang/arcade-insights/internal/imagegen"
	"github.com/fpang/arcade-insights/internal/narrative"
	"github.com/fpang/arcade-insights/internal/promo"
	"github.com/fpang/arcade-insights/internal/prompts"
	"github.com/fpang/arcade-insights/internal/render"
	"github.com/fpang/arcade-insights/internal/session"
)

// DefaultOutputPath is where the promotional image is written when no
// output path is configured.
const DefaultOutputPath = "social_media_promotion.png"

// defaultWebsite is used when the session carries no page domains.
const defaultWebsite = "Target"

// Options configures a Pipeline. Zero-value fields get working defaults;
// a nil Summarizer or ImageBackend disables the corresponding capability.
type Options struct {
	Summarizer    narrative.Summarizer
	ImageBackend  imagegen.Backend
	Prompts       *prompts.Set
	Rand          *rand.Rand
	Fonts         *render.FontSource
	OutputPath    string
	GenerateImage bool
	ImageSize     string
	ImageQuality  string
}

// Result is the analysis output for one session recording.
type Result struct {
	UserInteractions []string `json:"user_interactions"`
	Summary          string   `json:"summary"`
	FlowName         string   `json:"flow_name,omitempty"`
	TotalEvents      int      `json:"total_events"`
	TotalSteps       int      `json:"total_steps"`
	SocialMediaImage string   `json:"social_media_image,omitempty"`
	Err              string   `json:"error,omitempty"`
}

// Pipeline runs the full session analysis: parse, extract interactions,
// compose a narrative summary, and optionally generate a promotional image.
type Pipeline struct {
	opts     Options
	composer *narrative.Composer
	promo    *promo.Generator
	renderer *render.Renderer
}

// New creates a Pipeline from the given options.
func New(opts Options) *Pipeline {
	if opts.Prompts == nil {
		opts.Prompts = prompts.Defaults()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.ImageSize == "" {
		opts.ImageSize = "1024x1024"
	}
	if opts.ImageQuality == "" {
		opts.ImageQuality = "high"
	}
	if opts.Fonts == nil {
		fonts, err := render.NewFontSource()
		if err != nil {
			log.Warn().Err(err).Msg("Font initialization failed, text placement will be approximate")
		} else {
			opts.Fonts = fonts
		}
	}

	return &Pipeline{
		opts:     opts,
		composer: narrative.NewComposer(opts.Summarizer, opts.Prompts),
		promo:    promo.NewGenerator(opts.Rand),
		renderer: render.NewRenderer(opts.Fonts),
	}
}

// Analyze parses a session recording and returns the analysis Result.
// Parse failures are fatal; every later stage degrades instead of failing.
// A panic anywhere in extraction or composition surfaces as a processing
// error rather than crashing the caller.
func (p *Pipeline) Analyze(ctx context.Context, data []byte) (result Result) {
	runID := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("run_id", runID).Interface("panic", r).Msg("Session analysis panicked")
			result = Result{
				UserInteractions: []string{},
				Err:              fmt.Sprintf("Processing error: %v", r),
			}
		}
	}()

	s, err := session.Parse(data)
	if err != nil {
		log.Error().Str("run_id", runID).Err(err).Msg("Session parse failed")
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		return Result{
			UserInteractions: []string{},
			Err:              fmt.Sprintf("JSON parsing error: %v", cause),
		}
	}

	interactions := session.ExtractInteractions(s)
	summary := p.composer.Compose(ctx, s, interactions)

	result = Result{
		UserInteractions: interactions,
		Summary:          summary,
		FlowName:         s.Name,
		TotalEvents:      len(s.CapturedEvents),
		TotalSteps:       len(s.Steps),
	}

	if p.opts.GenerateImage {
		result.SocialMediaImage = p.generateImage(ctx, runID, s, interactions)
	}

	log.Info().
		Str("run_id", runID).
		Str("flow_name", s.Name).
		Int("interactions", len(interactions)).
		Dur("duration", time.Since(start)).
		Msg("Session analysis complete")

	return result
}

// generateImage produces the promotional image and returns the written
// path, or "" when any stage fails.
func (p *Pipeline) generateImage(ctx context.Context, runID string, s *session.Session, interactions []string) string {
	if p.opts.ImageBackend == nil {
		log.Warn().Str("run_id", runID).Msg("No image backend configured, skipping image generation")
		return ""
	}

	domains := session.ExtractPageDomains(s.Steps)
	website := defaultWebsite
	if len(domains) > 0 {
		website = domains[0]
	}
	searchTerms := session.ExtractSearchTerms(s.Steps)

	product := promo.PrimaryProduct(interactions, searchTerms)
	details := promo.ProductDetails(interactions)
	category := promo.Category(product, searchTerms)
	promoCopy := p.promo.Generate(interactions, searchTerms, website)

	prompt := p.opts.Prompts.RenderImage(prompts.ImageData{
		Product:  product,
		Details:  details,
		Website:  website,
		Category: category,
	})
	if overlay := p.opts.Prompts.RenderOverlay(); overlay != "" {
		prompt = prompt + "\n" + overlay
	}

	log.Debug().
		Str("run_id", runID).
		Str("product", product).
		Str("category", category).
		Str("website", website).
		Msg("Requesting promotional image")

	raw, err := p.opts.ImageBackend.Generate(ctx, prompt, p.opts.ImageSize, p.opts.ImageQuality)
	if err != nil {
		log.Warn().Str("run_id", runID).Err(err).Msg("Image generation failed, continuing without image")
		return ""
	}

	base, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Warn().Str("run_id", runID).Err(err).Msg("Failed to decode generated image")
		return ""
	}

	composed := p.renderer.Overlay(base, render.FieldText{
		Discount:    promoCopy.Discount,
		ProductName: promoCopy.ProductName,
		Urgency:     promoCopy.Urgency,
		CTA:         promoCopy.CTA,
		Tagline1:    promoCopy.Tagline1,
		Tagline2:    promoCopy.Tagline2,
		Website:     promoCopy.Website,
	})

	if err := savePNG(p.opts.OutputPath, composed); err != nil {
		log.Warn().Str("run_id", runID).Err(err).Str("path", p.opts.OutputPath).Msg("Failed to save promotional image")
		return ""
	}

	log.Info().
		Str("run_id", runID).
		Str("path", p.opts.OutputPath).
		Str("product", promoCopy.ProductName).
		Msg("Promotional image saved")

	return p.opts.OutputPath
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
