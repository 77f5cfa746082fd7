package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/arcade-insights/internal/auth"
	"github.com/fpang/arcade-insights/internal/cli"
	"github.com/fpang/arcade-insights/internal/config"
	"github.com/fpang/arcade-insights/internal/imagegen"
	"github.com/fpang/arcade-insights/internal/logging"
	"github.com/fpang/arcade-insights/internal/narrative"
	"github.com/fpang/arcade-insights/internal/pipeline"
	"github.com/fpang/arcade-insights/internal/prompts"
)

// CLI flags
var (
	imageFlag   bool
	outputFlag  string
	promptsFlag string
	configFlag  string
	seedFlag    int64
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "arcade-analyze <session.json>",
	Short: "Human-friendly analysis of Arcade session recordings",
	Long: `Arcade Analyze turns an exported Arcade session recording into a readable
interaction log, an AI-generated narrative summary, and an optional
promotional social media image.

The tool parses the session JSON, interprets captured events against their
steps, asks Gemini for a narrative summary (with a deterministic fallback
when no API key is configured), and can generate a product showcase image
with promotional text overlaid locally.

Examples:
  arcade-analyze session.json
  arcade-analyze session.json --image --output promo.png
  arcade-analyze session.json --prompts prompts.txt --seed 42
  arcade-analyze session.json --config run.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMain,
}

func init() {
	rootCmd.Flags().BoolVar(&imageFlag, "image", false, "Generate the promotional social media image")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Path for the generated image (default social_media_promotion.png)")
	rootCmd.Flags().StringVar(&promptsFlag, "prompts", "", "External prompts file overriding the embedded templates")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "YAML run configuration file")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for promotional copy picks (0 = time-based)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	logging.Init()
	start := time.Now()

	cfg, err := config.Load(configFlag)
	if err != nil {
		log.Fatal().Err(err).Str("path", configFlag).Msg("Failed to load config")
	}

	// Flags override the config file.
	if outputFlag != "" {
		cfg.Output.Path = outputFlag
	}
	if promptsFlag != "" {
		cfg.Promo.PromptsFile = promptsFlag
	}
	if seedFlag != 0 {
		cfg.Promo.Seed = seedFlag
	}

	sessionPath := ""
	if len(args) > 0 {
		sessionPath = args[0]
	} else {
		sessionPath = cli.PromptForSessionFile("session.json")
	}
	sessionPath = cli.ValidateAndResolveFile(sessionPath)

	data, err := os.ReadFile(sessionPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", sessionPath).Msg("Failed to read session file")
	}

	// The --image flag wins; otherwise a config file decides.
	generateImage := false
	if cmd.Flags().Changed("image") {
		generateImage = imageFlag
	} else if configFlag != "" && cfg.Image.Enabled != nil {
		generateImage = *cfg.Image.Enabled
	}

	logging.NewStartupLogger("arcade-analyze").
		Feature("imageGeneration", generateImage).
		Config("sessionFile", sessionPath).
		Config("outputPath", cfg.Output.Path).
		Config("model", narrative.GetModelName()).
		Log()

	opts := pipeline.Options{
		OutputPath:    cfg.Output.Path,
		GenerateImage: generateImage,
		ImageSize:     cfg.Image.Size,
		ImageQuality:  cfg.Image.Quality,
	}

	if cfg.Promo.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Promo.Seed))
	}

	if cfg.Promo.PromptsFile != "" {
		set, err := prompts.Load(cfg.Promo.PromptsFile)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Promo.PromptsFile).Msg("Using embedded default prompts")
		}
		opts.Prompts = set
	}

	ctx := context.Background()

	// A missing API key only disables the AI-backed stages; the
	// deterministic analysis still runs.
	if apiKey, err := auth.GetAPIKey(); err == nil {
		_, client := cli.InitGeminiClient()
		opts.Summarizer = narrative.NewGeminiSummarizer(client)
		if generateImage {
			opts.ImageBackend = imagegen.NewGeminiBackend(apiKey)
		}
	} else {
		log.Warn().Msg("No Gemini API key found, using deterministic fallback summary")
	}

	result := pipeline.New(opts).Analyze(ctx, data)

	printReport(result)

	if result.Err != "" {
		os.Exit(1)
	}

	fmt.Printf("Completed in %s\n", cli.FormatDurationShort(time.Since(start)))
}

// printReport writes the analysis report to stdout.
func printReport(result pipeline.Result) {
	fmt.Println("============================================================")
	fmt.Println("ARCADE DATA ANALYSIS")
	fmt.Println("============================================================")
	fmt.Println()

	if result.Err != "" {
		fmt.Printf("ERROR: %s\n", result.Err)
		return
	}

	fmt.Printf("Flow Name: %s\n", result.FlowName)
	fmt.Printf("Total Events: %d\n", result.TotalEvents)
	fmt.Printf("Total Steps: %d\n", result.TotalSteps)
	fmt.Println()

	fmt.Println("USER INTERACTIONS:")
	fmt.Println("----------------------------------------")
	if len(result.UserInteractions) > 0 {
		for i, interaction := range result.UserInteractions {
			fmt.Printf("%2d. %s\n", i+1, interaction)
		}
	} else {
		fmt.Println("No interactions found.")
	}
	fmt.Println()

	fmt.Println("HUMAN-FRIENDLY SUMMARY:")
	fmt.Println("----------------------------------------")
	fmt.Println(result.Summary)
	fmt.Println()

	if result.SocialMediaImage != "" {
		fmt.Println("SOCIAL MEDIA IMAGE:")
		fmt.Println("----------------------------------------")
		fmt.Printf("Generated promotional image: %s\n", result.SocialMediaImage)
		fmt.Println()
	}

	fmt.Println("Analysis completed successfully!")
}
