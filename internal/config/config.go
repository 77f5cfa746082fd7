package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run settings for a session analysis.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Image  ImageConfig  `yaml:"image"`
	Promo  PromoConfig  `yaml:"promo"`
}

type OutputConfig struct {
	// Path the promotional image is written to.
	Path string `yaml:"path"`
}

type ImageConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Size    string `yaml:"size"`
	Quality string `yaml:"quality"`
}

type PromoConfig struct {
	// Seed for promotional copy picks. Zero means time-based.
	Seed int64 `yaml:"seed"`
	// PromptsFile overrides the embedded prompt templates.
	PromptsFile string `yaml:"prompts_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	enabled := true
	return &Config{
		Output: OutputConfig{Path: "social_media_promotion.png"},
		Image:  ImageConfig{Enabled: &enabled, Size: "1024x1024", Quality: "high"},
	}
}

// Load reads a YAML config file and fills in defaults for unset fields.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Output.Path == "" {
		cfg.Output.Path = "social_media_promotion.png"
	}
	if cfg.Image.Enabled == nil {
		enabled := true
		cfg.Image.Enabled = &enabled
	}
	if cfg.Image.Size == "" {
		cfg.Image.Size = "1024x1024"
	}
	if cfg.Image.Quality == "" {
		cfg.Image.Quality = "high"
	}

	return &cfg, nil
}
