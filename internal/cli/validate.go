package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fpang/arcade-insights/internal/auth"
	"github.com/rs/zerolog/log"
)

// ValidateAndResolveFile checks that the path exists and is a regular file,
// then returns the absolute path. Exits fatally on failure.
func ValidateAndResolveFile(filePath string) string {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Fatal().Str("path", filePath).Msg("File not found")
		}
		log.Fatal().Err(err).Str("path", filePath).Msg("Failed to access file")
	}
	if info.IsDir() {
		log.Fatal().Str("path", filePath).Msg("Path is a directory, expected a file")
	}

	absPath, err := filepath.Abs(filePath)
	if err == nil {
		filePath = absPath
	}

	return filePath
}

// HandleValidationError processes auth.ValidationError and exits with appropriate messaging.
func HandleValidationError(err error) {
	var validationErr *auth.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Type {
		case auth.ErrTypeNoKey:
			log.Fatal().Msg("No API key configured. Set GEMINI_API_KEY or create ~/.arcade-insights/api_key")
		case auth.ErrTypeInvalidKey:
			log.Fatal().Err(err).Msg("Invalid API key. Please check your API key and try again")
		case auth.ErrTypeNetworkError:
			log.Fatal().Err(err).Msg("Network error. Please check your internet connection")
		case auth.ErrTypeQuotaExceeded:
			log.Fatal().Err(err).Msg("API quota exceeded. Please try again later or check your usage limits")
		default:
			log.Fatal().Err(err).Msg("API key validation failed")
		}
	} else {
		log.Fatal().Err(err).Msg("unexpected error during API key validation")
	}
	os.Exit(1)
}
