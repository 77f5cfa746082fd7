package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	credentialDir  = ".arcade-insights"
	credentialFile = "api_key"
)

// GetAPIKey retrieves the Gemini API key from available sources.
// Priority order:
//  1. GEMINI_API_KEY environment variable
//  2. Key file at ~/.arcade-insights/api_key (must be owner-only, 0600)
func GetAPIKey() (string, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		log.Debug().Msg("Using API key from environment variable")
		return key, nil
	}

	key, err := getFromKeyFile()
	if err == nil && key != "" {
		log.Debug().Msg("Using API key from key file")
		return key, nil
	}

	log.Error().Err(err).Msg("Failed to retrieve API key")
	return "", fmt.Errorf("API key not found. Set GEMINI_API_KEY or create ~/%s/%s", credentialDir, credentialFile)
}

// getFromKeyFile reads the API key from the credentials file, refusing
// files readable by group or other.
func getFromKeyFile() (string, error) {
	credPath, err := getCredentialPath()
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(credPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("key file not found at %s", credPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat key file: %w", err)
	}

	mode := fi.Mode().Perm()
	if mode&0077 != 0 {
		log.Warn().
			Str("key_file", credPath).
			Str("permissions", fmt.Sprintf("%04o", mode)).
			Msg("Key file has insecure permissions (should be 0600); skipping")
		return "", fmt.Errorf("key file %s has insecure permissions %04o", credPath, mode)
	}

	log.Debug().Str("file", credPath).Msg("Reading API key file")
	data, err := os.ReadFile(credPath)
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// getCredentialPath returns the full path to the key file.
func getCredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, credentialDir, credentialFile), nil
}
