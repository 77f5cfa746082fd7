package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// PromptForSessionFile prompts the user interactively for a session JSON path.
// Returns defaultPath if the user enters nothing.
func PromptForSessionFile(defaultPath string) string {
	fmt.Printf("Session file [%s]: ", defaultPath)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input, using default session file")
		return defaultPath
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultPath
	}

	return input
}
