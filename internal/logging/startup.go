package logging

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StartupLogger collects tool identity, configuration, and feature flags,
// then emits a single structured zerolog event summarising the run
// configuration. This makes it easy to see exactly how an analysis run
// was configured when troubleshooting from logs.
type StartupLogger struct {
	name string

	features map[string]bool
	config   map[string]string
}

// NewStartupLogger creates a StartupLogger for the given tool name
// (e.g. "arcade-analyze").
func NewStartupLogger(name string) *StartupLogger {
	return &StartupLogger{
		name:     name,
		features: make(map[string]bool),
		config:   make(map[string]string),
	}
}

// Feature registers a boolean feature flag (e.g. "imageGeneration").
func (s *StartupLogger) Feature(name string, enabled bool) *StartupLogger {
	s.features[name] = enabled
	return s
}

// Config registers a non-sensitive configuration key-value pair.
func (s *StartupLogger) Config(key, value string) *StartupLogger {
	s.config[key] = value
	return s
}

// EnvOrDefault returns the value of the named environment variable, or
// defaultVal if the variable is empty or unset.
func EnvOrDefault(envVar, defaultVal string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return defaultVal
}

// Log emits a single structured INFO log event with all collected information.
func (s *StartupLogger) Log() {
	evt := log.Info()

	toolDict := zerolog.Dict().
		Str("name", s.name).
		Str("goVersion", runtime.Version()).
		Str("arch", runtime.GOARCH).
		Str("logLevel", os.Getenv("ARCADE_LOG_LEVEL"))

	evt = evt.Dict("tool", toolDict)

	if len(s.features) > 0 {
		d := zerolog.Dict()
		for k, v := range s.features {
			d = d.Bool(k, v)
		}
		evt = evt.Dict("features", d)
	}

	if len(s.config) > 0 {
		d := zerolog.Dict()
		for k, v := range s.config {
			d = d.Str(k, v)
		}
		evt = evt.Dict("config", d)
	}

	evt.Msg("Startup complete")
}
