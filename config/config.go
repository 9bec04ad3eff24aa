package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - server.go: roster server endpoint and request behaviour
//   - feedback.go: feedback auto-dismiss windows
//   - logging.go: log level
//   - observability.go: metrics, tracing and diagnostics sinks
type AppConfig struct {
	// IsDev enables human-readable text logs instead of JSON.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Roster server configuration
	Server ServerConfig `envPrefix:"ROSTER_"`

	// Feedback timing configuration
	Feedback FeedbackConfig `envPrefix:"FEEDBACK_"`

	// Logging configuration
	Log LogConfig

	// Observability configuration
	Observability ObservabilityConfig `envPrefix:"OBSERVABILITY_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Server.Sanitize()
	c.Feedback.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
