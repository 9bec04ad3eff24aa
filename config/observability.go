package config

import (
	"strings"
)

const defaultObservabilityName = "roster-console"

// ObservabilityConfig groups configuration that controls metrics, tracing and diagnostics.
type ObservabilityConfig struct {
	Metrics     ObservabilityMetricsConfig     `envPrefix:"METRICS_"`
	Tracing     ObservabilityTracingConfig     `envPrefix:"TRACING_"`
	Diagnostics ObservabilityDiagnosticsConfig `envPrefix:"DIAGNOSTICS_"`
}

// Sanitize applies guardrails to observability sub-configs.
func (c *ObservabilityConfig) Sanitize() {
	c.Metrics.Sanitize()
	c.Tracing.Sanitize()
	c.Diagnostics.Sanitize()
}

// ObservabilityMetricsConfig controls emission of metrics to a StatsD sink.
type ObservabilityMetricsConfig struct {
	Enabled       bool   `env:"ENABLED"        envDefault:"false"`
	StatsdAddress string `env:"STATSD_ADDRESS" envDefault:"127.0.0.1:8125"`
	Prefix        string `env:"PREFIX"         envDefault:"roster"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	c.Prefix = strings.TrimSpace(c.Prefix)
	if c.StatsdAddress == "" {
		c.Enabled = false
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *ObservabilityMetricsConfig) IsEnabled() bool {
	return c.Enabled && c.StatsdAddress != ""
}

// ObservabilityTracingConfig controls OTLP trace export. Tracing is opt-in.
type ObservabilityTracingConfig struct {
	Enabled     bool   `env:"ENABLED"      envDefault:"false"`
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"roster-console"`
}

// Sanitize disables tracing without an endpoint.
func (c *ObservabilityTracingConfig) Sanitize() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.ServiceName = strings.TrimSpace(c.ServiceName); c.ServiceName == "" {
		c.ServiceName = defaultObservabilityName
	}
	if c.Endpoint == "" {
		c.Enabled = false
	}
}

// ObservabilityDiagnosticsConfig controls the Redis stream that receives
// background failures (auth probe, roster fetch, mutation transport errors).
type ObservabilityDiagnosticsConfig struct {
	RedisEnabled  bool   `env:"REDIS_ENABLED"  envDefault:"false"`
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
	Stream        string `env:"STREAM"         envDefault:"roster:diagnostics"`
	MaxLen        int64  `env:"MAX_LEN"        envDefault:"1000"`
}

// Sanitize normalises diagnostics settings.
func (c *ObservabilityDiagnosticsConfig) Sanitize() {
	c.RedisAddr = strings.TrimSpace(c.RedisAddr)
	if c.RedisAddr == "" {
		c.RedisEnabled = false
	}
	if c.Stream = strings.TrimSpace(c.Stream); c.Stream == "" {
		c.Stream = "roster:diagnostics"
	}
	if c.MaxLen <= 0 {
		c.MaxLen = 1000
	}
	if c.RedisDB < 0 {
		c.RedisDB = 0
	}
}
