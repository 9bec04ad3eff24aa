package config

import (
	"strings"
	"time"
)

const (
	defaultBaseURL    = "http://localhost:8000"
	defaultDetailExpr = "detail"
)

// ServerConfig describes how the controller reaches the roster server.
type ServerConfig struct {
	// BaseURL is the roster server root, e.g. "https://school.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request. Zero leaves the transport default in place.
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`

	// DetailExpr is the JMESPath expression that extracts the human-readable
	// message from a rejected mutation body.
	DetailExpr string `env:"DETAIL_EXPR" envDefault:"detail"`
}

// Sanitize applies guardrails to server configuration values.
func (s *ServerConfig) Sanitize() {
	s.BaseURL = strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if s.BaseURL == "" {
		s.BaseURL = defaultBaseURL
	}
	if s.Timeout < 0 {
		s.Timeout = 0
	}
	s.DetailExpr = strings.TrimSpace(s.DetailExpr)
	if s.DetailExpr == "" {
		s.DetailExpr = defaultDetailExpr
	}
}
