package config

import "time"

const (
	defaultMutationFeedbackTTL = 5 * time.Second
	defaultLoginFeedbackTTL    = 3 * time.Second
)

// FeedbackConfig controls how long transient messages stay visible.
type FeedbackConfig struct {
	// MutationTTL applies to signup/unregister outcomes.
	MutationTTL time.Duration `env:"MUTATION_TTL" envDefault:"5s"`
	// LoginTTL applies to failed login attempts shown inside the login dialog.
	LoginTTL time.Duration `env:"LOGIN_TTL" envDefault:"3s"`
}

// Sanitize falls back to the default windows for non-positive values.
func (f *FeedbackConfig) Sanitize() {
	if f.MutationTTL <= 0 {
		f.MutationTTL = defaultMutationFeedbackTTL
	}
	if f.LoginTTL <= 0 {
		f.LoginTTL = defaultLoginFeedbackTTL
	}
}
