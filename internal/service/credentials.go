package service

import (
	"sync"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
)

// CredentialCache holds the operator's credentials in memory for the lifetime
// of one controller. It is never persisted.
type CredentialCache struct {
	mu    sync.RWMutex
	creds *auth.Credentials
}

// NewCredentialCache returns an empty cache.
func NewCredentialCache() *CredentialCache { return &CredentialCache{} }

// Set stores credentials, replacing any previous ones.
func (c *CredentialCache) Set(username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = &auth.Credentials{Username: username, Password: password}
}

// Clear forgets the stored credentials.
func (c *CredentialCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = nil
}

// Get returns the stored credentials, if any.
func (c *CredentialCache) Get() (auth.Credentials, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.creds == nil {
		return auth.Credentials{}, false
	}
	return *c.creds, true
}

// AuthHeader returns the basic-auth header value for the stored credentials.
func (c *CredentialCache) AuthHeader() (string, bool) {
	creds, ok := c.Get()
	if !ok {
		return "", false
	}
	return creds.BasicAuthHeader(), true
}
