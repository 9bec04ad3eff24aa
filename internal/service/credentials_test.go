package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
)

func TestCredentialCache_Lifecycle(t *testing.T) {
	c := NewCredentialCache()

	_, ok := c.Get()
	assert.False(t, ok)
	header, ok := c.AuthHeader()
	assert.False(t, ok)
	assert.Empty(t, header)

	c.Set("jdoe", "secret")
	creds, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, auth.Credentials{Username: "jdoe", Password: "secret"}, creds)
	header, ok = c.AuthHeader()
	require.True(t, ok)
	assert.Equal(t, "Basic amRvZTpzZWNyZXQ=", header)

	c.Set("other", "pw")
	creds, _ = c.Get()
	assert.Equal(t, "other", creds.Username)

	c.Clear()
	_, ok = c.Get()
	assert.False(t, ok)
	c.Clear()
}

func TestCredentialCache_ConcurrentAccess(t *testing.T) {
	c := NewCredentialCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("jdoe", "secret")
		}()
		go func() {
			defer wg.Done()
			if h, ok := c.AuthHeader(); ok {
				assert.Equal(t, "Basic amRvZTpzZWNyZXQ=", h)
			}
		}()
	}
	wg.Wait()
}
