package rosterapi

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// resettableJar is a cookie jar that can be emptied on logout.
type resettableJar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
}

func newCookieJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

func newResettableJar() (*resettableJar, error) {
	inner, err := newCookieJar()
	if err != nil {
		return nil, err
	}
	return &resettableJar{inner: inner}, nil
}

// SetCookies implements http.CookieJar.
func (j *resettableJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	inner := j.inner
	j.mu.RUnlock()
	inner.SetCookies(u, cookies)
}

// Cookies implements http.CookieJar.
func (j *resettableJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	inner := j.inner
	j.mu.RUnlock()
	return inner.Cookies(u)
}

// Reset replaces the jar contents with an empty jar.
func (j *resettableJar) Reset() error {
	inner, err := newCookieJar()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
	return nil
}
