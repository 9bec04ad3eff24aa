package auth

// Package auth contains domain-level types for operator authentication.
// It is pure and free of transport concerns.

import "encoding/base64"

// Credentials are the operator's basic-auth username and password.
// They live only in memory for the lifetime of a controller.
type Credentials struct {
	Username string
	Password string
}

// BasicAuthHeader returns the Authorization header value for the credentials.
func (c Credentials) BasicAuthHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
}

// Session is the authentication state reported by the server's check-auth call.
// It is replaced wholesale on every probe and never patched in place.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// Anonymous returns the logged-out session.
func Anonymous() Session { return Session{} }

// IsOperator returns true when operator-only affordances should be shown.
func (s Session) IsOperator() bool { return s.Authenticated }
