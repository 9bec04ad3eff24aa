package auth

import "testing"

func TestCredentials_BasicAuthHeader(t *testing.T) {
	c := Credentials{Username: "jdoe", Password: "secret"}
	if got, want := c.BasicAuthHeader(), "Basic amRvZTpzZWNyZXQ="; got != want {
		t.Fatalf("BasicAuthHeader() = %q, want %q", got, want)
	}
}

func TestCredentials_BasicAuthHeaderKeepsColonsInPassword(t *testing.T) {
	c := Credentials{Username: "a", Password: "b:c"}
	if got, want := c.BasicAuthHeader(), "Basic YTpiOmM="; got != want {
		t.Fatalf("BasicAuthHeader() = %q, want %q", got, want)
	}
}

func TestSession_IsOperator(t *testing.T) {
	if Anonymous().IsOperator() {
		t.Fatalf("anonymous session must not be an operator")
	}
	if !(Session{Authenticated: true, Username: "jdoe"}).IsOperator() {
		t.Fatalf("expected authenticated session to be an operator")
	}
}
