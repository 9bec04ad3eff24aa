package errors

import (
	goerrors "errors"
	"fmt"
	"net"
	"testing"

	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "app error code", err: fmt.Errorf("refresh: %w", apperrors.Rejection(503, "")), want: "server_rejection"},
		{name: "transport", err: apperrors.Transport(goerrors.New("eof"), "fetch"), want: "transport_failure"},
		{name: "innermost type", err: fmt.Errorf("dial: %w", &net.OpError{Op: "dial", Err: goerrors.New("refused")}), want: "errors_errorstring"},
		{name: "plain", err: goerrors.New("boom"), want: "errors_errorstring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
