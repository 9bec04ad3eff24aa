package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodePrecondition, Message: "login required"},
			want: "login required",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTransport,
				Message: "signup request failed",
				Cause:   errors.New("connection refused"),
			},
			want: "signup request failed: connection refused",
		},
		{
			name: "rejection with detail",
			err:  Rejection(400, "Activity full"),
			want: "status 400: Activity full",
		},
		{
			name: "rejection without detail",
			err:  Rejection(500, ""),
			want: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
	if Transport(nil, "x") != nil {
		t.Fatalf("Transport(nil) should be nil")
	}
}

func TestTransport_ContextCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "plain", err: errors.New("dial tcp: refused"), want: ErrCodeTransport},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ErrCodeTimeout},
		{name: "canceled", err: context.Canceled, want: ErrCodeCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transport(tt.err, "request failed")
			if err.Code != tt.want {
				t.Fatalf("code = %s, want %s", err.Code, tt.want)
			}
			if !IsTransport(err) {
				t.Fatalf("expected IsTransport to be true")
			}
		})
	}
}

func TestIsHelpersThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", Rejection(404, "Activity not found"))

	if !IsServerRejection(wrapped) {
		t.Fatalf("expected server rejection")
	}
	if IsTransport(wrapped) || IsPrecondition(wrapped) || IsAuthFailure(wrapped) {
		t.Fatalf("unexpected classification")
	}

	detail, status, ok := Detail(wrapped)
	if !ok || detail != "Activity not found" || status != 404 {
		t.Fatalf("Detail() = %q, %d, %v", detail, status, ok)
	}

	if _, _, ok := Detail(errors.New("plain")); ok {
		t.Fatalf("plain errors carry no detail")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(PreconditionFailure("x")); got != ErrCodePrecondition {
		t.Fatalf("GetCode() = %s", got)
	}
	if got := GetCode(AuthFailure("bad", nil)); got != ErrCodeAuthFailure {
		t.Fatalf("GetCode() = %s", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Fatalf("GetCode(plain) = %s", got)
	}
	if !IsValidation(ValidationField("email", "required")) {
		t.Fatalf("expected validation error")
	}
}
