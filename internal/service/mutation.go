package service

import (
	"context"
	"strings"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

// MutationKind names a roster mutation.
type MutationKind string

const (
	MutationSignup     MutationKind = "signup"
	MutationUnregister MutationKind = "unregister"
)

type mutationText struct {
	requiresLogin string
	failed        string
}

var mutationMessages = map[MutationKind]mutationText{
	MutationSignup:     {requiresLogin: MsgSignupRequiresLogin, failed: MsgSignupFailed},
	MutationUnregister: {requiresLogin: MsgUnregisterRequiresLogin, failed: MsgUnregisterFailed},
}

// MutationOutcome tells the controller how to present a finished mutation.
// Exactly one of Notice or FeedbackText is set.
type MutationOutcome struct {
	Kind MutationKind
	// Notice is a blocking notice; set when the call was never sent.
	Notice       string
	FeedbackText string
	FeedbackKind feedback.Kind
	// Refresh is true only when the server confirmed the change.
	Refresh bool
	// ClearForm is true when the signup form should be reset.
	ClearForm bool
	Err       error
}

// MutationDispatcherOptions groups dependencies for MutationDispatcher.
type MutationDispatcherOptions struct {
	API         ports.RosterAPI  // Required
	Credentials *CredentialCache // Required
	Telemetry   Telemetry        // Optional
}

// MutationDispatcher sends signup and unregister calls on behalf of the operator.
type MutationDispatcher struct {
	api   ports.RosterAPI
	creds *CredentialCache
	tel   Telemetry
}

// NewMutationDispatcher constructs a MutationDispatcher.
func NewMutationDispatcher(opts MutationDispatcherOptions) *MutationDispatcher {
	if opts.API == nil {
		panic("RosterAPI is required")
	}
	if opts.Credentials == nil {
		panic("CredentialCache is required")
	}
	return &MutationDispatcher{api: opts.API, creds: opts.Credentials, tel: opts.Telemetry}
}

// Signup registers email for activity.
func (d *MutationDispatcher) Signup(ctx context.Context, activity, email string) MutationOutcome {
	return d.run(ctx, MutationSignup, activity, email)
}

// Unregister removes email from activity.
func (d *MutationDispatcher) Unregister(ctx context.Context, activity, email string) MutationOutcome {
	return d.run(ctx, MutationUnregister, activity, email)
}

func (d *MutationDispatcher) run(ctx context.Context, kind MutationKind, activity, email string) MutationOutcome {
	text := mutationMessages[kind]
	op := string(kind)

	header, ok := d.creds.AuthHeader()
	if !ok {
		d.tel.operation(op, metrics.ResultBlocked, time.Time{}, nil)
		return MutationOutcome{
			Kind:   kind,
			Notice: text.requiresLogin,
			Err:    apperrors.PreconditionFailure(text.requiresLogin),
		}
	}
	if strings.TrimSpace(activity) == "" {
		return MutationOutcome{Kind: kind, Err: apperrors.ValidationField("activity", "activity is required")}
	}
	if strings.TrimSpace(email) == "" {
		return MutationOutcome{Kind: kind, Err: apperrors.ValidationField("email", "email is required")}
	}

	start := time.Now()
	var (
		message string
		err     error
	)
	switch kind {
	case MutationSignup:
		message, err = d.api.Signup(ctx, header, activity, email)
	default:
		message, err = d.api.Unregister(ctx, header, activity, email)
	}

	switch {
	case err == nil:
		d.tel.operation(op, metrics.ResultSuccess, start, nil)
		return MutationOutcome{
			Kind:         kind,
			FeedbackText: message,
			FeedbackKind: feedback.KindSuccess,
			Refresh:      true,
			ClearForm:    kind == MutationSignup,
		}

	case apperrors.IsServerRejection(err):
		d.tel.operation(op, metrics.ResultRejected, start, err)
		detail, _, _ := apperrors.Detail(err)
		if detail == "" {
			detail = MsgRejectedFallback
		}
		return MutationOutcome{Kind: kind, FeedbackText: detail, FeedbackKind: feedback.KindError, Err: err}

	default:
		d.tel.operation(op, metrics.ResultError, start, err)
		d.tel.logger().ErrorContext(ctx, "mutation failed", "operation", op, "activity", activity, "error", err)
		d.tel.report(ctx, op, err, map[string]string{"activity": activity})
		return MutationOutcome{Kind: kind, FeedbackText: text.failed, FeedbackKind: feedback.KindError, Err: err}
	}
}
