// Package feedback describes transient success/error messages shown to the operator.
package feedback

import "time"

// Kind distinguishes success from error feedback.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Surface is where the feedback is displayed.
type Surface string

const (
	// SurfaceMain is the page-level message area used by mutations.
	SurfaceMain Surface = "main"
	// SurfaceLogin is the message area inside the login dialog.
	SurfaceLogin Surface = "login"
)

// Feedback is a single transient message. ID identifies the instance so that an
// expiry scheduled for an older message never clears a newer one.
type Feedback struct {
	ID        string
	Text      string
	Kind      Kind
	Surface   Surface
	ExpiresAt time.Time
}

// Expired reports whether the feedback should no longer be visible at now.
func (f Feedback) Expired(now time.Time) bool {
	return !f.ExpiresAt.IsZero() && !now.Before(f.ExpiresAt)
}

// IsError reports whether the feedback is an error message.
func (f Feedback) IsError() bool { return f.Kind == KindError }
