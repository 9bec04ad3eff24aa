// Package viewmodel holds the render-target independent description of the
// roster console. Renderers (terminal, HTML) only read these types.
package viewmodel

import (
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
)

// Page is a full snapshot of everything the operator can see.
type Page struct {
	Header   Header
	Roster   RosterView
	Signup   SignupForm
	Login    LoginDialog
	Logout   LogoutDialog
	Feedback *FeedbackView
	Notice   *NoticeView
}

// Header is the user icon area.
type Header struct {
	IsAuthenticated bool
	// UserStatus is the username next to the icon; empty when logged out.
	UserStatus string
}

// SignupForm is the operator-only registration form.
type SignupForm struct {
	Visible  bool
	Options  []string
	Activity string
	Email    string
}

// LoginDialog is the login modal.
type LoginDialog struct {
	Open       bool
	Submitting bool
	Username   string
	Feedback   *FeedbackView
}

// SubmitEnabled reports whether the submit control accepts input.
func (d LoginDialog) SubmitEnabled() bool { return d.Open && !d.Submitting }

// LogoutDialog is the logout confirmation modal.
type LogoutDialog struct {
	Open     bool
	Username string
}

// FeedbackView is a visible transient message.
type FeedbackView struct {
	ID   string
	Text string
	Kind feedback.Kind
}

// IsError reports whether the message should be styled as an error.
func (f *FeedbackView) IsError() bool { return f != nil && f.Kind == feedback.KindError }

// NoticeView is a blocking notice that must be acknowledged.
type NoticeView struct {
	Text string
}

// NewFeedbackView converts a domain feedback into its view form. A nil input
// yields nil.
func NewFeedbackView(f *feedback.Feedback) *FeedbackView {
	if f == nil {
		return nil
	}
	return &FeedbackView{ID: f.ID, Text: f.Text, Kind: f.Kind}
}
