package viewmodel

import (
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/dialog"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
)

// PageInput is the controller state a Page is derived from.
type PageInput struct {
	Session    auth.Session
	Dialog     dialog.State
	Submitting bool
	// LoginUsername is the username typed into the login form.
	LoginUsername string
	Roster        RosterView
	Signup        SignupDraft
	Feedback      *feedback.Feedback
	Notice        string
}

// SignupDraft is the current content of the signup form.
type SignupDraft struct {
	Activity string
	Email    string
}

// BuildPage derives the page. Operator-only affordances follow in.Session;
// feedback lands on the surface it was raised for.
func BuildPage(in PageInput) Page {
	operator := in.Session.IsOperator()

	p := Page{
		Header: Header{IsAuthenticated: operator},
		Roster: in.Roster,
		Signup: SignupForm{
			Visible:  operator,
			Options:  in.Roster.ActivityOptions(),
			Activity: in.Signup.Activity,
			Email:    in.Signup.Email,
		},
		Login: LoginDialog{
			Open:       in.Dialog == dialog.LoginOpen,
			Submitting: in.Submitting,
			Username:   in.LoginUsername,
		},
		Logout: LogoutDialog{Open: in.Dialog == dialog.LogoutOpen},
	}
	if operator {
		p.Header.UserStatus = in.Session.Username
		p.Logout.Username = in.Session.Username
	}

	if fb := in.Feedback; fb != nil {
		switch fb.Surface {
		case feedback.SurfaceLogin:
			if p.Login.Open {
				p.Login.Feedback = NewFeedbackView(fb)
			}
		default:
			p.Feedback = NewFeedbackView(fb)
		}
	}
	if in.Notice != "" {
		p.Notice = &NoticeView{Text: in.Notice}
	}
	return p
}
