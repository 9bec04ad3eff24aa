package service

// Event is a discrete operator action delivered to Controller.Dispatch.
type Event interface {
	// Name identifies the event in logs.
	Name() string
}

// EventIconClicked opens the login form or the logout confirmation.
type EventIconClicked struct{}

// EventLoginSubmitted submits the login form.
type EventLoginSubmitted struct {
	Username string
	Password string
}

// EventLoginCancelled closes the login form.
type EventLoginCancelled struct{}

// EventLogoutConfirmed confirms logging out.
type EventLogoutConfirmed struct{}

// EventLogoutCancelled closes the logout confirmation.
type EventLogoutCancelled struct{}

// EventSignupSubmitted submits the signup form.
type EventSignupSubmitted struct {
	Activity string
	Email    string
}

// EventUnregisterClicked activates a participant's removal control.
type EventUnregisterClicked struct {
	Activity string
	Email    string
}

// EventRefreshRequested asks for a fresh roster.
type EventRefreshRequested struct{}

// EventNoticeDismissed acknowledges the blocking notice.
type EventNoticeDismissed struct{}

func (EventIconClicked) Name() string       { return "icon_clicked" }
func (EventLoginSubmitted) Name() string    { return "login_submitted" }
func (EventLoginCancelled) Name() string    { return "login_cancelled" }
func (EventLogoutConfirmed) Name() string   { return "logout_confirmed" }
func (EventLogoutCancelled) Name() string   { return "logout_cancelled" }
func (EventSignupSubmitted) Name() string   { return "signup_submitted" }
func (EventUnregisterClicked) Name() string { return "unregister_clicked" }
func (EventRefreshRequested) Name() string  { return "refresh_requested" }
func (EventNoticeDismissed) Name() string   { return "notice_dismissed" }
