// Package dialog models the mutually exclusive login and logout-confirmation dialogs.
package dialog

import (
	"errors"
	"fmt"
)

// State is the visible dialog surface. Only one surface can be open at a time.
type State string

const (
	Closed     State = "closed"
	LoginOpen  State = "login_open"
	LogoutOpen State = "logout_open"
)

// Trigger is a named user or async event that may move the machine.
type Trigger string

const (
	IconClicked     Trigger = "icon_clicked"
	Cancel          Trigger = "cancel"
	SubmitSucceeded Trigger = "submit_succeeded"
	SubmitFailed    Trigger = "submit_failed"
	Confirm         Trigger = "confirm"
)

// ErrInvalidTransition is returned when a trigger does not apply to the current state.
var ErrInvalidTransition = errors.New("invalid dialog transition")

// Transition returns the next state for trigger. hasSession selects the icon target:
// an authenticated operator gets the logout confirmation, everyone else the login form.
func Transition(from State, trigger Trigger, hasSession bool) (State, error) {
	switch from {
	case Closed:
		if trigger == IconClicked {
			if hasSession {
				return LogoutOpen, nil
			}
			return LoginOpen, nil
		}
	case LoginOpen:
		switch trigger {
		case Cancel, SubmitSucceeded:
			return Closed, nil
		case SubmitFailed:
			return LoginOpen, nil
		}
	case LogoutOpen:
		switch trigger {
		case Cancel, Confirm:
			return Closed, nil
		}
	}
	return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, trigger, from)
}

// Machine holds the current dialog state plus the login submit guard.
// It is not safe for concurrent use; the owning controller serialises access.
type Machine struct {
	state      State
	submitting bool
}

// ErrSubmitPending is returned when a login submit is attempted while another is in flight.
var ErrSubmitPending = errors.New("login submit already in flight")

// NewMachine returns a machine with every dialog closed.
func NewMachine() *Machine { return &Machine{state: Closed} }

// State returns the current dialog state.
func (m *Machine) State() State { return m.state }

// Submitting reports whether a login submit is awaiting its response.
func (m *Machine) Submitting() bool { return m.submitting }

// Fire applies trigger and returns the resulting state.
func (m *Machine) Fire(trigger Trigger, hasSession bool) (State, error) {
	next, err := Transition(m.state, trigger, hasSession)
	if err != nil {
		return m.state, err
	}
	m.state = next
	return next, nil
}

// BeginSubmit marks a login submit as in flight. The login dialog must be open.
func (m *Machine) BeginSubmit() error {
	if m.state != LoginOpen {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, m.state)
	}
	if m.submitting {
		return ErrSubmitPending
	}
	m.submitting = true
	return nil
}

// FinishSubmit clears the in-flight guard and applies the submit outcome.
// When the dialog was cancelled while the request was pending the state stays Closed.
func (m *Machine) FinishSubmit(ok bool) State {
	m.submitting = false
	if m.state != LoginOpen {
		return m.state
	}
	trigger := SubmitFailed
	if ok {
		trigger = SubmitSucceeded
	}
	next, _ := Transition(m.state, trigger, false)
	m.state = next
	return next
}
