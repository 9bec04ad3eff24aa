package dialog

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		from       State
		trigger    Trigger
		hasSession bool
		want       State
		wantErr    bool
	}{
		{name: "icon without session opens login", from: Closed, trigger: IconClicked, want: LoginOpen},
		{name: "icon with session opens logout", from: Closed, trigger: IconClicked, hasSession: true, want: LogoutOpen},
		{name: "cancel login", from: LoginOpen, trigger: Cancel, want: Closed},
		{name: "cancel logout", from: LogoutOpen, trigger: Cancel, want: Closed},
		{name: "login success closes", from: LoginOpen, trigger: SubmitSucceeded, want: Closed},
		{name: "login failure stays open", from: LoginOpen, trigger: SubmitFailed, want: LoginOpen},
		{name: "logout confirm closes", from: LogoutOpen, trigger: Confirm, want: Closed},
		{name: "icon while login open", from: LoginOpen, trigger: IconClicked, want: LoginOpen, wantErr: true},
		{name: "icon while logout open", from: LogoutOpen, trigger: IconClicked, hasSession: true, want: LogoutOpen, wantErr: true},
		{name: "confirm on login dialog", from: LoginOpen, trigger: Confirm, want: LoginOpen, wantErr: true},
		{name: "submit on logout dialog", from: LogoutOpen, trigger: SubmitSucceeded, want: LogoutOpen, wantErr: true},
		{name: "cancel when closed", from: Closed, trigger: Cancel, want: Closed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.trigger, tt.hasSession)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("Transition() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Every reachable state is a single value, so both dialogs can never be open together.
func TestMachine_NeverOpensBothDialogs(t *testing.T) {
	triggers := []Trigger{IconClicked, Cancel, SubmitSucceeded, SubmitFailed, Confirm}
	m := NewMachine()
	for i := 0; i < 200; i++ {
		_, _ = m.Fire(triggers[i%len(triggers)], i%3 == 0)
		switch m.State() {
		case Closed, LoginOpen, LogoutOpen:
		default:
			t.Fatalf("unexpected state %q", m.State())
		}
	}
}

func TestMachine_SubmitGuard(t *testing.T) {
	m := NewMachine()
	if err := m.BeginSubmit(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected submit from closed to fail, got %v", err)
	}

	if _, err := m.Fire(IconClicked, false); err != nil {
		t.Fatalf("open login: %v", err)
	}
	if err := m.BeginSubmit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if !m.Submitting() {
		t.Fatalf("expected submitting")
	}
	if err := m.BeginSubmit(); !errors.Is(err, ErrSubmitPending) {
		t.Fatalf("expected ErrSubmitPending, got %v", err)
	}

	if got := m.FinishSubmit(false); got != LoginOpen {
		t.Fatalf("failed submit should keep login open, got %s", got)
	}
	if m.Submitting() {
		t.Fatalf("guard should be released")
	}

	if err := m.BeginSubmit(); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if got := m.FinishSubmit(true); got != Closed {
		t.Fatalf("successful submit should close, got %s", got)
	}
}

func TestMachine_FinishSubmitAfterCancel(t *testing.T) {
	m := NewMachine()
	_, _ = m.Fire(IconClicked, false)
	if err := m.BeginSubmit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := m.Fire(Cancel, false); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := m.FinishSubmit(false); got != Closed {
		t.Fatalf("cancelled dialog must stay closed, got %s", got)
	}
}
