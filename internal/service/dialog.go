package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/dialog"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

// ErrLoginInFlight is returned when a login is submitted while another is pending.
var ErrLoginInFlight = errors.New("login already in progress")

// DialogControllerOptions groups dependencies for DialogController.
type DialogControllerOptions struct {
	API       ports.RosterAPI // Required
	Telemetry Telemetry       // Optional
}

// DialogController drives the login and logout dialogs. Its state methods are
// not goroutine-safe; the owning Controller serialises them. Authenticate
// touches no state and is called without the controller's lock.
type DialogController struct {
	api     ports.RosterAPI
	tel     Telemetry
	machine *dialog.Machine

	// loginUsername is what the login form shows; the password is never kept.
	loginUsername string
}

// NewDialogController constructs a DialogController with both dialogs closed.
func NewDialogController(opts DialogControllerOptions) *DialogController {
	if opts.API == nil {
		panic("RosterAPI is required")
	}
	return &DialogController{api: opts.API, tel: opts.Telemetry, machine: dialog.NewMachine()}
}

// State returns the visible dialog.
func (d *DialogController) State() dialog.State { return d.machine.State() }

// Submitting reports whether a login is pending.
func (d *DialogController) Submitting() bool { return d.machine.Submitting() }

// LoginUsername returns the login form's username field.
func (d *DialogController) LoginUsername() string { return d.loginUsername }

// IconClicked opens the logout confirmation for an operator and the login
// form for everyone else.
func (d *DialogController) IconClicked(session auth.Session) error {
	_, err := d.machine.Fire(dialog.IconClicked, session.IsOperator())
	return err
}

// CancelLogin closes the login dialog and resets its form.
func (d *DialogController) CancelLogin() error {
	if d.machine.State() != dialog.LoginOpen {
		return fmt.Errorf("%w: cancel login from %s", dialog.ErrInvalidTransition, d.machine.State())
	}
	if _, err := d.machine.Fire(dialog.Cancel, false); err != nil {
		return err
	}
	d.loginUsername = ""
	return nil
}

// CancelLogout closes the logout confirmation.
func (d *DialogController) CancelLogout() error {
	if d.machine.State() != dialog.LogoutOpen {
		return fmt.Errorf("%w: cancel logout from %s", dialog.ErrInvalidTransition, d.machine.State())
	}
	_, err := d.machine.Fire(dialog.Cancel, true)
	return err
}

// ConfirmLogout closes the logout confirmation. The caller clears credentials.
func (d *DialogController) ConfirmLogout() error {
	_, err := d.machine.Fire(dialog.Confirm, true)
	return err
}

// BeginLogin marks a login as pending and records the typed username.
func (d *DialogController) BeginLogin(username string) error {
	if err := d.machine.BeginSubmit(); err != nil {
		if errors.Is(err, dialog.ErrSubmitPending) {
			d.tel.operation(metrics.OpLogin, metrics.ResultBlocked, time.Time{}, nil)
			return ErrLoginInFlight
		}
		return err
	}
	d.loginUsername = username
	return nil
}

// Authenticate sends the login call. A server rejection becomes auth_failure;
// transport failures are returned as is.
func (d *DialogController) Authenticate(ctx context.Context, creds auth.Credentials) error {
	start := time.Now()
	err := d.api.Login(ctx, creds.BasicAuthHeader())
	switch {
	case err == nil:
		d.tel.operation(metrics.OpLogin, metrics.ResultSuccess, start, nil)
		return nil
	case apperrors.IsServerRejection(err):
		d.tel.operation(metrics.OpLogin, metrics.ResultRejected, start, err)
		return apperrors.AuthFailure(MsgInvalidLogin, err)
	default:
		d.tel.operation(metrics.OpLogin, metrics.ResultError, start, err)
		d.tel.logger().ErrorContext(ctx, "login request failed", "error", err)
		d.tel.report(ctx, metrics.OpLogin, err, nil)
		return err
	}
}

// FinishLogin clears the pending flag and applies the outcome. On success the
// form is reset. If the dialog was cancelled meanwhile it stays closed.
func (d *DialogController) FinishLogin(ok bool) dialog.State {
	state := d.machine.FinishSubmit(ok)
	if ok {
		d.loginUsername = ""
	}
	return state
}
