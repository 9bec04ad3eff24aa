package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/dialog"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

var (
	// ErrControllerClosed is returned by Dispatch after Close.
	ErrControllerClosed = errors.New("controller closed")
	// ErrNoticePending is returned while a blocking notice awaits EventNoticeDismissed.
	ErrNoticePending = errors.New("blocking notice must be dismissed first")
)

const (
	defaultMutationFeedbackTTL = 5 * time.Second
	defaultLoginFeedbackTTL    = 3 * time.Second
)

// FeedbackTiming sets how long feedback stays visible.
type FeedbackTiming struct {
	Mutation time.Duration
	Login    time.Duration
}

// ControllerRuntime groups the controller's runtime collaborators.
type ControllerRuntime struct {
	Scheduler ports.Scheduler // Required: feedback expiry
	Timing    FeedbackTiming  // Optional: zero values use 5s/3s
	Telemetry Telemetry       // Optional
}

// ControllerOptions groups dependencies for Controller.
type ControllerOptions struct {
	API     ports.RosterAPI   // Required
	View    ports.View        // Optional: pages are dropped when nil
	Runtime ControllerRuntime // Scheduler required
}

// Controller owns the session, the credentials, the dialog state, the visible
// feedback and the rendered roster. Every operator action arrives as an Event;
// after each state change the controller renders a fresh Page.
//
// Network calls run without the lock, so events may interleave. Refreshes are
// numbered and only the latest one renders; the same rule applies to auth
// probes.
type Controller struct {
	mu     sync.Mutex
	api    ports.RosterAPI
	view   ports.View
	tel    Telemetry
	timing FeedbackTiming

	creds     *CredentialCache
	probe     *AuthProbe
	dialogs   *DialogController
	roster    *RosterSynchronizer
	mutations *MutationDispatcher
	board     *FeedbackBoard

	session    auth.Session
	probeSeq   uint64
	rosterView viewmodel.RosterView
	signup     viewmodel.SignupDraft
	notice     string
	closed     bool
}

// NewController wires the controller components around a fresh credential cache.
func NewController(opts ControllerOptions) *Controller {
	if opts.API == nil {
		panic("RosterAPI is required")
	}
	if opts.Runtime.Scheduler == nil {
		panic("Scheduler is required")
	}

	timing := opts.Runtime.Timing
	if timing.Mutation <= 0 {
		timing.Mutation = defaultMutationFeedbackTTL
	}
	if timing.Login <= 0 {
		timing.Login = defaultLoginFeedbackTTL
	}

	tel := opts.Runtime.Telemetry
	creds := NewCredentialCache()
	c := &Controller{
		api:        opts.API,
		view:       opts.View,
		tel:        tel,
		timing:     timing,
		creds:      creds,
		probe:      NewAuthProbe(AuthProbeOptions{API: opts.API, Credentials: creds, Telemetry: tel}),
		dialogs:    NewDialogController(DialogControllerOptions{API: opts.API, Telemetry: tel}),
		roster:     NewRosterSynchronizer(RosterSynchronizerOptions{API: opts.API, Telemetry: tel}),
		mutations:  NewMutationDispatcher(MutationDispatcherOptions{API: opts.API, Credentials: creds, Telemetry: tel}),
		session:    auth.Anonymous(),
		rosterView: viewmodel.LoadingRoster(),
	}
	c.board = NewFeedbackBoard(opts.Runtime.Scheduler, c.onFeedbackExpired)
	return c
}

// Start runs the initial auth probe and then the first roster refresh.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	c.renderLocked()
	c.mu.Unlock()

	c.checkAuth(ctx)
	return c.Refresh(ctx)
}

// Dispatch applies ev. Errors describe why the action did not succeed; the
// page has already been updated to show the outcome, so none of them leave the
// controller unusable.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	if ev == nil {
		return errors.New("nil event")
	}

	c.mu.Lock()
	closed, notice := c.closed, c.notice
	c.mu.Unlock()
	if closed {
		return ErrControllerClosed
	}
	if _, dismiss := ev.(EventNoticeDismissed); notice != "" && !dismiss {
		return ErrNoticePending
	}

	c.tel.logger().DebugContext(ctx, "dispatch event", "event", ev.Name())

	switch e := ev.(type) {
	case EventIconClicked:
		return c.withLock(func() error { return c.dialogs.IconClicked(c.session) })
	case EventLoginSubmitted:
		return c.login(ctx, e)
	case EventLoginCancelled:
		return c.withLock(func() error {
			if err := c.dialogs.CancelLogin(); err != nil {
				return err
			}
			c.board.ClearSurface(feedback.SurfaceLogin)
			return nil
		})
	case EventLogoutConfirmed:
		return c.logout(ctx)
	case EventLogoutCancelled:
		return c.withLock(c.dialogs.CancelLogout)
	case EventSignupSubmitted:
		return c.mutate(ctx, MutationSignup, e.Activity, e.Email)
	case EventUnregisterClicked:
		return c.mutate(ctx, MutationUnregister, e.Activity, e.Email)
	case EventRefreshRequested:
		return c.Refresh(ctx)
	case EventNoticeDismissed:
		return c.withLock(func() error {
			c.notice = ""
			return nil
		})
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// Refresh fetches the roster and renders it if no newer refresh was issued
// meanwhile. A failed fetch replaces the list with the error view.
func (c *Controller) Refresh(ctx context.Context) error {
	f := c.roster.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.roster.IsCurrent(f.Seq) {
		c.roster.Discard(f)
		return nil
	}
	if c.closed {
		return f.Err
	}
	c.rosterView = c.roster.Render(f, c.session)
	c.renderLocked()
	return f.Err
}

// Page returns the current page snapshot.
func (c *Controller) Page() viewmodel.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageLocked()
}

// Session returns the session from the latest applied auth probe.
func (c *Controller) Session() auth.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Close forgets the credentials and any pending feedback. Further events are
// rejected with ErrControllerClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.creds.Clear()
	c.board.Reset()
}

func (c *Controller) withLock(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := fn(); err != nil {
		return err
	}
	c.renderLocked()
	return nil
}

// checkAuth runs the probe and applies its session if it is still the latest.
func (c *Controller) checkAuth(ctx context.Context) {
	c.mu.Lock()
	c.probeSeq++
	seq := c.probeSeq
	c.mu.Unlock()

	sess := c.probe.CheckAuth(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.probeSeq || c.closed {
		c.tel.operation(metrics.OpCheckAuth, metrics.ResultStale, time.Time{}, nil)
		return
	}
	c.session = sess
	c.renderLocked()
}

func (c *Controller) login(ctx context.Context, e EventLoginSubmitted) error {
	c.mu.Lock()
	if err := c.dialogs.BeginLogin(e.Username); err != nil {
		c.mu.Unlock()
		return err
	}
	c.board.ClearSurface(feedback.SurfaceLogin)
	c.renderLocked()
	c.mu.Unlock()

	err := c.dialogs.Authenticate(ctx, auth.Credentials{Username: e.Username, Password: e.Password})

	c.mu.Lock()
	state := c.dialogs.FinishLogin(err == nil)
	if err != nil {
		// A dialog cancelled while the call was pending gets no feedback.
		if state == dialog.LoginOpen {
			msg := MsgLoginFailed
			if apperrors.IsAuthFailure(err) {
				msg = MsgInvalidLogin
			}
			c.board.Show(msg, feedback.KindError, feedback.SurfaceLogin, c.timing.Login)
		}
		c.renderLocked()
		c.mu.Unlock()
		return err
	}
	if c.closed {
		c.mu.Unlock()
		return ErrControllerClosed
	}
	c.creds.Set(e.Username, e.Password)
	c.renderLocked()
	c.mu.Unlock()

	c.checkAuth(ctx)
	return c.Refresh(ctx)
}

func (c *Controller) logout(ctx context.Context) error {
	c.mu.Lock()
	if err := c.dialogs.ConfirmLogout(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.creds.Clear()
	c.api.ForgetSession()
	c.session = auth.Anonymous()
	// Invalidate any probe still carrying the old credentials.
	c.probeSeq++
	c.renderLocked()
	c.mu.Unlock()

	c.checkAuth(ctx)
	return c.Refresh(ctx)
}

func (c *Controller) mutate(ctx context.Context, kind MutationKind, activity, email string) error {
	if kind == MutationSignup {
		c.mu.Lock()
		c.signup = viewmodel.SignupDraft{Activity: activity, Email: email}
		c.mu.Unlock()
	}

	var out MutationOutcome
	if kind == MutationSignup {
		out = c.mutations.Signup(ctx, activity, email)
	} else {
		out = c.mutations.Unregister(ctx, activity, email)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return out.Err
	}
	switch {
	case out.Notice != "":
		c.notice = out.Notice
	case out.FeedbackText != "" || out.FeedbackKind != "":
		c.board.Show(out.FeedbackText, out.FeedbackKind, feedback.SurfaceMain, c.timing.Mutation)
	}
	if out.ClearForm {
		c.signup = viewmodel.SignupDraft{}
	}
	c.renderLocked()
	c.mu.Unlock()

	if !out.Refresh {
		return out.Err
	}
	return c.Refresh(ctx)
}

func (c *Controller) onFeedbackExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.renderLocked()
}

func (c *Controller) pageLocked() viewmodel.Page {
	return viewmodel.BuildPage(viewmodel.PageInput{
		Session:       c.session,
		Dialog:        c.dialogs.State(),
		Submitting:    c.dialogs.Submitting(),
		LoginUsername: c.dialogs.LoginUsername(),
		Roster:        c.rosterView,
		Signup:        c.signup,
		Feedback:      c.board.Current(),
		Notice:        c.notice,
	})
}

func (c *Controller) renderLocked() {
	if c.view == nil {
		return
	}
	c.view.Render(c.pageLocked())
}
