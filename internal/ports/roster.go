package ports

// Package ports defines the interfaces (hexagonal ports) the roster controller
// depends on. Implementations live in internal/adapters and internal/ui;
// orchestration in internal/service.

import (
	"context"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

// RosterAPI is the activities server contract. authHeader is a complete
// Authorization header value, or empty to send none.
//
// Non-2xx responses are returned as server_rejection errors carrying the
// status and server detail; failures without a usable response are
// transport_failure errors.
type RosterAPI interface {
	// CheckAuth reports the session the server associates with authHeader.
	CheckAuth(ctx context.Context, authHeader string) (auth.Session, error)
	// Login verifies credentials. A nil error means the server answered 2xx.
	Login(ctx context.Context, authHeader string) error
	// ListActivities returns the full roster in server order.
	ListActivities(ctx context.Context) (roster.Roster, error)
	// Signup registers email for activity and returns the server message.
	Signup(ctx context.Context, authHeader, activity, email string) (string, error)
	// Unregister removes email from activity and returns the server message.
	Unregister(ctx context.Context, authHeader, activity, email string) (string, error)
	// ForgetSession drops any server-side session state held by the client (cookies).
	ForgetSession()
}

// View displays page snapshots. Render is called with the controller's state
// lock held and must not call back into the controller.
type View interface {
	Render(page viewmodel.Page)
}

// ViewFunc adapts a function to View.
type ViewFunc func(page viewmodel.Page)

// Render implements View.
func (f ViewFunc) Render(page viewmodel.Page) { f(page) }

// Scheduler provides the clock and delayed callbacks used for feedback expiry.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}
