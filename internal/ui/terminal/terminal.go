// Package terminal renders roster console pages as plain text.
package terminal

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

// Write prints page to w.
func Write(w io.Writer, page viewmodel.Page) error {
	p := &printer{w: w}

	p.header(page.Header)
	if page.Notice != nil {
		p.linef("")
		p.linef("NOTICE: %s", page.Notice.Text)
		p.linef("(dismiss to continue)")
	}
	if page.Feedback != nil {
		p.linef("")
		p.linef("%s %s", badge(page.Feedback), page.Feedback.Text)
	}
	p.dialogs(page.Login, page.Logout)
	p.linef("")
	p.roster(page.Roster)
	p.signup(page.Signup)
	return p.err
}

// View renders every page to an io.Writer. Write errors are logged, since
// ports.View has no error return.
type View struct {
	mu     sync.Mutex
	w      io.Writer
	logger *slog.Logger
}

var _ ports.View = (*View)(nil)

// NewView returns a View writing to w. logger may be nil.
func NewView(w io.Writer, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{w: w, logger: logger}
}

// Render implements ports.View.
func (v *View) Render(page viewmodel.Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := Write(v.w, page); err != nil {
		v.logger.Warn("failed to render page", "error", err)
	}
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) header(h viewmodel.Header) {
	if h.IsAuthenticated {
		p.linef("Signed in as %s", h.UserStatus)
		return
	}
	p.linef("Not signed in")
}

func (p *printer) dialogs(login viewmodel.LoginDialog, logout viewmodel.LogoutDialog) {
	switch {
	case login.Open:
		p.linef("")
		p.linef("[login] username: %s", login.Username)
		if login.Submitting {
			p.linef("[login] signing in...")
		}
		if login.Feedback != nil {
			p.linef("[login] %s %s", badge(login.Feedback), login.Feedback.Text)
		}
	case logout.Open:
		p.linef("")
		p.linef("[logout] Log out %s? (confirm/cancel)", logout.Username)
	}
}

func (p *printer) roster(r viewmodel.RosterView) {
	switch {
	case r.Loading:
		p.linef("%s", viewmodel.LoadingText)
		return
	case r.Error != "":
		p.linef("%s", r.Error)
		return
	}

	if p.err != nil {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ACTIVITY\tSCHEDULE\tSPOTS LEFT")
	for _, c := range r.Activities {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Name, c.Schedule, c.SpotsLeft)
	}
	p.err = tw.Flush()

	for _, c := range r.Activities {
		p.linef("")
		p.linef("%s", c.Name)
		if desc := strings.TrimSpace(c.Description); desc != "" {
			p.linef("  %s", desc)
		}
		p.linef("  Participants (%d/%d):", len(c.Participants), c.MaxParticipants)
		if !c.HasParticipants() {
			p.linef("    %s", viewmodel.EmptyParticipantsText)
			continue
		}
		for _, row := range c.Participants {
			if row.CanRemove {
				p.linef("    - %s [remove]", row.Email)
				continue
			}
			p.linef("    - %s", row.Email)
		}
	}
}

func (p *printer) signup(f viewmodel.SignupForm) {
	if !f.Visible {
		return
	}
	p.linef("")
	p.linef("Sign up a student: %s", strings.Join(f.Options, ", "))
	if f.Activity != "" || f.Email != "" {
		p.linef("  draft: %s -> %s", f.Email, f.Activity)
	}
}

func badge(f *viewmodel.FeedbackView) string {
	if f.IsError() {
		return "[error]"
	}
	return "[ok]"
}
