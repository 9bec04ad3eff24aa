package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/service"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/terminal"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

const shellHelp = `Commands:
  icon                          click the user icon (login form or logout confirmation)
  login <username> <password>   submit the login form
  cancel                        close the login form
  confirm-logout                confirm logging out
  cancel-logout                 close the logout confirmation
  signup <activity> <email>     sign a student up
  unregister <activity> <email> remove a student
  refresh                       reload the roster
  dismiss                       acknowledge the blocking notice
  show                          print the current page
  help                          print this help
  quit                          leave the shell
Quote arguments containing spaces: signup "Chess Club" bob@example.com
`

type shellAction int

const (
	actionEvent shellAction = iota
	actionShow
	actionHelp
	actionQuit
	actionNone
)

type shellCommand struct {
	action shellAction
	event  service.Event
}

// splitArgs splits a line on whitespace, honouring single and double quotes.
// Inside double quotes a backslash escapes the next character.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '"' && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if quote != 0 || escaped {
		return nil, errors.New("unterminated quote")
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}

func parseLine(line string) (shellCommand, error) {
	args, err := splitArgs(strings.TrimSpace(line))
	if err != nil {
		return shellCommand{}, err
	}
	if len(args) == 0 {
		return shellCommand{action: actionNone}, nil
	}

	name, rest := strings.ToLower(args[0]), args[1:]
	want := func(n int, usage string) error {
		if len(rest) != n {
			return fmt.Errorf("usage: %s", usage)
		}
		return nil
	}
	event := func(ev service.Event, n int, usage string) (shellCommand, error) {
		if err := want(n, usage); err != nil {
			return shellCommand{}, err
		}
		return shellCommand{action: actionEvent, event: ev}, nil
	}

	switch name {
	case "icon":
		return event(service.EventIconClicked{}, 0, "icon")
	case "login":
		if err := want(2, "login <username> <password>"); err != nil {
			return shellCommand{}, err
		}
		return shellCommand{action: actionEvent, event: service.EventLoginSubmitted{Username: rest[0], Password: rest[1]}}, nil
	case "cancel":
		return event(service.EventLoginCancelled{}, 0, "cancel")
	case "confirm-logout":
		return event(service.EventLogoutConfirmed{}, 0, "confirm-logout")
	case "cancel-logout":
		return event(service.EventLogoutCancelled{}, 0, "cancel-logout")
	case "signup":
		if err := want(2, "signup <activity> <email>"); err != nil {
			return shellCommand{}, err
		}
		return shellCommand{action: actionEvent, event: service.EventSignupSubmitted{Activity: rest[0], Email: rest[1]}}, nil
	case "unregister":
		if err := want(2, "unregister <activity> <email>"); err != nil {
			return shellCommand{}, err
		}
		return shellCommand{action: actionEvent, event: service.EventUnregisterClicked{Activity: rest[0], Email: rest[1]}}, nil
	case "refresh":
		return event(service.EventRefreshRequested{}, 0, "refresh")
	case "dismiss":
		return event(service.EventNoticeDismissed{}, 0, "dismiss")
	case "show":
		return shellCommand{action: actionShow}, nil
	case "help", "?":
		return shellCommand{action: actionHelp}, nil
	case "quit", "exit":
		return shellCommand{action: actionQuit}, nil
	default:
		return shellCommand{}, fmt.Errorf("unknown command %q (try help)", name)
	}
}

// pageQueue hands rendered pages to the printer goroutine so Render never
// blocks the controller. When the printer falls behind, older pages are
// replaced by the newest one.
type pageQueue struct {
	ch chan viewmodel.Page
}

var _ ports.View = (*pageQueue)(nil)

func newPageQueue() *pageQueue {
	return &pageQueue{ch: make(chan viewmodel.Page, 1)}
}

func (q *pageQueue) Render(page viewmodel.Page) {
	for {
		select {
		case q.ch <- page:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

func runShell(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var login loginOptions
	login.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	login.resolve()

	queue := newPageQueue()
	app, err := startApp(cmdCtx, queue, login)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(cmdCtx.Ctx) }()

	if err := writef(cmdCtx.Stdout, "%s", shellHelp); err != nil {
		return err
	}
	return shellSession(cmdCtx.Ctx, app.Controller, cmdCtx.Stdin, cmdCtx.Stdout, queue)
}

// shellSession dispatches one command per input line until quit, EOF or
// cancellation. Pages rendered by the controller are printed as they arrive.
func shellSession(ctx context.Context, ctrl *service.Controller, in io.Reader, out io.Writer, queue *pageQueue) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sw := &syncWriter{w: out}

	g, gctx := errgroup.WithContext(sessionCtx)
	g.Go(func() error {
		for {
			select {
			case page := <-queue.ch:
				if err := sw.do(func(w io.Writer) error { return terminal.Write(w, page) }); err != nil {
					return err
				}
			case <-gctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer cancel()
		for {
			var (
				line string
				ok   bool
			)
			select {
			case line, ok = <-lines:
			case <-gctx.Done():
				return nil
			}
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			quit, err := handleLine(gctx, ctrl, line, sw)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	})
	return g.Wait()
}

// handleLine runs one shell line. Only output failures are returned; command
// errors are printed and the session continues.
func handleLine(ctx context.Context, ctrl *service.Controller, line string, out *syncWriter) (bool, error) {
	cmd, err := parseLine(line)
	if err != nil {
		return false, out.printf("error: %v\n", err)
	}

	switch cmd.action {
	case actionNone:
		return false, nil
	case actionQuit:
		return true, nil
	case actionHelp:
		return false, out.printf("%s", shellHelp)
	case actionShow:
		return false, out.do(func(w io.Writer) error { return terminal.Write(w, ctrl.Page()) })
	}

	if err := ctrl.Dispatch(ctx, cmd.event); err != nil {
		if errors.Is(err, service.ErrNoticePending) {
			return false, out.printf("error: %v (type dismiss)\n", err)
		}
		return false, out.printf("error: %v\n", err)
	}
	return false, nil
}
