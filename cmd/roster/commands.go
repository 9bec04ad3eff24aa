package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/bootstrap"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/service"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/htmlview"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/terminal"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

type loginOptions struct {
	Username string
	Password string
}

func (o *loginOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.Username, "username", "", "Log in as this operator before running the command")
	fs.StringVar(&o.Password, "password", "", "Password for --username (defaults to $ROSTER_PASSWORD)")
}

func (o *loginOptions) resolve() {
	if o.Password == "" {
		o.Password = os.Getenv("ROSTER_PASSWORD")
	}
}

type snapshotOptions struct {
	Login  loginOptions
	Format string
	Out    string
}

// startApp wires the controller, starts it and optionally logs in.
func startApp(cmdCtx *commandContext, view ports.View, login loginOptions) (*bootstrap.App, error) {
	app, err := bootstrap.NewApp(cmdCtx.Ctx, bootstrap.AppDeps{
		Config: &cmdCtx.Config,
		Logger: cmdCtx.Logger,
		View:   view,
	})
	if err != nil {
		return nil, err
	}
	if err := app.Controller.Start(cmdCtx.Ctx); err != nil {
		cmdCtx.Logger.WarnContext(cmdCtx.Ctx, "initial refresh failed", "error", err)
	}

	if login.Username == "" {
		return app, nil
	}
	if err := loginAs(cmdCtx, app.Controller, login); err != nil {
		_ = app.Close(cmdCtx.Ctx)
		return nil, err
	}
	return app, nil
}

func loginAs(cmdCtx *commandContext, ctrl *service.Controller, login loginOptions) error {
	if err := ctrl.Dispatch(cmdCtx.Ctx, service.EventIconClicked{}); err != nil {
		return fmt.Errorf("open login: %w", err)
	}
	err := ctrl.Dispatch(cmdCtx.Ctx, service.EventLoginSubmitted{Username: login.Username, Password: login.Password})
	if err != nil {
		return fmt.Errorf("login as %s: %w", login.Username, err)
	}
	return nil
}

func runList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var login loginOptions
	login.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	login.resolve()

	app, err := startApp(cmdCtx, nil, login)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(cmdCtx.Ctx) }()

	return terminal.Write(cmdCtx.Stdout, app.Controller.Page())
}

func runSnapshot(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts snapshotOptions
	opts.Login.register(fs)
	fs.StringVar(&opts.Format, "format", "text", "Output format: text or html")
	fs.StringVar(&opts.Out, "out", "", "Write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts.Login.resolve()

	write, err := snapshotWriter(opts.Format, cmdCtx)
	if err != nil {
		return err
	}

	app, err := startApp(cmdCtx, nil, opts.Login)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(cmdCtx.Ctx) }()

	out := cmdCtx.Stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.Out, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	return write(out, app.Controller.Page())
}

type pageWriter func(w io.Writer, page viewmodel.Page) error

func snapshotWriter(format string, cmdCtx *commandContext) (pageWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return terminal.Write, nil
	case "html":
		r, err := htmlview.NewRenderer(htmlview.RendererConfig{Logger: cmdCtx.Logger})
		if err != nil {
			return nil, err
		}
		return r.Write, nil
	default:
		return nil, errors.New("--format must be text or html")
	}
}
