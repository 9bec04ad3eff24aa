package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/config"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/adapters/clock"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/adapters/rosterapi"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/service"
)

// AppDeps groups what NewApp needs from the caller.
type AppDeps struct {
	Config *config.AppConfig // Required
	Logger *slog.Logger      // Optional: defaults to slog.Default()
	View   ports.View        // Optional
}

// App is a fully wired controller plus the resources it owns.
type App struct {
	Controller    *service.Controller
	API           *rosterapi.Client
	Observability ObservabilityContainer
	logger        *slog.Logger
}

// NewApp builds the observability sinks, the roster API client and the
// controller. The controller is not started.
func NewApp(ctx context.Context, deps AppDeps) (*App, error) {
	if deps.Config == nil {
		return nil, errors.New("config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	obs, err := buildObservability(ctx, logger, cfg.Observability)
	if err != nil {
		return nil, err
	}

	api, err := rosterapi.NewClient(rosterapi.Config{
		BaseURL:    cfg.Server.BaseURL,
		Timeout:    cfg.Server.Timeout,
		DetailExpr: cfg.Server.DetailExpr,
		Logger:     logger,
	})
	if err != nil {
		_ = obs.Close(ctx)
		return nil, fmt.Errorf("create roster client: %w", err)
	}

	tel := service.Telemetry{Logger: logger, Diagnostics: obs.Diagnostics}
	if obs.MetricsSink != nil {
		tel.Metrics = obs.MetricsSink
	}

	ctrl := service.NewController(service.ControllerOptions{
		API:  api,
		View: deps.View,
		Runtime: service.ControllerRuntime{
			Scheduler: clock.System{},
			Timing: service.FeedbackTiming{
				Mutation: cfg.Feedback.MutationTTL,
				Login:    cfg.Feedback.LoginTTL,
			},
			Telemetry: tel,
		},
	})

	logger.InfoContext(ctx, "roster controller ready",
		"base_url", cfg.Server.BaseURL,
		"metrics", obs.MetricsSink.Enabled(),
		"diagnostics_stream", obs.Redis != nil,
	)

	return &App{Controller: ctrl, API: api, Observability: obs, logger: logger}, nil
}

// Close stops the controller and releases observability resources.
func (a *App) Close(ctx context.Context) error {
	a.Controller.Close()
	if err := a.Observability.Close(ctx); err != nil {
		a.logger.WarnContext(ctx, "observability shutdown failed", "error", err)
		return err
	}
	return nil
}
