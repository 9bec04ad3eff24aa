package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

// RosterSynchronizerOptions groups dependencies for RosterSynchronizer.
type RosterSynchronizerOptions struct {
	API       ports.RosterAPI // Required
	Telemetry Telemetry       // Optional
}

// RosterSynchronizer fetches the full roster and turns it into a view. Every
// fetch is numbered; only the latest issued fetch may be rendered.
type RosterSynchronizer struct {
	api    ports.RosterAPI
	tel    Telemetry
	latest atomic.Uint64
}

// RosterFetch is the outcome of one numbered fetch.
type RosterFetch struct {
	Seq    uint64
	Roster roster.Roster
	Err    error
}

// NewRosterSynchronizer constructs a RosterSynchronizer.
func NewRosterSynchronizer(opts RosterSynchronizerOptions) *RosterSynchronizer {
	if opts.API == nil {
		panic("RosterAPI is required")
	}
	return &RosterSynchronizer{api: opts.API, tel: opts.Telemetry}
}

// Fetch issues a new numbered fetch. It supersedes every earlier fetch.
// Failures are logged and reported here, before the caller decides whether
// the result is still current.
func (s *RosterSynchronizer) Fetch(ctx context.Context) RosterFetch {
	seq := s.latest.Add(1)
	start := time.Now()

	r, err := s.api.ListActivities(ctx)
	if err != nil {
		s.tel.operation(metrics.OpRefresh, metrics.ResultError, start, err)
		s.tel.logger().ErrorContext(ctx, "failed to fetch activities", "error", err)
		s.tel.report(ctx, metrics.OpRefresh, err, nil)
		return RosterFetch{Seq: seq, Err: err}
	}
	s.tel.operation(metrics.OpRefresh, metrics.ResultSuccess, start, nil)
	return RosterFetch{Seq: seq, Roster: r}
}

// IsCurrent reports whether seq is the latest issued fetch.
func (s *RosterSynchronizer) IsCurrent(seq uint64) bool {
	return s.latest.Load() == seq
}

// Render converts a fetch into the roster view for session. A failed fetch
// renders the terminal error view; no part of an earlier roster survives.
func (s *RosterSynchronizer) Render(f RosterFetch, session auth.Session) viewmodel.RosterView {
	if f.Err != nil {
		return viewmodel.RosterError()
	}
	return viewmodel.RenderRoster(f.Roster, session)
}

// Discard records that a superseded fetch was dropped.
func (s *RosterSynchronizer) Discard(f RosterFetch) {
	s.tel.operation(metrics.OpRefresh, metrics.ResultStale, time.Time{}, f.Err)
}
