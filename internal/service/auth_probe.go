package service

import (
	"context"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

// AuthProbeOptions groups dependencies for AuthProbe.
type AuthProbeOptions struct {
	API         ports.RosterAPI  // Required
	Credentials *CredentialCache // Required
	Telemetry   Telemetry        // Optional
}

// AuthProbe asks the server which session the cached credentials map to.
type AuthProbe struct {
	api   ports.RosterAPI
	creds *CredentialCache
	tel   Telemetry
}

// NewAuthProbe constructs an AuthProbe.
func NewAuthProbe(opts AuthProbeOptions) *AuthProbe {
	if opts.API == nil {
		panic("RosterAPI is required")
	}
	if opts.Credentials == nil {
		panic("CredentialCache is required")
	}
	return &AuthProbe{api: opts.API, creds: opts.Credentials, tel: opts.Telemetry}
}

// CheckAuth returns the current session. It fails closed: any transport,
// status or decode failure yields the anonymous session and is reported as a
// diagnostic instead of being returned.
func (p *AuthProbe) CheckAuth(ctx context.Context) auth.Session {
	start := time.Now()
	header, _ := p.creds.AuthHeader()

	sess, err := p.api.CheckAuth(ctx, header)
	if err != nil {
		p.tel.operation(metrics.OpCheckAuth, metrics.ResultError, start, err)
		p.tel.report(ctx, metrics.OpCheckAuth, err, nil)
		return auth.Anonymous()
	}

	p.tel.operation(metrics.OpCheckAuth, metrics.ResultSuccess, start, nil)
	if !sess.Authenticated {
		return auth.Anonymous()
	}
	return sess
}
