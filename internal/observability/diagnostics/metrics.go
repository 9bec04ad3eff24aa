package diagnostics

import (
	"context"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/statsd"
)

// MetricsSink counts diagnostics per operation and error class.
type MetricsSink struct {
	Sink statsd.Sink
}

// Report implements the Sink interface.
func (s MetricsSink) Report(_ context.Context, d Diagnostic) error {
	if s.Sink == nil {
		return nil
	}
	tags := map[string]string{"operation": d.Operation}
	if d.ErrorClass != "" {
		tags["error_class"] = d.ErrorClass
	}
	s.Sink.Count("controller.diagnostic", 1, tags)
	return nil
}
