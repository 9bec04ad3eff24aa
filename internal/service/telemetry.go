package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/diagnostics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/metrics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/statsd"
)

// Telemetry groups the optional observability sinks shared by the controller
// components. The zero value logs to slog.Default and drops metrics.
type Telemetry struct {
	Logger      *slog.Logger
	Metrics     statsd.Sink
	Diagnostics diagnostics.Sink
}

func (t Telemetry) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

// operation emits the outcome metric for op.
func (t Telemetry) operation(op, result string, start time.Time, err error) {
	var d time.Duration
	if !start.IsZero() {
		d = time.Since(start)
	}
	metrics.EmitOperation(t.Metrics, metrics.OperationMetric{
		Operation: op,
		Result:    result,
		Duration:  d,
		Err:       err,
	})
}

// report sends a background failure to the diagnostics sink. Failures of the
// sink itself are only logged.
func (t Telemetry) report(ctx context.Context, op string, err error, meta map[string]string) {
	if t.Diagnostics == nil {
		t.logger().WarnContext(ctx, "controller diagnostic", "operation", op, "error", err)
		return
	}
	if sinkErr := t.Diagnostics.Report(ctx, diagnostics.New(op, err, meta)); sinkErr != nil {
		t.logger().WarnContext(ctx, "failed to report diagnostic", "operation", op, "error", sinkErr)
	}
}
