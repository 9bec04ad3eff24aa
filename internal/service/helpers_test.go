package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/diagnostics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/statsd"
)

const jdoeHeader = "Basic amRvZTpzZWNyZXQ="

type diagRecorder struct {
	mu  sync.Mutex
	got []diagnostics.Diagnostic
}

func (r *diagRecorder) Report(_ context.Context, d diagnostics.Diagnostic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, d)
	return nil
}

func (r *diagRecorder) all() []diagnostics.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]diagnostics.Diagnostic(nil), r.got...)
}

func newTestTelemetry() (Telemetry, *statsd.Recorder, *diagRecorder) {
	rec := &statsd.Recorder{}
	diags := &diagRecorder{}
	return Telemetry{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:     rec,
		Diagnostics: diags,
	}, rec, diags
}

// resultTags returns the "result" tag of every controller.operation count for op.
func resultTags(rec *statsd.Recorder, op string) []string {
	var out []string
	for _, m := range rec.Named("controller.operation") {
		if m.Tags["operation"] == op {
			out = append(out, m.Tags["result"])
		}
	}
	return out
}
