package diagnostics

import (
	"context"
	"log/slog"
)

// LogSink writes diagnostics to a structured logger at error level.
type LogSink struct {
	Logger *slog.Logger
}

// Report implements the Sink interface.
func (s LogSink) Report(ctx context.Context, d Diagnostic) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{
		"operation", d.Operation,
		"error", d.Error,
		"error_class", d.ErrorClass,
	}
	for k, v := range d.Metadata {
		attrs = append(attrs, k, v)
	}
	logger.ErrorContext(ctx, "controller diagnostic", attrs...)
	return nil
}
