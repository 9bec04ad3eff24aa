// Package diagnostics receives background failures that are never shown to the
// operator as blocking errors (fail-closed auth probe, roster fetch failures,
// mutation transport errors).
package diagnostics

import (
	"context"
	"errors"
	"time"

	obserrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/errors"
)

// Diagnostic is one reported failure.
type Diagnostic struct {
	Operation  string
	Error      string
	ErrorClass string
	OccurredAt time.Time
	Metadata   map[string]string
}

// New builds a diagnostic for err with its class filled in.
func New(operation string, err error, metadata map[string]string) Diagnostic {
	d := Diagnostic{
		Operation:  operation,
		OccurredAt: time.Now().UTC(),
		Metadata:   metadata,
	}
	if err != nil {
		d.Error = err.Error()
		d.ErrorClass = obserrors.Classify(err)
	}
	return d
}

// Sink describes a destination capable of consuming diagnostics.
type Sink interface {
	Report(ctx context.Context, d Diagnostic) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, d Diagnostic) error

// Report implements the Sink interface.
func (f SinkFunc) Report(ctx context.Context, d Diagnostic) error {
	if f == nil {
		return nil
	}
	return f(ctx, d)
}

// Multi fans a diagnostic out to every sink and joins their errors.
type Multi []Sink

// Report implements the Sink interface.
func (m Multi) Report(ctx context.Context, d Diagnostic) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Report(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
