package metrics

import (
	"time"

	obserrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultRejected = "rejected"
	ResultBlocked  = "blocked"
	ResultStale    = "stale"
)

// Operation names used as the "operation" tag.
const (
	OpCheckAuth  = "check_auth"
	OpLogin      = "login"
	OpRefresh    = "refresh"
	OpSignup     = "signup"
	OpUnregister = "unregister"
)

// OperationMetric captures the outcome of one controller operation.
type OperationMetric struct {
	Operation string
	Result    string
	Duration  time.Duration
	Err       error
}

// EmitOperation emits standardised controller operation metrics.
func EmitOperation(sink statsd.Sink, in OperationMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"operation": in.Operation,
		"result":    in.Result,
	}

	if in.Err != nil && in.Result != ResultSuccess {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("controller.operation", 1, tags)

	if in.Duration > 0 {
		sink.Timing("controller.operation.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
