package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStreamConfig configures RedisStreamSink.
type RedisStreamConfig struct {
	Client redis.UniversalClient
	Stream string
	MaxLen int64
}

// RedisStreamSink appends diagnostics to a capped Redis stream so operators can
// inspect failures from many consoles in one place.
type RedisStreamSink struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisStreamSink validates cfg and returns a sink.
func NewRedisStreamSink(cfg RedisStreamConfig) (*RedisStreamSink, error) {
	if cfg.Client == nil {
		return nil, errors.New("redis client is required")
	}
	stream := strings.TrimSpace(cfg.Stream)
	if stream == "" {
		return nil, errors.New("redis stream name is required")
	}
	maxLen := cfg.MaxLen
	if maxLen <= 0 {
		maxLen = 1000
	}
	return &RedisStreamSink{client: cfg.Client, stream: stream, maxLen: maxLen}, nil
}

// Report implements the Sink interface.
func (s *RedisStreamSink) Report(ctx context.Context, d Diagnostic) error {
	values := map[string]any{
		"operation":   d.Operation,
		"error":       d.Error,
		"error_class": d.ErrorClass,
		"occurred_at": d.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	for k, v := range d.Metadata {
		values["meta."+k] = v
	}

	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
