package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/config"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/diagnostics"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/statsd"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/observability/tracing"
)

const redisPingTimeout = 3 * time.Second

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink *statsd.Client
	Diagnostics diagnostics.Sink
	Redis       redis.UniversalClient
	shutdown    tracing.ShutdownFunc
}

// Close flushes spans and releases the statsd and Redis connections.
func (o ObservabilityContainer) Close(ctx context.Context) error {
	var errs []error
	if o.shutdown != nil {
		errs = append(errs, o.shutdown(ctx))
	}
	if o.MetricsSink != nil {
		errs = append(errs, o.MetricsSink.Close())
	}
	if o.Redis != nil {
		errs = append(errs, o.Redis.Close())
	}
	return errors.Join(errs...)
}

// buildObservability configures metrics, tracing and diagnostics. A sink that
// cannot be reached is logged and skipped; only tracing setup errors are fatal.
func buildObservability(ctx context.Context, logger *slog.Logger, cfg config.ObservabilityConfig) (ObservabilityContainer, error) {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var out ObservabilityContainer

	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			out.MetricsSink = client
		}
	}

	sinks := diagnostics.Multi{diagnostics.LogSink{Logger: obsLogger}}
	if out.MetricsSink != nil {
		sinks = append(sinks, diagnostics.MetricsSink{Sink: out.MetricsSink})
	}
	if cfg.Diagnostics.RedisEnabled {
		if sink, client, err := buildRedisDiagnostics(ctx, cfg.Diagnostics); err != nil {
			obsLogger.Error("diagnostics stream disabled", "error", err)
		} else {
			out.Redis = client
			sinks = append(sinks, sink)
		}
	}
	out.Diagnostics = sinks

	shutdown, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		_ = out.Close(ctx)
		return ObservabilityContainer{}, fmt.Errorf("setup tracing: %w", err)
	}
	out.shutdown = shutdown
	return out, nil
}

func buildRedisDiagnostics(ctx context.Context, cfg config.ObservabilityDiagnosticsConfig) (*diagnostics.RedisStreamSink, redis.UniversalClient, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	sink, err := diagnostics.NewRedisStreamSink(diagnostics.RedisStreamConfig{
		Client: client,
		Stream: cfg.Stream,
		MaxLen: cfg.MaxLen,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return sink, client, nil
}

// redisOptions accepts either host:port or a redis:// URL.
func redisOptions(cfg config.ObservabilityDiagnosticsConfig) (*redis.Options, error) {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("redis diagnostics configuration requires an address")
	}

	if isRedisURL(addr) {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		if opt.Password == "" {
			opt.Password = cfg.RedisPassword
		}
		return opt, nil
	}

	return &redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}
