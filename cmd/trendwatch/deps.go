package main

import (
	"context"
	"fmt"

	"github.com/codeGROOVE-dev/retry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"trendwatch/internal/feed"
	"trendwatch/internal/queue"
	"trendwatch/internal/service"
	"trendwatch/internal/storage/postgres"
	"trendwatch/internal/storage/redis"
)

// dial retries connect until it succeeds or the startup attempts run out.
func dial[T any](ctx context.Context, a *app, name string, connect func() (T, error)) (T, error) {
	var out T
	err := retry.Do(
		func() error {
			v, err := connect()
			if err != nil {
				return err
			}
			out = v
			return nil
		},
		retry.Attempts(uint(a.cfg.Startup.ConnectAttempts)),
		retry.Delay(a.cfg.Startup.ConnectDelay),
		retry.MaxDelay(8*a.cfg.Startup.ConnectDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			a.logger.Warn("dependency not ready, retrying", "dependency", name, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return out, fmt.Errorf("connect to %s: %w", name, err)
	}
	a.logger.Info("connected", "dependency", name)
	return out, nil
}

func openDB(ctx context.Context, a *app) (*sqlx.DB, error) {
	return dial(ctx, a, "postgres", func() (*sqlx.DB, error) {
		return sqlx.ConnectContext(ctx, "postgres", a.cfg.Database.DSN())
	})
}

func openRedis(ctx context.Context, a *app) (*redis.KV, error) {
	return dial(ctx, a, "redis", func() (*redis.KV, error) {
		return redis.New(ctx, redis.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
	})
}

func queueConfig(a *app) queue.Config {
	return queue.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
		Prefetch:   a.cfg.RabbitMQ.Prefetch,
	}
}

func openPublisher(ctx context.Context, a *app) (*queue.Publisher, error) {
	return dial(ctx, a, "rabbitmq", func() (*queue.Publisher, error) {
		return queue.NewPublisher(queueConfig(a), a.logger)
	})
}

func openConsumer(ctx context.Context, a *app) (*queue.Consumer, error) {
	return dial(ctx, a, "rabbitmq", func() (*queue.Consumer, error) {
		return queue.NewConsumer(queueConfig(a), a.cfg.Matcher.BatchSize, a.cfg.Matcher.BatchWait, a.logger)
	})
}

// newFeedProcessor wires the ingestion pipeline: feed client, Redis
// checkpoints, RabbitMQ sink and the Postgres source store.
func newFeedProcessor(a *app, db *sqlx.DB, kv *redis.KV, pub *queue.Publisher) (*service.FeedProcessor, *feed.Client, *postgres.SourceConfigStore) {
	client := feed.NewClient(feed.ClientConfig{
		UserAgent:      a.cfg.Feed.UserAgent,
		Timeout:        a.cfg.Feed.Timeout,
		MaxAttempts:    a.cfg.Feed.Retry.MaxAttempts,
		InitialBackoff: a.cfg.Feed.Retry.InitialBackoff,
		MaxBackoff:     a.cfg.Feed.Retry.MaxBackoff,
	}, a.logger)
	sources := postgres.NewSourceConfigStore(db)
	ingestion := service.NewIngestionService(client, service.NewCheckpointStore(kv), pub, a.logger)
	return service.NewFeedProcessor(sources, ingestion, a.logger), client, sources
}
