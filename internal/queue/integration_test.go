//go:build integration

package queue

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"trendwatch/internal/domain"
	"trendwatch/internal/testutil"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "ex-" + name,
		RoutingKey: "rk-" + name,
		QueueName:  "q-" + name,
		Prefetch:   10,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewPublisher(s.config("conn"), s.logger)
	s.Require().NoError(err)
	s.NoError(pub.Close())
}

type collectingHandler struct {
	mu     sync.Mutex
	events []domain.IngestionEvent
	done   chan struct{}
	want   int
}

func (h *collectingHandler) HandleBatch(_ context.Context, events []domain.IngestionEvent) (*domain.BatchStats, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, events...)
	if len(h.events) >= h.want {
		close(h.done)
	}
	return &domain.BatchStats{Received: len(events)}, nil
}

func (s *RabbitMQIntegrationSuite) TestPublishAndConsumeBatch() {
	cfg := s.config("roundtrip")

	pub, err := NewPublisher(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	cons, err := NewConsumer(cfg, 5, 200*time.Millisecond, s.logger)
	s.Require().NoError(err)
	defer cons.Close()

	now := time.Now().UTC().Truncate(time.Second)
	events := []domain.IngestionEvent{
		{Source: domain.SourceFeed, SourceID: "a", Title: testutil.Ptr("First"), Content: "go", URL: "https://e.com/a", CreatedAt: now, FetchedAt: now},
		{Source: domain.SourceFeed, SourceID: "b", Content: "rust", URL: "https://e.com/b", CreatedAt: now, FetchedAt: now},
		{Source: domain.SourceFeed, SourceID: "c", Content: "zig", URL: "https://e.com/c", CreatedAt: now, FetchedAt: now,
			Metadata: map[string]string{"feedId": "f1"}},
	}
	s.Require().NoError(pub.Publish(s.ctx, events))

	handler := &collectingHandler{done: make(chan struct{}), want: len(events)}
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	go func() { _ = cons.Run(ctx, handler) }()

	select {
	case <-handler.done:
	case <-ctx.Done():
		s.FailNow("timed out waiting for events")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	s.Require().Len(handler.events, 3)
	s.Equal("First", *handler.events[0].Title)
	s.Equal(now, handler.events[0].CreatedAt)
	s.Equal("f1", handler.events[2].Metadata["feedId"])
}
