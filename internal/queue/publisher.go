package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"trendwatch/internal/domain"
	"trendwatch/internal/metrics"
)

// Publisher sends ingestion events as persistent JSON messages and waits for
// the broker to confirm each one.
type Publisher struct {
	*connection
	logger *slog.Logger
}

func NewPublisher(cfg Config, logger *slog.Logger) (*Publisher, error) {
	logger = logger.With("component", "publisher")
	c, err := dial(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := c.channel.Confirm(false); err != nil {
		c.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	return &Publisher{connection: c, logger: logger}, nil
}

func (p *Publisher) Publish(ctx context.Context, events []domain.IngestionEvent) error {
	for i := range events {
		if err := p.publish(ctx, &events[i]); err != nil {
			return err
		}
	}
	metrics.EventsPublishedTotal.Add(float64(len(events)))
	p.logger.Debug("published events", "count", len(events))
	return nil
}

func (p *Publisher) publish(ctx context.Context, ev *domain.IngestionEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	confirm, err := p.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		p.cfg.Exchange,
		p.cfg.RoutingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    string(ev.Source) + ":" + ev.SourceID,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event %s: %w", ev.SourceID, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("confirm event %s: %w", ev.SourceID, err)
	}
	if !acked {
		return fmt.Errorf("event %s rejected by broker", ev.SourceID)
	}
	return nil
}
