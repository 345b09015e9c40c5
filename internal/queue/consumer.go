package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"trendwatch/internal/domain"
)

// BatchHandler processes one batch of events. A returned error means nothing
// in the batch is considered done.
type BatchHandler interface {
	HandleBatch(ctx context.Context, events []domain.IngestionEvent) (*domain.BatchStats, error)
}

var errMalformed = errors.New("malformed event")

// Consumer reads ingestion events and hands them to a BatchHandler in groups
// of up to batchSize, flushing a partial group after batchWait.
type Consumer struct {
	*connection
	batchSize int
	batchWait time.Duration
	logger    *slog.Logger
}

func NewConsumer(cfg Config, batchSize int, batchWait time.Duration, logger *slog.Logger) (*Consumer, error) {
	logger = logger.With("component", "consumer")
	c, err := dial(cfg, logger)
	if err != nil {
		return nil, err
	}
	prefetch := cfg.Prefetch
	if prefetch < batchSize {
		prefetch = batchSize
	}
	if err := c.channel.Qos(prefetch, 0, false); err != nil {
		c.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}
	return &Consumer{connection: c, batchSize: batchSize, batchWait: batchWait, logger: logger}, nil
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context, handler BatchHandler) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.cfg.QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.Info("consuming", "queue", c.cfg.QueueName, "batch_size", c.batchSize, "batch_wait", c.batchWait)

	for {
		batch, open := collect(ctx, deliveries, c.batchSize, c.batchWait)
		if len(batch) > 0 {
			c.process(ctx, batch, handler)
		}
		if !open {
			if ctx.Err() != nil {
				return nil
			}
			return errors.New("delivery channel closed")
		}
	}
}

// collect blocks for the first delivery, then gathers more until size is
// reached or wait elapses. open is false once deliveries is closed or ctx is
// done.
func collect(ctx context.Context, deliveries <-chan amqp.Delivery, size int, wait time.Duration) (batch []amqp.Delivery, open bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case d, ok := <-deliveries:
		if !ok {
			return nil, false
		}
		batch = append(batch, d)
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	for len(batch) < size {
		select {
		case <-ctx.Done():
			return batch, false
		case <-timer.C:
			return batch, true
		case d, ok := <-deliveries:
			if !ok {
				return batch, false
			}
			batch = append(batch, d)
		}
	}
	return batch, true
}

func (c *Consumer) process(ctx context.Context, batch []amqp.Delivery, handler BatchHandler) {
	events := make([]domain.IngestionEvent, 0, len(batch))
	valid := make([]amqp.Delivery, 0, len(batch))

	for _, d := range batch {
		ev, err := decode(d.Body)
		if err != nil {
			c.logger.Warn("rejecting message", "message_id", d.MessageId, "error", err)
			if rerr := d.Reject(false); rerr != nil {
				c.logger.Error("reject failed", "error", rerr)
			}
			continue
		}
		events = append(events, ev)
		valid = append(valid, d)
	}
	if len(events) == 0 {
		return
	}

	if _, err := handler.HandleBatch(ctx, events); err != nil {
		c.logger.Error("batch failed, requeueing", "events", len(events), "error", err)
		for _, d := range valid {
			if nerr := d.Nack(false, true); nerr != nil {
				c.logger.Error("nack failed", "error", nerr)
			}
		}
		return
	}

	for _, d := range valid {
		if aerr := d.Ack(false); aerr != nil {
			c.logger.Error("ack failed", "error", aerr)
		}
	}
}

func decode(body []byte) (domain.IngestionEvent, error) {
	var ev domain.IngestionEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("%w: %v", errMalformed, err)
	}
	// An item with no id, guid or link carries an empty sourceId; it is still
	// a valid event and dedupes on (source, "").
	if !ev.Source.Valid() {
		return ev, fmt.Errorf("%w: unknown source %q", errMalformed, ev.Source)
	}
	return ev, nil
}
