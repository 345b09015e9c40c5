package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"trendwatch/internal/domain"
	"trendwatch/internal/matcher"
	"trendwatch/internal/metrics"
)

// MatcherConsumer turns queued ingestion events into mentions.
type MatcherConsumer struct {
	keywords KeywordSource
	mentions MentionStore
	logger   *slog.Logger
}

func NewMatcherConsumer(keywords KeywordSource, mentions MentionStore, logger *slog.Logger) *MatcherConsumer {
	return &MatcherConsumer{
		keywords: keywords,
		mentions: mentions,
		logger:   logger.With("component", "matcher"),
	}
}

// HandleBatch matches every event against the active keywords loaded once for
// the batch. Duplicate mentions are not errors; any other store error fails
// the batch so the whole delivery is retried.
func (c *MatcherConsumer) HandleBatch(ctx context.Context, events []domain.IngestionEvent) (*domain.BatchStats, error) {
	stats := &domain.BatchStats{Received: len(events)}

	keywords, err := c.keywords.ActiveKeywords(ctx)
	if err != nil {
		metrics.BatchesTotal.WithLabelValues("error").Inc()
		return stats, fmt.Errorf("load keywords: %w", err)
	}
	if len(keywords) == 0 {
		c.logger.Debug("no active keywords, skipping batch", "events", len(events))
		stats.Skipped = len(events)
		metrics.BatchesTotal.WithLabelValues("skipped").Inc()
		return stats, nil
	}

	for i := range events {
		created, matched, err := c.handle(ctx, &events[i], keywords)
		if err != nil {
			metrics.BatchesTotal.WithLabelValues("error").Inc()
			return stats, err
		}
		switch {
		case !matched:
			stats.Skipped++
		case created:
			stats.Matched++
			stats.Created++
		default:
			stats.Matched++
			stats.Duplicates++
		}
	}

	metrics.BatchesTotal.WithLabelValues("ok").Inc()
	c.logger.Info("batch handled",
		"received", stats.Received,
		"created", stats.Created,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

func (c *MatcherConsumer) handle(ctx context.Context, ev *domain.IngestionEvent, keywords []domain.Keyword) (created, matched bool, err error) {
	text := ev.Content
	if ev.Title != nil {
		text = *ev.Title + " " + ev.Content
	}

	ids := matcher.Match(strings.TrimSpace(text), keywords)
	if len(ids) == 0 {
		return false, false, nil
	}

	m := &domain.Mention{
		ID:              uuid.NewString(),
		Source:          ev.Source,
		SourceID:        ev.SourceID,
		Title:           ev.Title,
		Content:         ev.Content,
		URL:             ev.URL,
		Author:          ev.Author,
		CreatedAt:       ev.CreatedAt.UTC(),
		FetchedAt:       ev.FetchedAt.UTC(),
		MatchedKeywords: ids,
	}

	created, err = c.mentions.Insert(ctx, m)
	if err != nil {
		return false, true, fmt.Errorf("insert mention %s/%s: %w", ev.Source, ev.SourceID, err)
	}
	if created {
		metrics.MentionsTotal.WithLabelValues("created").Inc()
	} else {
		metrics.MentionsTotal.WithLabelValues("duplicate").Inc()
		c.logger.Debug("mention already ingested", "source", ev.Source, "source_id", ev.SourceID)
	}
	return created, true, nil
}
