package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trendwatch/internal/domain"
	"trendwatch/internal/feed"
)

// IngestionService turns the unseen items of one feed into ingestion events.
type IngestionService struct {
	fetcher     FeedFetcher
	checkpoints *CheckpointStore
	sink        Publisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewIngestionService builds the service. When sink is non-nil, new events are
// published before the checkpoint moves, so a failed publish leaves the feed
// to be re-read on the next run instead of dropping items.
func NewIngestionService(fetcher FeedFetcher, checkpoints *CheckpointStore, sink Publisher, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		fetcher:     fetcher,
		checkpoints: checkpoints,
		sink:        sink,
		logger:      logger.With("component", "ingestion"),
		now:         time.Now,
	}
}

// ProcessFeed fetches url and keeps only items published strictly after the
// feed's checkpoint. NewCheckpoint is nil when nothing new was found or no
// new post has a parseable publish date.
func (s *IngestionService) ProcessFeed(ctx context.Context, feedID, url, customUserAgent string) (*domain.FeedResult, error) {
	logger := s.logger.With("feed_id", feedID)

	cp, err := s.checkpoints.Get(ctx, feedID)
	if err != nil {
		return nil, err
	}

	fetched, err := s.fetcher.FetchFeed(ctx, url, customUserAgent)
	if err != nil {
		return nil, err
	}

	fetchedAt := s.now().UTC()
	posts := s.filterNew(fetched.Posts, cp, logger)

	result := &domain.FeedResult{
		Events:    make([]domain.IngestionEvent, 0, len(posts)),
		FeedTitle: fetched.Title,
		FeedDesc:  fetched.Description,
	}

	var newest time.Time
	newestRaw := ""

	for _, p := range posts {
		published, perr := feed.ParseTime(p.PublishedAt)
		if perr != nil {
			logger.Warn("unparseable publish date, using fetch time",
				"post_id", p.ID,
				"published_at", p.PublishedAt,
			)
			published = fetchedAt
		} else if published.After(newest) {
			newest = published
			newestRaw = p.PublishedAt
		}
		result.Events = append(result.Events, toEvent(p, url, feedID, published, fetchedAt))
	}

	logger.Info("feed processed",
		"fetched", len(fetched.Posts),
		"new", len(result.Events),
	)

	if len(result.Events) == 0 {
		return result, nil
	}

	if s.sink != nil {
		if err := s.sink.Publish(ctx, result.Events); err != nil {
			return nil, fmt.Errorf("publish events: %w", err)
		}
	}

	// Without a parseable date there is nothing to advance to; an empty
	// marker would make every later run re-emit the whole feed.
	if newestRaw == "" {
		logger.Warn("no parseable publish date among new posts, checkpoint unchanged")
		return result, nil
	}

	next := domain.Checkpoint{
		LastPublishedAt: newestRaw,
		LastFetchedAt:   fetchedAt.Format(time.RFC3339Nano),
	}
	if err := s.checkpoints.Save(ctx, feedID, next); err != nil {
		return nil, err
	}
	result.NewCheckpoint = &next

	return result, nil
}

func (s *IngestionService) filterNew(posts []domain.FeedPost, cp *domain.Checkpoint, logger *slog.Logger) []domain.FeedPost {
	if cp == nil {
		return posts
	}

	since, err := feed.ParseTime(cp.LastPublishedAt)
	if err != nil {
		logger.Warn("unparseable checkpoint, treating all posts as new",
			"last_published_at", cp.LastPublishedAt,
		)
		return posts
	}

	var fresh []domain.FeedPost
	for _, p := range posts {
		published, err := feed.ParseTime(p.PublishedAt)
		if err != nil {
			continue
		}
		if published.After(since) {
			fresh = append(fresh, p)
		}
	}
	return fresh
}

func toEvent(p domain.FeedPost, url, feedID string, published, fetchedAt time.Time) domain.IngestionEvent {
	return domain.IngestionEvent{
		Source:    domain.SourceFeed,
		SourceID:  p.ID,
		Title:     optional(p.Title),
		Content:   p.Content,
		URL:       p.Link,
		Author:    optional(p.Author),
		CreatedAt: published,
		FetchedAt: fetchedAt,
		Metadata: map[string]string{
			"feedUrl": url,
			"feedId":  feedID,
		},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
