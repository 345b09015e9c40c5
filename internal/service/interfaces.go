package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"trendwatch/internal/domain"
	"trendwatch/internal/feed"
)

// KV is a string key-value store with optional expiry.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type FeedFetcher interface {
	FetchFeed(ctx context.Context, url, userAgent string) (*feed.Feed, error)
}

type KeywordStore interface {
	ListActive(ctx context.Context) ([]domain.Keyword, error)
	List(ctx context.Context, status domain.KeywordStatus) ([]domain.Keyword, error)
	Get(ctx context.Context, id string) (*domain.Keyword, error)
	Create(ctx context.Context, kw *domain.Keyword) error
	Update(ctx context.Context, kw *domain.Keyword) error
	Archive(ctx context.Context, id string) error
}

// KeywordSource yields the keywords the matcher runs against.
type KeywordSource interface {
	ActiveKeywords(ctx context.Context) ([]domain.Keyword, error)
}

type MentionStore interface {
	// Insert returns false when (source, source_id) already exists.
	Insert(ctx context.Context, m *domain.Mention) (bool, error)
	List(ctx context.Context, filter domain.MentionFilter) ([]domain.Mention, int, error)
	Get(ctx context.Context, id string) (*domain.Mention, error)
}

type SourceStore interface {
	List(ctx context.Context) ([]domain.SourceConfig, error)
	ListEnabled(ctx context.Context, typ domain.SourceType) ([]domain.SourceConfig, error)
	Get(ctx context.Context, id string) (*domain.SourceConfig, error)
	Create(ctx context.Context, src *domain.SourceConfig) error
	Update(ctx context.Context, src *domain.SourceConfig) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	SaveRunState(ctx context.Context, src *domain.SourceConfig) error
}

type AggregateStore interface {
	PendingDates(ctx context.Context, since time.Time) ([]string, error)
	CountsForDate(ctx context.Context, date string) ([]domain.DailyAggregate, error)
	Upsert(ctx context.Context, aggregates []domain.DailyAggregate) error
}

type TrendStore interface {
	TopKeywords(ctx context.Context, r domain.DateRange, limit int) ([]domain.KeywordTotal, error)
	KeywordTotals(ctx context.Context, keywordIDs []string, r domain.DateRange) (map[string]int, error)
	SourceTotals(ctx context.Context, r domain.DateRange) ([]domain.SourceTotal, error)
	Series(ctx context.Context, keywordID string, r domain.DateRange, source domain.Source) ([]domain.TrendPoint, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, events []domain.IngestionEvent) error
	Close() error
}
