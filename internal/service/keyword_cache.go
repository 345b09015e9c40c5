package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"trendwatch/internal/domain"
	"trendwatch/internal/metrics"
)

const (
	ActiveKeywordsKey      = "active_keywords"
	DefaultKeywordCacheTTL = 300 * time.Second
)

// KeywordCache is a read-through cache over the active keyword list.
// A keyword change can stay invisible to the matcher for up to ttl unless
// Invalidate is called.
type KeywordCache struct {
	store  KeywordStore
	kv     KV
	ttl    time.Duration
	logger *slog.Logger
}

func NewKeywordCache(store KeywordStore, kv KV, ttl time.Duration, logger *slog.Logger) *KeywordCache {
	if ttl <= 0 {
		ttl = DefaultKeywordCacheTTL
	}
	return &KeywordCache{
		store:  store,
		kv:     kv,
		ttl:    ttl,
		logger: logger.With("component", "keyword_cache"),
	}
}

func (c *KeywordCache) ActiveKeywords(ctx context.Context) ([]domain.Keyword, error) {
	raw, found, err := c.kv.Get(ctx, ActiveKeywordsKey)
	if err != nil {
		return nil, fmt.Errorf("read keyword cache: %w", err)
	}
	if found {
		var cached []domain.Keyword
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			metrics.KeywordCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		c.logger.Warn("discarding undecodable keyword cache entry")
	}
	metrics.KeywordCacheTotal.WithLabelValues("miss").Inc()

	keywords, err := c.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active keywords: %w", err)
	}
	if keywords == nil {
		keywords = []domain.Keyword{}
	}

	body, err := json.Marshal(keywords)
	if err != nil {
		return nil, fmt.Errorf("encode keywords: %w", err)
	}
	if err := c.kv.Set(ctx, ActiveKeywordsKey, string(body), c.ttl); err != nil {
		return nil, fmt.Errorf("write keyword cache: %w", err)
	}

	return keywords, nil
}

// Invalidate drops the cached list so the next read hits the store.
func (c *KeywordCache) Invalidate(ctx context.Context) error {
	if err := c.kv.Delete(ctx, ActiveKeywordsKey); err != nil {
		return fmt.Errorf("invalidate keyword cache: %w", err)
	}
	return nil
}
