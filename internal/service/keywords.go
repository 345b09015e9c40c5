package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trendwatch/internal/domain"
)

// KeywordService is the keyword CRUD surface. Every write drops the cached
// active keyword list.
type KeywordService struct {
	store  KeywordStore
	cache  *KeywordCache
	logger *slog.Logger
	now    func() time.Time
}

func NewKeywordService(store KeywordStore, cache *KeywordCache, logger *slog.Logger) *KeywordService {
	return &KeywordService{
		store:  store,
		cache:  cache,
		logger: logger.With("component", "keywords"),
		now:    time.Now,
	}
}

func (s *KeywordService) List(ctx context.Context, status domain.KeywordStatus) ([]domain.Keyword, error) {
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", "must be active or archived")
	}
	return s.store.List(ctx, status)
}

func (s *KeywordService) Get(ctx context.Context, id string) (*domain.Keyword, error) {
	return s.store.Get(ctx, id)
}

func (s *KeywordService) Create(ctx context.Context, in domain.KeywordInput) (*domain.Keyword, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	kw := &domain.Keyword{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Aliases:   in.Aliases,
		Tags:      in.Tags,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, kw); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return kw, nil
}

func (s *KeywordService) Update(ctx context.Context, id string, in domain.KeywordInput) (*domain.Keyword, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	kw, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	kw.Name = in.Name
	kw.Aliases = in.Aliases
	kw.Tags = in.Tags
	kw.Status = in.Status
	kw.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, kw); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return kw, nil
}

// Archive hides the keyword from matching; its mentions and aggregates stay.
func (s *KeywordService) Archive(ctx context.Context, id string) error {
	if err := s.store.Archive(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// A failed invalidation only delays visibility until the TTL expires.
func (s *KeywordService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("keyword cache not invalidated", "error", err)
	}
}
