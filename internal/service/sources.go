package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trendwatch/internal/domain"
)

// SourceService manages source configs and runs ad-hoc feed checks.
type SourceService struct {
	store     SourceStore
	fetcher   FeedFetcher
	processor *FeedProcessor
	logger    *slog.Logger
	now       func() time.Time
}

func NewSourceService(store SourceStore, fetcher FeedFetcher, processor *FeedProcessor, logger *slog.Logger) *SourceService {
	return &SourceService{
		store:     store,
		fetcher:   fetcher,
		processor: processor,
		logger:    logger.With("component", "sources"),
		now:       time.Now,
	}
}

func (s *SourceService) List(ctx context.Context) ([]domain.SourceConfig, error) {
	return s.store.List(ctx)
}

func (s *SourceService) Get(ctx context.Context, id string) (*domain.SourceConfig, error) {
	return s.store.Get(ctx, id)
}

func (s *SourceService) Create(ctx context.Context, in domain.SourceInput) (*domain.SourceConfig, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	src := &domain.SourceConfig{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Config:    in.Config,
		Enabled:   in.Enabled == nil || *in.Enabled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, src); err != nil {
		return nil, err
	}
	s.logger.Info("source created", "source_id", src.ID, "url", src.Config.URL)
	return src, nil
}

// Update replaces the user-editable settings. Captured feed metadata and run
// state are preserved.
func (s *SourceService) Update(ctx context.Context, id string, in domain.SourceInput) (*domain.SourceConfig, error) {
	in, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	title, desc := src.Config.FeedTitle, src.Config.FeedDescription
	src.Type = in.Type
	src.Config = in.Config
	if src.Config.FeedTitle == nil {
		src.Config.FeedTitle = title
	}
	if src.Config.FeedDescription == nil {
		src.Config.FeedDescription = desc
	}
	if in.Enabled != nil {
		s.setEnabled(src, *in.Enabled)
	}
	src.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, src); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *SourceService) Delete(ctx context.Context, id string) error {
	return s.store.SoftDelete(ctx, id, s.now().UTC())
}

// Toggle flips the enabled flag. Re-enabling clears the failure streak so an
// auto-disabled source gets a fresh set of attempts.
func (s *SourceService) Toggle(ctx context.Context, id string) (*domain.SourceConfig, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.setEnabled(src, !src.Enabled)
	src.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, src); err != nil {
		return nil, err
	}
	s.logger.Info("source toggled", "source_id", src.ID, "enabled", src.Enabled)
	return src, nil
}

func (s *SourceService) setEnabled(src *domain.SourceConfig, enabled bool) {
	if enabled && !src.Enabled {
		src.ConsecutiveFailures = 0
	}
	src.Enabled = enabled
}

// Validate fetches and parses a feed without saving anything. Fetch and parse
// failures are reported in the result, not as an error.
func (s *SourceService) Validate(ctx context.Context, url, userAgent string) (*domain.FeedValidation, error) {
	if err := domain.ValidateFeedURL(url); err != nil {
		return nil, err
	}
	f, err := s.fetcher.FetchFeed(ctx, url, userAgent)
	if err != nil {
		return &domain.FeedValidation{Valid: false, Error: err.Error()}, nil
	}
	return &domain.FeedValidation{
		Valid:           true,
		FeedTitle:       f.Title,
		FeedDescription: f.Description,
		ItemCount:       len(f.Posts),
	}, nil
}

func (s *SourceService) Process(ctx context.Context, id string) domain.ProcessResult {
	return s.processor.ProcessSource(ctx, id)
}
