package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trendwatch/internal/domain"
	"trendwatch/internal/metrics"
)

// Messages reported in ProcessResult.Error.
const (
	ResultSourceNotFound = "Source not found"
	ResultSourceDisabled = "Source is disabled"
)

// FeedProcessor runs ingestion over every enabled feed source, one after the
// other, and keeps each source's health columns up to date.
type FeedProcessor struct {
	sources   SourceStore
	ingestion *IngestionService
	logger    *slog.Logger
	now       func() time.Time
}

func NewFeedProcessor(sources SourceStore, ingestion *IngestionService, logger *slog.Logger) *FeedProcessor {
	return &FeedProcessor{
		sources:   sources,
		ingestion: ingestion,
		logger:    logger.With("component", "feed_processor"),
		now:       time.Now,
	}
}

// ProcessAllSources never stops on a failing source; failures are reported
// in the per-source results.
func (p *FeedProcessor) ProcessAllSources(ctx context.Context) (*domain.ProcessAllResult, error) {
	start := time.Now()

	sources, err := p.sources.ListEnabled(ctx, domain.SourceTypeFeed)
	if err != nil {
		return nil, fmt.Errorf("list enabled sources: %w", err)
	}

	out := &domain.ProcessAllResult{
		Results: make([]domain.ProcessResult, 0, len(sources)),
	}
	failed := 0
	for i := range sources {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, events := p.process(ctx, &sources[i])
		if res.Error != "" {
			failed++
		}
		out.Events = append(out.Events, events...)
		out.Results = append(out.Results, res)
	}

	p.logger.Info("sources processed",
		"sources", len(sources),
		"failed", failed,
		"events", len(out.Events),
		"duration", time.Since(start),
	)
	return out, nil
}

// ProcessSource runs a single source by id.
func (p *FeedProcessor) ProcessSource(ctx context.Context, sourceID string) domain.ProcessResult {
	src, err := p.sources.Get(ctx, sourceID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ProcessResult{SourceID: sourceID, Error: ResultSourceNotFound}
	}
	if err != nil {
		return domain.ProcessResult{SourceID: sourceID, Error: err.Error()}
	}
	res, _ := p.process(ctx, src)
	return res
}

func (p *FeedProcessor) process(ctx context.Context, src *domain.SourceConfig) (domain.ProcessResult, []domain.IngestionEvent) {
	res := domain.ProcessResult{SourceID: src.ID, SourceName: src.Config.Name}
	if !src.Enabled {
		res.Error = ResultSourceDisabled
		return res, nil
	}

	logger := p.logger.With("source_id", src.ID, "source_name", src.Config.Name)

	fr, err := p.ingestion.ProcessFeed(ctx, src.ID, src.Config.URL, src.UserAgent())
	if err != nil {
		src.RecordFailure(p.now().UTC(), err.Error())
		metrics.FeedRunsTotal.WithLabelValues("failure").Inc()
		if !src.Enabled {
			logger.Warn("source disabled after repeated failures",
				"consecutive_failures", src.ConsecutiveFailures,
			)
		}
		logger.Error("feed processing failed",
			"consecutive_failures", src.ConsecutiveFailures,
			"error", err,
		)
		if serr := p.sources.SaveRunState(ctx, src); serr != nil {
			logger.Error("failed to record source failure", "error", serr)
		}
		res.Error = err.Error()
		return res, nil
	}

	updateFeedMeta(src, fr)
	src.RecordSuccess(p.now().UTC())
	metrics.FeedRunsTotal.WithLabelValues("success").Inc()
	metrics.IngestionEventsTotal.Add(float64(len(fr.Events)))
	if err := p.sources.SaveRunState(ctx, src); err != nil {
		logger.Error("failed to record source success", "error", err)
	}

	res.EventsCount = len(fr.Events)
	res.Checkpoint = fr.NewCheckpoint
	return res, fr.Events
}

func updateFeedMeta(src *domain.SourceConfig, fr *domain.FeedResult) {
	if fr.FeedTitle != "" && (src.Config.FeedTitle == nil || *src.Config.FeedTitle != fr.FeedTitle) {
		title := fr.FeedTitle
		src.Config.FeedTitle = &title
	}
	if fr.FeedDesc != "" && (src.Config.FeedDescription == nil || *src.Config.FeedDescription != fr.FeedDesc) {
		desc := fr.FeedDesc
		src.Config.FeedDescription = &desc
	}
}
