package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"trendwatch/internal/domain"
	"trendwatch/internal/metrics"
)

// AggregationService rolls mentions up into daily aggregates. Counts are
// recomputed from mentions and overwritten, so reruns are idempotent.
type AggregationService struct {
	aggregates   AggregateStore
	txManager    TransactionManager
	lookbackDays int
	logger       *slog.Logger
	now          func() time.Time
}

func NewAggregationService(aggregates AggregateStore, txManager TransactionManager, lookbackDays int, logger *slog.Logger) *AggregationService {
	return &AggregationService{
		aggregates:   aggregates,
		txManager:    txManager,
		lookbackDays: lookbackDays,
		logger:       logger.With("component", "aggregation"),
		now:          time.Now,
	}
}

// Run aggregates with the configured lookback; it satisfies scheduler.Job.
func (s *AggregationService) Run(ctx context.Context) error {
	_, err := s.RunAggregation(ctx, s.lookbackDays)
	return err
}

// RunAggregation processes each date within the last lookbackDays days that
// has mentions but no aggregate rows yet.
func (s *AggregationService) RunAggregation(ctx context.Context, lookbackDays int) (*domain.AggregationResult, error) {
	since := domain.Day(s.now()).AddDate(0, 0, -lookbackDays)

	dates, err := s.aggregates.PendingDates(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("find pending dates: %w", err)
	}

	result := &domain.AggregationResult{DatesProcessed: []string{}}
	for _, date := range dates {
		n, err := s.aggregateDate(ctx, date)
		if err != nil {
			return result, fmt.Errorf("aggregate %s: %w", date, err)
		}
		result.DatesProcessed = append(result.DatesProcessed, date)
		result.TotalAggregates += n
	}

	s.logger.Info("aggregation completed",
		"lookback_days", lookbackDays,
		"dates", len(result.DatesProcessed),
		"aggregates", result.TotalAggregates,
	)
	return result, nil
}

func (s *AggregationService) aggregateDate(ctx context.Context, date string) (int, error) {
	var written int
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		counts, err := s.aggregates.CountsForDate(txCtx, date)
		if err != nil {
			return fmt.Errorf("count mentions: %w", err)
		}
		for i := range counts {
			if counts[i].ID == "" {
				counts[i].ID = uuid.NewString()
			}
		}
		if err := s.aggregates.Upsert(txCtx, counts); err != nil {
			return fmt.Errorf("upsert aggregates: %w", err)
		}
		written = len(counts)
		return nil
	})
	if err != nil {
		return 0, err
	}
	metrics.AggregatesUpsertedTotal.Add(float64(written))
	return written, nil
}
