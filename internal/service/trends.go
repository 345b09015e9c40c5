package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"trendwatch/internal/domain"
)

const (
	topKeywordsLimit        = 10
	overviewDefaultDays     = 7
	keywordTrendDefaultDays = 30

	emergingPreviousBelow  = 3
	emergingCurrentAtLeast = 10
)

// TrendsService reads daily aggregates for the dashboard.
type TrendsService struct {
	trends   TrendStore
	keywords KeywordStore
	now      func() time.Time
}

func NewTrendsService(trends TrendStore, keywords KeywordStore) *TrendsService {
	return &TrendsService{trends: trends, keywords: keywords, now: time.Now}
}

// DefaultRange returns the trailing window of days ending today, filling
// whichever bound is zero in r.
func (s *TrendsService) DefaultRange(r domain.DateRange, days int) domain.DateRange {
	if r.To.IsZero() {
		r.To = domain.Day(s.now())
	} else {
		r.To = domain.Day(r.To)
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, 0, -(days - 1))
	} else {
		r.From = domain.Day(r.From)
	}
	return r
}

func (s *TrendsService) Overview(ctx context.Context, r domain.DateRange) (*domain.Overview, error) {
	r = s.DefaultRange(r, overviewDefaultDays)
	if r.From.After(r.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	top, err := s.trends.TopKeywords(ctx, r, topKeywordsLimit)
	if err != nil {
		return nil, fmt.Errorf("top keywords: %w", err)
	}

	ids := make([]string, len(top))
	for i, kt := range top {
		ids[i] = kt.KeywordID
	}
	previous := map[string]int{}
	if len(ids) > 0 {
		previous, err = s.trends.KeywordTotals(ctx, ids, r.Previous())
		if err != nil {
			return nil, fmt.Errorf("previous period totals: %w", err)
		}
	}

	sources, err := s.trends.SourceTotals(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("source totals: %w", err)
	}

	out := &domain.Overview{
		From:             r.From.Format(domain.DateLayout),
		To:               r.To.Format(domain.DateLayout),
		TopKeywords:      make([]domain.TopKeyword, 0, len(top)),
		EmergingKeywords: make([]domain.TopKeyword, 0),
		SourceBreakdown:  make(map[domain.Source]int, len(sources)),
	}
	for _, st := range sources {
		out.SourceBreakdown[st.Source] += st.Total
		out.TotalMentions += st.Total
	}
	for _, kt := range top {
		tk := domain.TopKeyword{
			KeywordID:      kt.KeywordID,
			Name:           kt.Name,
			CurrentPeriod:  kt.Total,
			PreviousPeriod: previous[kt.KeywordID],
		}
		tk.GrowthRate = GrowthRate(tk.CurrentPeriod, tk.PreviousPeriod)
		tk.IsEmerging = IsEmerging(tk.CurrentPeriod, tk.PreviousPeriod)
		out.TopKeywords = append(out.TopKeywords, tk)
		if tk.IsEmerging {
			out.EmergingKeywords = append(out.EmergingKeywords, tk)
		}
	}
	return out, nil
}

func (s *TrendsService) KeywordTrend(ctx context.Context, keywordID string, q domain.TrendQuery) (*domain.KeywordTrend, error) {
	if q.Source != "" && !q.Source.Valid() {
		return nil, domain.NewValidationError("source", "must be reddit, x or feed")
	}
	r := s.DefaultRange(q.Range, keywordTrendDefaultDays)
	if r.From.After(r.To) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	kw, err := s.keywords.Get(ctx, keywordID)
	if err != nil {
		return nil, err
	}

	points, err := s.trends.Series(ctx, keywordID, r, q.Source)
	if err != nil {
		return nil, fmt.Errorf("keyword series: %w", err)
	}
	if points == nil {
		points = []domain.TrendPoint{}
	}

	out := &domain.KeywordTrend{
		KeywordID:  kw.ID,
		Name:       kw.Name,
		From:       r.From.Format(domain.DateLayout),
		To:         r.To.Format(domain.DateLayout),
		TimeSeries: points,
	}
	days := make(map[string]struct{})
	for _, p := range points {
		out.TotalMentions += p.Count
		days[p.Date] = struct{}{}
	}
	if len(days) > 0 {
		out.AveragePerDay = round2(float64(out.TotalMentions) / float64(len(days)))
	}
	return out, nil
}

// GrowthRate is the percentage change from previous to current; a zero
// previous period counts as 100% growth.
func GrowthRate(current, previous int) float64 {
	if previous == 0 {
		return 100
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

func IsEmerging(current, previous int) bool {
	return previous < emergingPreviousBelow && current >= emergingCurrentAtLeast
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
