package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"trendwatch/internal/domain"
)

type AggregateStore struct {
	db *sqlx.DB
}

func NewAggregateStore(db *sqlx.DB) *AggregateStore {
	return &AggregateStore{db: db}
}

// PendingDates lists UTC dates since the given day that have mentions but no
// aggregate rows yet.
func (s *AggregateStore) PendingDates(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT to_char((m.created_at AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day
		FROM mentions m
		WHERE m.created_at >= $1
		  AND NOT EXISTS (
			SELECT 1 FROM daily_aggregates a
			WHERE a.date = (m.created_at AT TIME ZONE 'UTC')::date
		  )
		ORDER BY day`

	var dates []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &dates, query, since)
	return dates, err
}

// CountsForDate counts mentions per (keyword, source) on one UTC date; a
// mention matching several keywords counts once for each.
func (s *AggregateStore) CountsForDate(ctx context.Context, date string) ([]domain.DailyAggregate, error) {
	query := `
		SELECT to_char($1::date, 'YYYY-MM-DD') AS date, k.keyword_id, m.source, COUNT(*) AS mentions_count
		FROM mentions m
		CROSS JOIN LATERAL unnest(m.matched_keywords) AS k(keyword_id)
		WHERE (m.created_at AT TIME ZONE 'UTC')::date = $1::date
		GROUP BY k.keyword_id, m.source
		ORDER BY k.keyword_id, m.source`

	var out []domain.DailyAggregate
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, query, date)
	return out, err
}

// Upsert overwrites counts for existing (date, keyword_id, source) rows.
func (s *AggregateStore) Upsert(ctx context.Context, aggregates []domain.DailyAggregate) error {
	if len(aggregates) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO daily_aggregates (id, date, keyword_id, source, mentions_count) VALUES ")
	valueArgs := make([]interface{}, 0, len(aggregates)*5)

	for i, a := range aggregates {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 5
		sb.WriteString("($")
		sb.WriteString(itoa(base + 1))
		sb.WriteString(", $")
		sb.WriteString(itoa(base + 2))
		sb.WriteString("::date, $")
		sb.WriteString(itoa(base + 3))
		sb.WriteString(", $")
		sb.WriteString(itoa(base + 4))
		sb.WriteString(", $")
		sb.WriteString(itoa(base + 5))
		sb.WriteString(")")
		valueArgs = append(valueArgs, a.ID, a.Date, a.KeywordID, string(a.Source), a.MentionsCount)
	}
	sb.WriteString(" ON CONFLICT (date, keyword_id, source) DO UPDATE SET mentions_count = EXCLUDED.mentions_count")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
