package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendwatch/internal/domain"
)

// TrendStore answers dashboard queries from daily_aggregates. Date ranges
// are inclusive on both ends.
type TrendStore struct {
	db *sqlx.DB
}

func NewTrendStore(db *sqlx.DB) *TrendStore {
	return &TrendStore{db: db}
}

func (s *TrendStore) TopKeywords(ctx context.Context, r domain.DateRange, limit int) ([]domain.KeywordTotal, error) {
	query := `
		SELECT a.keyword_id, k.name, SUM(a.mentions_count)::int AS total
		FROM daily_aggregates a
		JOIN keywords k ON k.id = a.keyword_id
		WHERE a.date BETWEEN $1::date AND $2::date
		GROUP BY a.keyword_id, k.name
		ORDER BY total DESC, k.name
		LIMIT $3`

	var out []domain.KeywordTotal
	err := s.db.SelectContext(ctx, &out, query, dateArg(r.From), dateArg(r.To), limit)
	return out, err
}

func (s *TrendStore) KeywordTotals(ctx context.Context, keywordIDs []string, r domain.DateRange) (map[string]int, error) {
	out := make(map[string]int, len(keywordIDs))
	if len(keywordIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT keyword_id, SUM(mentions_count)::int AS total
		FROM daily_aggregates
		WHERE keyword_id = ANY($1) AND date BETWEEN $2::date AND $3::date
		GROUP BY keyword_id`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(keywordIDs), dateArg(r.From), dateArg(r.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var total int
		if err := rows.Scan(&id, &total); err != nil {
			return nil, err
		}
		out[id] = total
	}
	return out, rows.Err()
}

func (s *TrendStore) SourceTotals(ctx context.Context, r domain.DateRange) ([]domain.SourceTotal, error) {
	query := `
		SELECT source, SUM(mentions_count)::int AS total
		FROM daily_aggregates
		WHERE date BETWEEN $1::date AND $2::date
		GROUP BY source
		ORDER BY source`

	var out []domain.SourceTotal
	err := s.db.SelectContext(ctx, &out, query, dateArg(r.From), dateArg(r.To))
	return out, err
}

// Series returns one point per (date, source), ordered by date. An empty
// source means all sources.
func (s *TrendStore) Series(ctx context.Context, keywordID string, r domain.DateRange, source domain.Source) ([]domain.TrendPoint, error) {
	var w where
	w.add(`keyword_id = ?`, keywordID)
	w.add(`date >= ?::date`, dateArg(r.From))
	w.add(`date <= ?::date`, dateArg(r.To))
	if source != "" {
		w.add(`source = ?`, string(source))
	}

	query := `
		SELECT to_char(date, 'YYYY-MM-DD') AS date, source, mentions_count
		FROM daily_aggregates` + w.String() + `
		ORDER BY date, source`

	var out []domain.TrendPoint
	err := s.db.SelectContext(ctx, &out, query, w.args...)
	return out, err
}
