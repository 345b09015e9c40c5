package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendwatch/internal/domain"
)

type mentionRow struct {
	domain.Mention
	Matched pq.StringArray `db:"matched_keywords"`
}

func (r mentionRow) toDomain() domain.Mention {
	m := r.Mention
	m.MatchedKeywords = []string(r.Matched)
	if m.MatchedKeywords == nil {
		m.MatchedKeywords = []string{}
	}
	return m
}

const mentionColumns = `id, source, source_id, title, content, url, author, created_at, fetched_at, matched_keywords`

type MentionStore struct {
	db *sqlx.DB
}

func NewMentionStore(db *sqlx.DB) *MentionStore {
	return &MentionStore{db: db}
}

// Insert writes the mention unless (source, source_id) already exists, in
// which case it reports false and leaves the stored row untouched.
func (s *MentionStore) Insert(ctx context.Context, m *domain.Mention) (bool, error) {
	query := `
		INSERT INTO mentions (
			id, source, source_id, title, content, url, author,
			created_at, fetched_at, matched_keywords
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (source, source_id) DO NOTHING
		RETURNING id`

	var id string
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		m.ID,
		string(m.Source),
		m.SourceID,
		m.Title,
		m.Content,
		m.URL,
		m.Author,
		m.CreatedAt,
		m.FetchedAt,
		pq.StringArray(m.MatchedKeywords),
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MentionStore) Get(ctx context.Context, id string) (*domain.Mention, error) {
	var row mentionRow
	err := s.db.GetContext(ctx, &row, `SELECT `+mentionColumns+` FROM mentions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m := row.toDomain()
	return &m, nil
}

// List returns one page of mentions, newest first, and the total number of
// rows matching the filter. To is exclusive.
func (s *MentionStore) List(ctx context.Context, f domain.MentionFilter) ([]domain.Mention, int, error) {
	var w where
	if f.KeywordID != "" {
		w.add(`? = ANY(matched_keywords)`, f.KeywordID)
	}
	if f.Source != "" {
		w.add(`source = ?`, string(f.Source))
	}
	if f.From != nil {
		w.add(`created_at >= ?`, *f.From)
	}
	if f.To != nil {
		w.add(`created_at < ?`, *f.To)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM mentions`+w.String(), w.args...); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + mentionColumns + ` FROM mentions` + w.String() +
		` ORDER BY created_at DESC, id LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	args := append(w.args, f.Limit, f.Offset)

	var rows []mentionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Mention, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, total, nil
}
