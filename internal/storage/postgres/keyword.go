package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendwatch/internal/domain"
)

type keywordRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Aliases   pq.StringArray `db:"aliases"`
	Tags      pq.StringArray `db:"tags"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r keywordRow) toDomain() domain.Keyword {
	aliases := []string(r.Aliases)
	if aliases == nil {
		aliases = []string{}
	}
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return domain.Keyword{
		ID:        r.ID,
		Name:      r.Name,
		Aliases:   aliases,
		Tags:      tags,
		Status:    domain.KeywordStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const keywordColumns = `id, name, aliases, tags, status, created_at, updated_at`

type KeywordStore struct {
	db *sqlx.DB
}

func NewKeywordStore(db *sqlx.DB) *KeywordStore {
	return &KeywordStore{db: db}
}

func (s *KeywordStore) ListActive(ctx context.Context) ([]domain.Keyword, error) {
	return s.List(ctx, domain.KeywordActive)
}

// List returns keywords ordered by name; an empty status means all.
func (s *KeywordStore) List(ctx context.Context, status domain.KeywordStatus) ([]domain.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY name`

	var rows []keywordRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]domain.Keyword, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (s *KeywordStore) Get(ctx context.Context, id string) (*domain.Keyword, error) {
	var row keywordRow
	err := s.db.GetContext(ctx, &row, `SELECT `+keywordColumns+` FROM keywords WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	kw := row.toDomain()
	return &kw, nil
}

func (s *KeywordStore) Create(ctx context.Context, kw *domain.Keyword) error {
	query := `
		INSERT INTO keywords (id, name, aliases, tags, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		kw.ID,
		kw.Name,
		pq.StringArray(kw.Aliases),
		pq.StringArray(kw.Tags),
		string(kw.Status),
		kw.CreatedAt,
		kw.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (s *KeywordStore) Update(ctx context.Context, kw *domain.Keyword) error {
	query := `
		UPDATE keywords
		SET name = $2, aliases = $3, tags = $4, status = $5, updated_at = $6
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query,
		kw.ID,
		kw.Name,
		pq.StringArray(kw.Aliases),
		pq.StringArray(kw.Tags),
		string(kw.Status),
		kw.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	return rowsAffected(n)
}

func (s *KeywordStore) Archive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE keywords SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(domain.KeywordArchived),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	return rowsAffected(n)
}
