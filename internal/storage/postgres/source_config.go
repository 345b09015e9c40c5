package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"trendwatch/internal/domain"
)

const sourceColumns = `
	id, type, config, enabled, created_at, updated_at,
	last_fetch_at, last_success_at, last_error_at, last_error_message,
	consecutive_failures, deleted_at`

// SourceConfigStore persists source configs. Soft-deleted rows are invisible
// to every read.
type SourceConfigStore struct {
	db *sqlx.DB
}

func NewSourceConfigStore(db *sqlx.DB) *SourceConfigStore {
	return &SourceConfigStore{db: db}
}

func (s *SourceConfigStore) List(ctx context.Context) ([]domain.SourceConfig, error) {
	var out []domain.SourceConfig
	err := s.db.SelectContext(ctx, &out,
		`SELECT `+sourceColumns+` FROM source_configs WHERE deleted_at IS NULL ORDER BY created_at`,
	)
	return out, err
}

func (s *SourceConfigStore) ListEnabled(ctx context.Context, typ domain.SourceType) ([]domain.SourceConfig, error) {
	var out []domain.SourceConfig
	err := s.db.SelectContext(ctx, &out,
		`SELECT `+sourceColumns+` FROM source_configs
		WHERE deleted_at IS NULL AND enabled AND type = $1
		ORDER BY created_at`,
		string(typ),
	)
	return out, err
}

func (s *SourceConfigStore) Get(ctx context.Context, id string) (*domain.SourceConfig, error) {
	var src domain.SourceConfig
	err := s.db.GetContext(ctx, &src,
		`SELECT `+sourceColumns+` FROM source_configs WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceConfigStore) Create(ctx context.Context, src *domain.SourceConfig) error {
	query := `
		INSERT INTO source_configs (id, type, config, enabled, created_at, updated_at, consecutive_failures)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		src.ID,
		string(src.Type),
		src.Config,
		src.Enabled,
		src.CreatedAt,
		src.UpdatedAt,
		src.ConsecutiveFailures,
	)
	return err
}

// Update writes the user-editable columns plus the failure counter, which
// is reset when a source is re-enabled.
func (s *SourceConfigStore) Update(ctx context.Context, src *domain.SourceConfig) error {
	query := `
		UPDATE source_configs
		SET type = $2, config = $3, enabled = $4, consecutive_failures = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`

	res, err := s.db.ExecContext(ctx, query,
		src.ID,
		string(src.Type),
		src.Config,
		src.Enabled,
		src.ConsecutiveFailures,
		src.UpdatedAt,
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

// SaveRunState records the outcome of a fetch: health columns, the enabled
// flag (auto-disable) and captured feed metadata.
func (s *SourceConfigStore) SaveRunState(ctx context.Context, src *domain.SourceConfig) error {
	query := `
		UPDATE source_configs
		SET config = $2,
			enabled = $3,
			last_fetch_at = $4,
			last_success_at = $5,
			last_error_at = $6,
			last_error_message = $7,
			consecutive_failures = $8,
			updated_at = $9
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query,
		src.ID,
		src.Config,
		src.Enabled,
		src.LastFetchAt,
		src.LastSuccessAt,
		src.LastErrorAt,
		src.LastErrorMessage,
		src.ConsecutiveFailures,
		src.UpdatedAt,
	)
	return err
}

func (s *SourceConfigStore) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE source_configs SET deleted_at = $2, enabled = false, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
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
