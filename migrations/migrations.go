// Package migrations embeds the schema and applies or reverts its scripts.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var files embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// Up applies every *.up.sql script not yet recorded in schema_migrations,
// each in its own transaction, in file name order.
func Up(ctx context.Context, db *sqlx.DB, logger *slog.Logger) ([]string, error) {
	if err := ensureTable(ctx, db); err != nil {
		return nil, err
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	names, err := UpScripts()
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, name := range names {
		version := strings.TrimSuffix(name, upSuffix)
		if done[version] {
			continue
		}
		err := run(ctx, db, name, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		if err != nil {
			return ran, err
		}
		logger.Info("migration applied", "version", version)
		ran = append(ran, version)
	}
	return ran, nil
}

// Down reverts the steps most recently applied migrations, newest first,
// using their *.down.sql scripts.
func Down(ctx context.Context, db *sqlx.DB, steps int, logger *slog.Logger) ([]string, error) {
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}
	if err := ensureTable(ctx, db); err != nil {
		return nil, err
	}

	var versions []string
	err := db.SelectContext(ctx, &versions,
		`SELECT version FROM schema_migrations ORDER BY version DESC LIMIT $1`, steps)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}

	var reverted []string
	for _, version := range versions {
		err := run(ctx, db, version+downSuffix, `DELETE FROM schema_migrations WHERE version = $1`, version)
		if err != nil {
			return reverted, err
		}
		logger.Info("migration reverted", "version", version)
		reverted = append(reverted, version)
	}
	return reverted, nil
}

// UpScripts lists the embedded up scripts in apply order.
func UpScripts() ([]string, error) {
	names, err := fs.Glob(files, "*"+upSuffix)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func ensureTable(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

// run executes script and the bookkeeping statement in one transaction.
func run(ctx context.Context, db *sqlx.DB, script, record, version string) error {
	body, err := files.ReadFile(script)
	if err != nil {
		return fmt.Errorf("read %s: %w", script, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("run %s: %w", script, err)
	}
	if _, err := tx.ExecContext(ctx, record, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", script, err)
	}
	return nil
}
