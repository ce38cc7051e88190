package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	"smartz/internal/ports/output"
)

var _ output.ResourceSource = (*PostgresSource)(nil)

const (
	selectTable = `SELECT key, value FROM message_resources WHERE bundle = $1 AND locale = $2`

	upsertResource = `INSERT INTO message_resources (bundle, locale, key, value)
VALUES ($1, $2, $3, $4)
ON CONFLICT (bundle, locale, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// PostgresSource stores resource tables in the message_resources table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// LoadTable implements output.ResourceSource. A table without rows does not
// exist.
func (s *PostgresSource) LoadTable(ctx context.Context, bundle string, locale language.Tag) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, selectTable, bundle, localeColumn(locale))
	if err != nil {
		return nil, fmt.Errorf("select table %s (locale %q): %w", bundle, locale, err)
	}
	resources, err := pgx.CollectRows(rows, pgx.RowToStructByName[resourceRow])
	if err != nil {
		return nil, fmt.Errorf("select table %s (locale %q): %w", bundle, locale, err)
	}
	if len(resources) == 0 {
		return nil, output.ErrTableNotFound
	}
	return rowsToTable(resources), nil
}

// ImportTable upserts entries into the table of bundle for locale in one
// transaction. Existing keys not present in entries are kept.
func (s *PostgresSource) ImportTable(ctx context.Context, bundle string, locale language.Tag, entries map[string]string) error {
	loc := localeColumn(locale)
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for key, value := range entries {
			batch.Queue(upsertResource, bundle, loc, key, value)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("import table %s (locale %q): %w", bundle, locale, err)
		}
		return nil
	})
}
