package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventdesk/internal/dbx"
)

// PostgresRepository is the records table on PostgreSQL through the pgx
// database/sql driver.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func PostgresFactory(db dbx.DBTX) Repository {
	return NewPostgresRepository(db)
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	return nil
}

func (r *PostgresRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key FROM records WHERE left(key, length($1)) = $1 ORDER BY key`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list records[%s*]: %w", prefix, err)
	}
	return scanKeys(rows)
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
