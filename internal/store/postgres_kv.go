package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresKV stores the same serialized payloads as RedisKV in a single
// app_state table, for deployments that already run Postgres and don't want a
// second datastore. TTLs are ignored: application state never expires.
type PostgresKV struct {
	db *sql.DB
}

func NewPostgresKV(db *sql.DB) *PostgresKV { return &PostgresKV{db: db} }

// Init creates the backing table if needed.
func (p *PostgresKV) Init(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = $1`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value string, _ time.Duration) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	return err
}
