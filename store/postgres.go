package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMaxConns bounds the connection pool opened by NewPostgres.
const PostgresMaxConns = 4

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS external_urls (
	key      TEXT PRIMARY KEY,
	url      VARCHAR(2083) NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	upsertSQL = `INSERT INTO external_urls (key, url, saved_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET url = EXCLUDED.url, saved_at = EXCLUDED.saved_at`
	selectSQL = `SELECT url FROM external_urls WHERE key = $1`
	deleteSQL = `DELETE FROM external_urls WHERE key = $1`
)

// Postgres stores URLs in the external_urls table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres opens a pool for dsn and creates the table if needed.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	poolConfig.MaxConns = PostgresMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create external_urls table: %w", err)
	}
	return nil
}

// Save upserts url under key.
func (p *Postgres) Save(ctx context.Context, key, url string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, upsertSQL, key, url); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Load returns the url stored under key.
func (p *Postgres) Load(ctx context.Context, key string) (string, error) {
	var url string
	err := p.pool.QueryRow(ctx, selectSQL, key).Scan(&url)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load %q: %w", key, err)
	}
	return url, nil
}

// Delete removes the row of key.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	tag, err := p.pool.Exec(ctx, deleteSQL, key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
