package repository

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/model"
)

// PostgresStore keeps the collection in a single upserted row, keyed by the
// configured namespace. It is the same key-value contract as FileStore,
// just backed by a shared database instead of the local disk.
type PostgresStore struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgresStore(ctx context.Context, dsn, key string) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := &PostgresStore{pool: pool, key: key}
	if err := s.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS resume_collections (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context) (RawCollection, error) {
	empty := RawCollection{Resumes: []map[string]interface{}{}}

	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM resume_collections WHERE key = $1`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, nil
		}
		return empty, err
	}

	var raw RawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, fmt.Errorf("parse collection: %w", err)
	}
	if raw.Resumes == nil {
		raw.Resumes = []map[string]interface{}{}
	}
	return raw, nil
}

func (s *PostgresStore) Save(ctx context.Context, c model.Collection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO resume_collections (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		s.key, data)
	return err
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
