package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps each collection as a jsonb row in a single table. The
// store still has document semantics (full replace on save); Postgres only
// supplies durability.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects, verifies the connection and provisions the
// collections table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name VARCHAR(64) PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create collections table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection string, dest interface{}) error {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, "SELECT data FROM collections WHERE name = $1", collection)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding collection %q: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Set(ctx context.Context, collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %q: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, collection, raw)
	if err != nil {
		return fmt.Errorf("saving collection %q: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
