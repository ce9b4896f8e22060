package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/google/uuid"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/bartracker/bar-price-tracker/internal/config"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	data JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_data_idx ON documents USING GIN (data jsonb_path_ops);
`

const DefaultQueryTimeout = 5 * time.Second

type PostgresStore struct {
	DB *sql.DB
	// QueryTimeout bounds every statement; zero means DefaultQueryTimeout.
	QueryTimeout time.Duration
}

// OpenPostgres opens a traced connection pool and verifies it is reachable.
func OpenPostgres(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db, QueryTimeout: DefaultQueryTimeout}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.QueryTimeout <= 0 {
		return context.WithTimeout(ctx, DefaultQueryTimeout)
	}

	return context.WithTimeout(ctx, s.QueryTimeout)
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.DB.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string, dest any) error {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var data []byte

	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	err := s.DB.QueryRowContext(dbCtx, query, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("querying document %s/%s: %w", collection, id, err)
	}

	return (&jsonSnapshot{id: id, data: data}).DataTo(dest)
}

func (s *PostgresStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error) {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	match, err := filtersToDocument(filters)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, data FROM documents
			  WHERE collection = $1 AND data @> $2::jsonb
			  ORDER BY created_at, id`

	rows, err := s.DB.QueryContext(dbCtx, query, collection, string(match))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var snaps []Snapshot

	for rows.Next() {
		snap := &jsonSnapshot{}
		if err := rows.Scan(&snap.id, &snap.data); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", collection, err)
		}

		snaps = append(snaps, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", collection, err)
	}

	return snaps, nil
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, doc any) error {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)
			  ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := s.DB.ExecContext(dbCtx, query, collection, id, string(data)); err != nil {
		return fmt.Errorf("writing document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	query := `UPDATE documents SET data = data || $3::jsonb, updated_at = NOW()
			  WHERE collection = $1 AND id = $2`

	result, err := s.DB.ExecContext(dbCtx, query, collection, id, string(patch))
	if err != nil {
		return fmt.Errorf("updating document %s/%s: %w", collection, id, err)
	}

	return expectOneRow(result)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	dbCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	result, err := s.DB.ExecContext(dbCtx, query, collection, id)
	if err != nil {
		return fmt.Errorf("deleting document %s/%s: %w", collection, id, err)
	}

	return expectOneRow(result)
}

func (s *PostgresStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.NewString()

	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}

	return id, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
